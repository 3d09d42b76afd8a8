package amf3

import "log/slog"

// ExternalDecoderFunc decodes the externalized body of an object whose
// trait is marked External. It receives the shared cursor (already
// positioned just past the trait header) and the owning Decoder so it
// can recurse into ParseSingleElement and reuse the shared reference
// tables. It must not touch the reserved object-table slot itself; the
// caller patches it with the returned fields.
type ExternalDecoderFunc func(cur *Cursor, dec *Decoder) ([]Element, error)

// Decoder holds the state for a single AMF3 decoding session: the three
// reference tables, the external-decoder registry, the configured
// Limits, and an optional structured logger. A Decoder is not safe for
// concurrent use; its tables are mutated on nearly every decode step.
// Generalizes the teacher's AMF3Context, which left the trait table as
// an unused placeholder.
type Decoder struct {
	stringTable []string
	traitTable  []*ClassDefinition
	objectTable []Value

	externalDecoders map[string]ExternalDecoderFunc

	limits Limits
	logger *slog.Logger
}

// Option configures a Decoder at construction time.
type Option func(*Decoder)

// WithLogger attaches a structured logger for trace-level diagnostics
// (table growth, dispatch decisions, external-decoder invocation). A nil
// logger (the default) means silent operation.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Decoder) { d.logger = logger }
}

// WithLimits overrides the default defense-in-depth bounds.
func WithLimits(limits Limits) Option {
	return func(d *Decoder) { d.limits = limits }
}

// NewDecoder creates an empty Decoder ready to parse one AMF3 stream.
func NewDecoder(opts ...Option) *Decoder {
	d := &Decoder{
		stringTable:      make([]string, 0),
		traitTable:       make([]*ClassDefinition, 0),
		objectTable:      make([]Value, 0),
		externalDecoders: make(map[string]ExternalDecoderFunc),
		limits:           DefaultLimits(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// RegisterExternalDecoder installs the decoder invoked whenever an
// externalizable trait named name is encountered. Re-registering the
// same name overwrites the previous handler.
func (d *Decoder) RegisterExternalDecoder(name string, fn ExternalDecoderFunc) {
	d.externalDecoders[name] = fn
}

func (d *Decoder) logTrace(msg string, args ...any) {
	if d.logger != nil {
		d.logger.Debug(msg, args...)
	}
}

func (d *Decoder) reserveObjectSlot(placeholder Value, op string, offset int64) (int, error) {
	if err := d.limits.checkCount(op, uint32(len(d.objectTable)+1), d.limits.MaxTableEntries, offset); err != nil {
		return 0, err
	}
	d.objectTable = append(d.objectTable, placeholder)
	idx := len(d.objectTable) - 1
	d.logTrace("amf3: object table grew", "index", idx)
	return idx, nil
}

func (d *Decoder) lookupObject(idx uint32, op string, offset int64) (Value, error) {
	if int(idx) >= len(d.objectTable) {
		return nil, newDecodeError(KindBadReference, op, offset, nil)
	}
	return d.objectTable[idx], nil
}

func (d *Decoder) lookupTrait(idx uint32, op string, offset int64) (*ClassDefinition, error) {
	if int(idx) >= len(d.traitTable) {
		return nil, newDecodeError(KindBadReference, op, offset, nil)
	}
	return d.traitTable[idx], nil
}
