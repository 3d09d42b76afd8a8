package amf3

import (
	"bytes"
	"io"
)

// Cursor is the reading position shared by every decode call. It wraps
// bytes.Reader specifically for Len, which reports the number of unread
// bytes and backs the Oversize guard in aggregates.go; it still satisfies
// io.Reader and io.ByteReader so stdlib helpers like encoding/binary.Read
// and io.ReadFull work against it directly.
type Cursor struct {
	r     *bytes.Reader
	total int64
}

// NewCursor wraps data for decoding. The returned Cursor owns no copy of
// data; callers must not mutate the slice while decoding is in progress.
func NewCursor(data []byte) *Cursor {
	return &Cursor{r: bytes.NewReader(data), total: int64(len(data))}
}

func (c *Cursor) Read(p []byte) (int, error) { return c.r.Read(p) }

func (c *Cursor) ReadByte() (byte, error) { return c.r.ReadByte() }

// Remaining reports the number of unread bytes.
func (c *Cursor) Remaining() int { return c.r.Len() }

// Offset reports the number of bytes consumed so far.
func (c *Cursor) Offset() int64 { return c.total - int64(c.r.Len()) }

func (c *Cursor) readExact(n int) ([]byte, error) {
	if n < 0 {
		return nil, newDecodeError(KindBadSize, "cursor.readExact", c.Offset(), nil)
	}
	if n > c.Remaining() {
		return nil, newDecodeError(KindTruncated, "cursor.readExact", c.Offset(), nil)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(c, buf); err != nil {
		return nil, newDecodeError(KindTruncated, "cursor.readExact", c.Offset(), err)
	}
	return buf, nil
}

func (c *Cursor) readOneByte(op string) (byte, error) {
	b, err := c.r.ReadByte()
	if err != nil {
		return 0, newDecodeError(KindTruncated, op, c.Offset(), err)
	}
	return b, nil
}

// readFull fills buf entirely from cur, the same contract as io.ReadFull.
func readFull(cur *Cursor, buf []byte) (int, error) {
	return io.ReadFull(cur, buf)
}

// peekMatches reports whether the next len(want) bytes equal want,
// without advancing the cursor. Used by ParseBody to check whether the
// padding sequence follows an element before skipping it.
func (c *Cursor) peekMatches(want []byte) bool {
	if c.Remaining() < len(want) {
		return false
	}
	buf := make([]byte, len(want))
	if _, err := c.r.ReadAt(buf, c.Offset()); err != nil {
		return false
	}
	for i := range want {
		if buf[i] != want[i] {
			return false
		}
	}
	return true
}

// skip advances the cursor by n bytes, discarding them.
func (c *Cursor) skip(n int) error {
	_, err := c.r.Seek(int64(n), io.SeekCurrent)
	return err
}

// seekTo repositions the cursor to an absolute byte offset, used to back
// out of a speculative parse attempt.
func (c *Cursor) seekTo(offset int64) error {
	_, err := c.r.Seek(offset, io.SeekStart)
	return err
}
