package binser

import (
	"bytes"
	"fmt"
)

// Reader decodes records from a complete buffer. String pointers are
// absolute, so the reader always holds the whole buffer rather than a stream.
type Reader struct {
	data []byte
	pos  int
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Pos returns the cursor offset.
func (r *Reader) Pos() int { return r.pos }

// Len returns the number of unread bytes after the cursor.
func (r *Reader) Len() int { return len(r.data) - r.pos }

// Seek moves the cursor to an absolute offset.
func (r *Reader) Seek(pos int) error {
	if pos < 0 || pos > len(r.data) {
		return fmt.Errorf("%w: %d (len %d)", ErrBadSeek, pos, len(r.data))
	}
	r.pos = pos
	return nil
}

func (r *Reader) next(n int) ([]byte, error) {
	if r.Len() < n {
		return nil, fmt.Errorf("%w: need %d bytes at %d, have %d", ErrShortRead, n, r.pos, r.Len())
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *Reader) ReadU8() (uint8, error) {
	b, err := r.next(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) ReadU16() (uint16, error) {
	b, err := r.next(2)
	if err != nil {
		return 0, err
	}
	return readU16LE(b), nil
}

func (r *Reader) ReadU32() (uint32, error) {
	b, err := r.next(4)
	if err != nil {
		return 0, err
	}
	return readU32LE(b), nil
}

// ReadString reads a string pointer field and resolves it.
//
// The cursor advances past the pointer only, never into the string section.
func (r *Reader) ReadString() (string, error) {
	ptr, err := r.ReadU32()
	if err != nil {
		return "", err
	}
	if ptr == NullPointer {
		return "", nil
	}
	if uint64(ptr) >= uint64(len(r.data)) {
		return "", fmt.Errorf("%w: %d (len %d)", ErrBadPointer, ptr, len(r.data))
	}
	end := bytes.IndexByte(r.data[ptr:], 0)
	if end < 0 {
		return "", fmt.Errorf("%w: at %d", ErrUnterminatedString, ptr)
	}
	return string(r.data[ptr : int(ptr)+end]), nil
}

// ReadRecord decodes one record at the cursor.
func (r *Reader) ReadRecord(rec Decoder) error {
	return rec.DecodeRecord(r)
}

// Deserialize decodes v at the cursor, preferring a custom hook.
func (r *Reader) Deserialize(v any) error {
	switch d := v.(type) {
	case CustomDeserializer:
		return d.DeserializeFrom(r)
	case Decoder:
		return d.DecodeRecord(r)
	}
	return fmt.Errorf("%w: %T", ErrNotRecord, v)
}
