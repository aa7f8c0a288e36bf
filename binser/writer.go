package binser

import (
	"fmt"
	"strings"
)

type reloc struct {
	at  int
	str string
}

// Writer accumulates record contents and the string pointers that need to be
// patched once the string section is laid out.
type Writer struct {
	buf    []byte
	relocs []reloc
}

func NewWriter() *Writer {
	return &Writer{}
}

// Pos returns the length of the record contents written so far.
func (w *Writer) Pos() int { return len(w.buf) }

func (w *Writer) WriteU8(v uint8)   { w.buf = append(w.buf, v) }
func (w *Writer) WriteU16(v uint16) { w.buf = appendU16LE(w.buf, v) }
func (w *Writer) WriteU32(v uint32) { w.buf = appendU32LE(w.buf, v) }

// WriteString writes a pointer placeholder for s. The empty string is
// written as NullPointer and needs no relocation.
func (w *Writer) WriteString(s string) error {
	if strings.IndexByte(s, 0) >= 0 {
		return fmt.Errorf("%w: %q", ErrStringHasNUL, s)
	}
	if s != "" {
		w.relocs = append(w.relocs, reloc{at: len(w.buf), str: s})
	}
	w.WriteU32(NullPointer)
	return nil
}

func (w *Writer) WriteRecord(rec Encoder) error {
	return rec.EncodeRecord(w)
}

// WriteValue encodes v, preferring a custom hook.
func (w *Writer) WriteValue(v any) error {
	switch e := v.(type) {
	case CustomSerializer:
		return e.SerializeTo(w)
	case Encoder:
		return e.EncodeRecord(w)
	}
	return fmt.Errorf("%w: %T", ErrNotRecord, v)
}

// WriteRecords writes recs back to back, in order, with no count.
func WriteRecords[T Encoder](w *Writer, recs []T) error {
	for i, rec := range recs {
		if err := rec.EncodeRecord(w); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}

// Bytes returns the finished buffer: the record contents followed by the
// string section, with every string pointer patched. Each distinct string is
// stored once, in order of first reference.
func (w *Writer) Bytes() []byte {
	out := make([]byte, len(w.buf), len(w.buf)+w.sectionSizeHint())
	copy(out, w.buf)

	offsets := make(map[string]uint32, len(w.relocs))
	for _, rl := range w.relocs {
		off, ok := offsets[rl.str]
		if !ok {
			off = uint32(len(out))
			offsets[rl.str] = off
			out = append(out, rl.str...)
			out = append(out, 0)
		}
		putU32LE(out[rl.at:rl.at+PointerBytes], off)
	}
	return out
}

func (w *Writer) sectionSizeHint() int {
	n := 0
	for _, rl := range w.relocs {
		n += len(rl.str) + 1
	}
	return n
}
