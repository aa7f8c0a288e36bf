package binser

import "errors"

// PointerBytes is the width of a string pointer field.
const PointerBytes = 4

// NullPointer is the pointer value written for the empty string.
const NullPointer = uint32(0)

var (
	ErrShortRead          = errors.New("binser: short read")
	ErrBadSeek            = errors.New("binser: seek outside of buffer")
	ErrBadPointer         = errors.New("binser: string pointer outside of buffer")
	ErrUnterminatedString = errors.New("binser: string is not NUL terminated")
	ErrStringHasNUL       = errors.New("binser: string contains a NUL byte")
	ErrNotRecord          = errors.New("binser: value is not a record")
)

// Decoder is implemented by fixed layout records.
type Decoder interface {
	DecodeRecord(r *Reader) error
}

// Encoder is implemented by fixed layout records.
type Encoder interface {
	EncodeRecord(w *Writer) error
}

// CustomDeserializer is implemented by types which read their own layout,
// typically a variable number of records.
type CustomDeserializer interface {
	DeserializeFrom(r *Reader) error
}

// CustomSerializer is the write side counterpart of CustomDeserializer.
type CustomSerializer interface {
	SerializeTo(w *Writer) error
}
