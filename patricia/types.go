package patricia

import "errors"

// NodeRecordBytes is the fixed byte width of a node record on the wire.
const NodeRecordBytes = 4 + 2 + 2 + 4

// MaxKeys is the largest key count whose node array can be addressed by
// 16 bit child indices (the sentinel takes index 0).
const MaxKeys = 1<<16 - 1

// NotFound is the index reported for absent keys.
const NotFound = -1

// SentinelRefBit is the sentinel's reference bit when the tree holds keys.
// An empty tree has a sentinel with reference bit 0.
const SentinelRefBit = ^uint32(0)

var (
	ErrDuplicateKey    = errors.New("patricia: duplicate key")
	ErrKeyNotFound     = errors.New("patricia: key not found")
	ErrIndexOutOfRange = errors.New("patricia: index out of range")
	ErrMalformedStream = errors.New("patricia: malformed node stream")
	ErrTooManyKeys     = errors.New("patricia: too many keys for 16 bit node indices")
)
