package patricia

/*

# PATRICIA name index

This package maps the names in an H3D container section (bones, materials,
meshes ...) to their positions, and encodes that index as the flat node array
the container format expects.

## Model

The ordered key list is the source of truth. The node array is derived from
it and is rebuilt from scratch, lazily, the first time it is needed after any
mutation. There is no incremental update.

Node 0 is a sentinel holding no key. Node i (i > 0) holds key i-1, so a
successful lookup of node i reports position i-1.

## Bit addressing

Keys are raw bytes. Bit b addresses byte b>>3, bit b&7 (LSB first within the
byte). Bits past the end of a key read as zero, so every key behaves as if
right padded with NULs to the longest key in the set. The most significant
bit is therefore bit 7 of the last byte of the longest key, and insertion
scans from there towards bit 0.

A consequence of the padding rule is that keys differing only by trailing
NULs ("ab" and "ab\x00") are the same key, and the empty key collides with
the sentinel. Both are rejected as duplicates.

## Traversal

Each node carries the reference bit at which its children diverge. Descent
starts at the sentinel's left child and continues only while reference bits
strictly decrease; an edge that does not decrease is a link back to a key
node, which ends the walk. No leaf flag is needed.

## Wire format

Records are written back to back with no count:

	u32 refBit | u16 left | u16 right | u32 namePtr

The reader keeps the largest child index seen so far and stops once every
referenced index has been read. See DeserializeFrom.

*/
