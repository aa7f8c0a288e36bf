package binser

/*

# Binary record engine for H3D style containers

binser is the small host engine that name tables (and the lists that carry
them) are encoded through. It knows about three things only:

- little-endian fixed width integers
- records, which encode and decode themselves field by field
- strings, which are never stored inline

## Strings

A string field occupies 4 bytes in its record: an absolute offset into the
finished buffer. Writers collect the distinct strings and lay them out as a
string section after all record contents, NUL terminated, then patch every
pointer. The pointer value 0 is reserved for the empty string, which is never
written to the section. Because offset 0 is always the start of the record
contents, no real string can live there.

This keeps every record fixed size, which is what lets the trie node array be
read back without a count.

## Hooks

Types that need to control their own layout implement CustomSerializer and
CustomDeserializer. Writer.WriteValue and Reader.Deserialize prefer the custom
hooks over the plain Encoder/Decoder record interfaces.

*/
