package patricia

// bitAt returns bit b of name, where bits past the end of name read as zero.
func bitAt(name string, b uint32) bool {
	pos := uint64(b >> 3)
	if pos >= uint64(len(name)) {
		return false
	}
	return (name[pos]>>(b&7))&1 != 0
}
