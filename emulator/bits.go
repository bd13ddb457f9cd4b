package emulator

// Returns a mask with the `size` low bits set
func bitMask(size uint32) uint32 {
	if size >= 32 {
		return 0xffffffff
	}
	return (1 << size) - 1
}

// Returns `size` bits of `v` starting at bit `pos`
func Extract(v, pos, size uint32) uint32 {
	return (v >> (pos & 31)) & bitMask(size)
}

// Returns `v` with `size` bits at `pos` replaced by the low bits of `bits`
func Insert(v, bits, pos, size uint32) uint32 {
	mask := bitMask(size) << (pos & 31)
	return (v &^ mask) | ((bits << (pos & 31)) & mask)
}

func countLeadingZeroesU32(x uint32) uint32 {
	var n uint32 = 32
	var y uint32
	y = x >> 16
	if y != 0 {
		n = n - 16
		x = y
	}
	y = x >> 8
	if y != 0 {
		n = n - 8
		x = y
	}
	y = x >> 4
	if y != 0 {
		n = n - 4
		x = y
	}
	y = x >> 2
	if y != 0 {
		n = n - 2
		x = y
	}
	y = x >> 1
	if y != 0 {
		return n - 2
	}
	return n - x
}

// Count leading zero bits
func Clz(v uint32) uint32 {
	return countLeadingZeroesU32(v)
}

// Count leading one bits
func Clo(v uint32) uint32 {
	return countLeadingZeroesU32(^v)
}

// Sign-extend the low byte
func Seb(v uint32) uint32 {
	return uint32(int32(int8(v)))
}

// Sign-extend the low halfword
func Seh(v uint32) uint32 {
	return uint32(int32(int16(v)))
}

// Swap the bytes inside each halfword
func Wsbh(v uint32) uint32 {
	return ((v & 0xff00ff00) >> 8) | ((v & 0x00ff00ff) << 8)
}

// Swap all four bytes of the word
func Wsbw(v uint32) uint32 {
	return (v >> 24) | ((v >> 8) & 0xff00) | ((v << 8) & 0xff0000) | (v << 24)
}

// Reverse the order of all 32 bits
func Bitrev(v uint32) uint32 {
	v = ((v >> 1) & 0x55555555) | ((v & 0x55555555) << 1)
	v = ((v >> 2) & 0x33333333) | ((v & 0x33333333) << 2)
	v = ((v >> 4) & 0x0f0f0f0f) | ((v & 0x0f0f0f0f) << 4)
	return Wsbw(v)
}

// Rotate right by `n & 31` bits
func Rotr(v, n uint32) uint32 {
	n &= 31
	if n == 0 {
		return v
	}
	return (v >> n) | (v << (32 - n))
}

func oneIfTrue(val bool) uint32 {
	if val {
		return 1
	}
	return 0
}
