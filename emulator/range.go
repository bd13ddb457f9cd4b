package emulator

const (
	SCRATCHPAD_SIZE uint32 = 16 * 1024        // 16KB scratchpad (fast RAM)
	VRAM_SIZE       uint32 = 2 * 1024 * 1024  // 2MB of video memory
	MAIN_RAM_SIZE   uint32 = 32 * 1024 * 1024 // 32MB of main memory

	// Guest addresses are masked before they reach a segment. This folds
	// the cached/uncached mirrors onto the physical map
	ADDRESS_MASK uint32 = 0x0fffffff
)

var (
	// Scratchpad, directly addressable by the CPU
	SCRATCHPAD_RANGE = NewRange(0x00010000, SCRATCHPAD_SIZE)
	// Video memory, the framebuffer usually starts at the beginning
	VRAM_RANGE = NewRange(0x04000000, VRAM_SIZE)
	// Main memory, user programs are loaded at 0x08804000
	MAIN_RAM_RANGE = NewRange(0x08000000, MAIN_RAM_SIZE)
)

type Range struct {
	Start  uint32 // Start address
	Length uint32 // Length of the mapping
}

func NewRange(start uint32, length uint32) Range {
	return Range{Start: start, Length: length}
}

// Returns whether `addr` is located inside this range
func (r *Range) Contains(addr uint32) bool {
	return addr >= r.Start && addr-r.Start < r.Length
}

// Returns the offset between `addr` and the `Start` of the range.
// Does not check if the range contains the address, so if `addr`
// is smaller than `Start`, there will be an overflow
func (r *Range) Offset(addr uint32) uint32 {
	return addr - r.Start
}

// Returns the first address after the range
func (r *Range) End() uint32 {
	return r.Start + r.Length
}
