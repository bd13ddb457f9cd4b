package emulator

import (
	"encoding/binary"
	"fmt"
)

// The guest address space. Implementations mask addresses themselves;
// unmapped accesses are their own business (RAM reads zero and drops writes)
type Memory interface {
	Load8(addr uint32) byte
	Load16(addr uint32) uint16
	Load32(addr uint32) uint32
	Store8(addr uint32, val byte)
	Store16(addr uint32, val uint16)
	Store32(addr uint32, val uint32)
}

// A Memory that can hand out a linear little endian buffer. `buf` covers
// the masked addresses [base, base+len(buf)). The interpreter fetches
// instructions straight from it
type FastMemory interface {
	Memory
	FastBuffer() (buf []byte, base uint32)
}

// A contiguous block of guest memory
type Segment struct {
	Name  string
	Range Range
	Data  []byte
}

// Creates a segment of `length` bytes at `start` filled with `fill`
func NewSegment(name string, start, length uint32, fill byte) *Segment {
	seg := &Segment{
		Name:  name,
		Range: NewRange(start, length),
		Data:  make([]byte, length),
	}
	if fill != 0 {
		for i := range seg.Data {
			seg.Data[i] = fill
		}
	}
	return seg
}

// Segment-mapped guest memory
type RAM struct {
	Segments []*Segment
	fast     *Segment // segment exposed by FastBuffer
}

// Creates the PSP memory map: scratchpad, VRAM and main RAM
func NewRAM() *RAM {
	main := NewSegment("main", MAIN_RAM_RANGE.Start, MAIN_RAM_RANGE.Length, 0)
	return &RAM{
		Segments: []*Segment{
			main,
			NewSegment("vram", VRAM_RANGE.Start, VRAM_RANGE.Length, 0),
			NewSegment("scratchpad", SCRATCHPAD_RANGE.Start, SCRATCHPAD_RANGE.Length, 0),
		},
		fast: main,
	}
}

// Creates a memory with a single segment of `size` bytes at `start`
func NewFlatRAM(start, size uint32) *RAM {
	seg := NewSegment("flat", start&ADDRESS_MASK, size, 0)
	return &RAM{Segments: []*Segment{seg}, fast: seg}
}

// Returns the segment named `name` or nil
func (ram *RAM) Segment(name string) *Segment {
	for _, seg := range ram.Segments {
		if seg.Name == name {
			return seg
		}
	}
	return nil
}

// Returns the segment holding `size` bytes at `addr` and the offset into it
func (ram *RAM) lookup(addr, size uint32) (*Segment, uint32) {
	addr &= ADDRESS_MASK
	for _, seg := range ram.Segments {
		if seg.Range.Contains(addr) {
			offset := seg.Range.Offset(addr)
			if offset+size > seg.Range.Length {
				return nil, 0
			}
			return seg, offset
		}
	}
	return nil, 0
}

func (ram *RAM) unmapped(kind string, addr uint32) {
	Log.WithField("addr", fmt.Sprintf("0x%08x", addr)).Debugf("memory: unmapped %s", kind)
}

// Fetches the byte at `addr`
func (ram *RAM) Load8(addr uint32) byte {
	seg, offset := ram.lookup(addr, 1)
	if seg == nil {
		ram.unmapped("load8", addr)
		return 0
	}
	return seg.Data[offset]
}

// Load a 16 bit little endian value at `addr`
func (ram *RAM) Load16(addr uint32) uint16 {
	seg, offset := ram.lookup(addr, 2)
	if seg == nil {
		ram.unmapped("load16", addr)
		return 0
	}
	return binary.LittleEndian.Uint16(seg.Data[offset:])
}

// Load a 32 bit little endian word at `addr`
func (ram *RAM) Load32(addr uint32) uint32 {
	seg, offset := ram.lookup(addr, 4)
	if seg == nil {
		ram.unmapped("load32", addr)
		return 0
	}
	return binary.LittleEndian.Uint32(seg.Data[offset:])
}

// Sets the byte at `addr`
func (ram *RAM) Store8(addr uint32, val byte) {
	seg, offset := ram.lookup(addr, 1)
	if seg == nil {
		ram.unmapped("store8", addr)
		return
	}
	seg.Data[offset] = val
}

// Stores a 16 bit little endian value into `addr`
func (ram *RAM) Store16(addr uint32, val uint16) {
	seg, offset := ram.lookup(addr, 2)
	if seg == nil {
		ram.unmapped("store16", addr)
		return
	}
	binary.LittleEndian.PutUint16(seg.Data[offset:], val)
}

// Store a 32 bit little endian word `val` into `addr`
func (ram *RAM) Store32(addr uint32, val uint32) {
	seg, offset := ram.lookup(addr, 4)
	if seg == nil {
		ram.unmapped("store32", addr)
		return
	}
	binary.LittleEndian.PutUint32(seg.Data[offset:], val)
}

func (ram *RAM) FastBuffer() ([]byte, uint32) {
	if ram.fast == nil {
		return nil, 0
	}
	return ram.fast.Data, ram.fast.Range.Start
}

// Copies `data` into guest memory at `addr`
func (ram *RAM) Write(addr uint32, data []byte) error {
	seg, offset := ram.lookup(addr, uint32(len(data)))
	if seg == nil {
		return fmt.Errorf("memory: %d bytes at 0x%08x are not mapped", len(data), addr)
	}
	copy(seg.Data[offset:], data)
	return nil
}

// Copies `length` bytes at `addr` out of guest memory
func (ram *RAM) Read(addr, length uint32) ([]byte, error) {
	seg, offset := ram.lookup(addr, length)
	if seg == nil {
		return nil, fmt.Errorf("memory: %d bytes at 0x%08x are not mapped", length, addr)
	}
	out := make([]byte, length)
	copy(out, seg.Data[offset:])
	return out, nil
}

var (
	lwlMask  = [4]uint32{0x00ffffff, 0x0000ffff, 0x000000ff, 0x00000000}
	lwlShift = [4]uint32{24, 16, 8, 0}
	lwrMask  = [4]uint32{0x00000000, 0xff000000, 0xffff0000, 0xffffff00}
	lwrShift = [4]uint32{0, 8, 16, 24}
	swlMask  = [4]uint32{0xffffff00, 0xffff0000, 0xff000000, 0x00000000}
	swlShift = [4]uint32{24, 16, 8, 0}
	swrMask  = [4]uint32{0x00000000, 0x000000ff, 0x0000ffff, 0x00ffffff}
	swrShift = [4]uint32{0, 8, 16, 24}
)

// lwl: merges the bytes from the aligned word up to `addr` into the high
// end of `reg`
func LoadWordLeft(mem Memory, addr, reg uint32) uint32 {
	align := addr & 3
	old := mem.Load32(addr &^ 3)
	return (old << lwlShift[align]) | (reg & lwlMask[align])
}

// lwr: merges the bytes from `addr` to the end of the aligned word into the
// low end of `reg`
func LoadWordRight(mem Memory, addr, reg uint32) uint32 {
	align := addr & 3
	old := mem.Load32(addr &^ 3)
	return (old >> lwrShift[align]) | (reg & lwrMask[align])
}

// swl: stores the high bytes of `reg` up to `addr`
func StoreWordLeft(mem Memory, addr, reg uint32) {
	align := addr & 3
	aligned := addr &^ 3
	old := mem.Load32(aligned)
	mem.Store32(aligned, (reg>>swlShift[align])|(old&swlMask[align]))
}

// swr: stores the low bytes of `reg` from `addr` on
func StoreWordRight(mem Memory, addr, reg uint32) {
	align := addr & 3
	aligned := addr &^ 3
	old := mem.Load32(aligned)
	mem.Store32(aligned, (reg<<swrShift[align])|(old&swrMask[align]))
}

// lvl.q: loads the lanes [k, 4) of `q` from the 16 byte block holding
// `addr`, where k depends on the word index of `addr` inside the block
func LoadQuadLeft(mem Memory, addr uint32, q *[4]uint32) {
	k := 3 - int((addr>>2)&3)
	start := addr &^ 0xf
	for n := k; n < 4; n++ {
		q[n] = mem.Load32(start)
		start += 4
	}
}

// lvr.q: loads the lanes [0, k) of `q` from `addr` up to the end of its
// 16 byte block
func LoadQuadRight(mem Memory, addr uint32, q *[4]uint32) {
	k := 4 - int((addr>>2)&3)
	start := addr &^ 3
	for n := 0; n < k; n++ {
		q[n] = mem.Load32(start)
		start += 4
	}
}

// svl.q: the store counterpart of LoadQuadLeft
func StoreQuadLeft(mem Memory, addr uint32, q *[4]uint32) {
	k := 3 - int((addr>>2)&3)
	start := addr &^ 0xf
	for n := k; n < 4; n++ {
		mem.Store32(start, q[n])
		start += 4
	}
}

// svr.q: the store counterpart of LoadQuadRight
func StoreQuadRight(mem Memory, addr uint32, q *[4]uint32) {
	k := 4 - int((addr>>2)&3)
	start := addr &^ 3
	for n := 0; n < k; n++ {
		mem.Store32(start, q[n])
		start += 4
	}
}
