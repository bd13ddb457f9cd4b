package emulator

import "sort"

// A set of instruction addresses the stepper pauses at. The stepper only
// looks at the set while `Enabled` is true. Addresses are kept masked with
// ADDRESS_MASK, so a breakpoint also fires on the mirrors of its address
type Breakpoints struct {
	Enabled   bool
	addresses map[uint32]struct{}
}

func NewBreakpoints() *Breakpoints {
	return &Breakpoints{addresses: make(map[uint32]struct{})}
}

// Adds a breakpoint when the instruction at `addr` is about to be executed.
// Enables the set
func (bp *Breakpoints) Add(addr uint32) {
	if bp.addresses == nil {
		bp.addresses = make(map[uint32]struct{})
	}
	bp.addresses[addr&ADDRESS_MASK] = struct{}{}
	bp.Enabled = true
}

// Deletes the breakpoint at `addr`. Does nothing if it doesn't exist.
// The set disables itself when it becomes empty
func (bp *Breakpoints) Remove(addr uint32) {
	delete(bp.addresses, addr&ADDRESS_MASK)
	if len(bp.addresses) == 0 {
		bp.Enabled = false
	}
}

// Returns whether there is a breakpoint at `addr`
func (bp *Breakpoints) Has(addr uint32) bool {
	_, ok := bp.addresses[addr&ADDRESS_MASK]
	return ok
}

// Deletes every breakpoint
func (bp *Breakpoints) Clear() {
	bp.addresses = make(map[uint32]struct{})
	bp.Enabled = false
}

// Returns the number of breakpoints
func (bp *Breakpoints) Len() int {
	return len(bp.addresses)
}

// Returns all masked breakpoint addresses in ascending order
func (bp *Breakpoints) List() []uint32 {
	list := make([]uint32, 0, len(bp.addresses))
	for addr := range bp.addresses {
		list = append(list, addr)
	}
	sort.Slice(list, func(a, b int) bool { return list[a] < list[b] })
	return list
}
