package emulator

import (
	"math/bits"
	"testing"
	"testing/quick"
)

func TestCountLeadingZeroes(t *testing.T) {
	assert := func(res, want uint32) {
		if res != want {
			t.Errorf("got %d, expected %d", res, want)
		}
	}

	assert(countLeadingZeroesU32(0), 32)
	assert(countLeadingZeroesU32(1), 31)
	assert(countLeadingZeroesU32(0x80000000), 0)
	assert(countLeadingZeroesU32(0x00ffffff), 8)
	assert(Clo(0xffffffff), 32)
	assert(Clo(0xf0000000), 4)
	assert(Clo(0), 0)
}

func TestBitsMatchStdlib(t *testing.T) {
	checks := map[string]interface{}{
		"clz": func(v uint32) bool {
			return Clz(v) == uint32(bits.LeadingZeros32(v))
		},
		"clo": func(v uint32) bool {
			return Clo(v) == uint32(bits.LeadingZeros32(^v))
		},
		"bitrev": func(v uint32) bool {
			return Bitrev(v) == bits.Reverse32(v)
		},
		"wsbw": func(v uint32) bool {
			return Wsbw(v) == bits.ReverseBytes32(v)
		},
		"wsbh": func(v uint32) bool {
			return Wsbh(v) == bits.RotateLeft32(bits.ReverseBytes32(v), 16)
		},
		"rotr": func(v uint32, n uint8) bool {
			return Rotr(v, uint32(n)) == bits.RotateLeft32(v, -int(n&31))
		},
	}
	for name, f := range checks {
		if err := quick.Check(f, nil); err != nil {
			t.Errorf("%s: %v", name, err)
		}
	}
}

func TestSignExtend(t *testing.T) {
	assert := func(res, want uint32) {
		if res != want {
			t.Errorf("got 0x%08x, expected 0x%08x", res, want)
		}
	}

	assert(Seb(0x80), 0xffffff80)
	assert(Seb(0x1234567f), 0x7f)
	assert(Seh(0x8000), 0xffff8000)
	assert(Seh(0xffff7fff), 0x7fff)
}

func TestExtractInsert(t *testing.T) {
	assert := func(res, want uint32) {
		if res != want {
			t.Errorf("got 0x%08x, expected 0x%08x", res, want)
		}
	}

	assert(Extract(0x12345678, 8, 8), 0x56)
	assert(Extract(0x12345678, 0, 32), 0x12345678)
	assert(Extract(0x80000000, 31, 1), 1)
	assert(Insert(0xffffffff, 0, 4, 8), 0xfffff00f)
	assert(Insert(0, 0xabc, 28, 4), 0xc0000000)
	assert(Insert(0x11111111, 0xdeadbeef, 0, 32), 0xdeadbeef)

	roundTrip := func(v, field uint32, pos, size uint8) bool {
		p := uint32(pos) & 31
		s := uint32(size)%(32-p) + 1
		return Extract(Insert(v, field, p, s), p, s) == field&bitMask(s)
	}
	if err := quick.Check(roundTrip, nil); err != nil {
		t.Error(err)
	}
}
