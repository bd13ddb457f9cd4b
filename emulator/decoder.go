package emulator

import (
	"math/bits"
	"sort"
)

// Widest bit run a decode node switches on
const DECODE_MAX_BITS = 8

// One level of the decode trie. Inner nodes switch on `(word >> shift) &
// mask`, leaves hold the candidates still matching, most specific first
type decodeNode struct {
	shift    uint32
	mask     uint32
	children []*decodeNode
	entries  []*OpcodeEntry
}

var decodeRoot *decodeNode

// Resolves an instruction word to its opcode entry. Never returns nil
func Decode(i Instruction) *OpcodeEntry {
	word := uint32(i)
	node := decodeRoot
	for node.children != nil {
		node = node.children[(word>>node.shift)&node.mask]
		if node == nil {
			return INVALID_OPCODE
		}
	}
	for _, e := range node.entries {
		if word&e.Mask == e.Value {
			return e
		}
	}
	return INVALID_OPCODE
}

// Returns the position and width of the widest run of set bits, capped at
// `limit` bits taken from the top of the run
func widestRun(v uint32, limit uint32) (shift, width uint32) {
	for pos := uint32(0); pos < 32; {
		if v&(1<<pos) == 0 {
			pos++
			continue
		}
		start := pos
		for pos < 32 && v&(1<<pos) != 0 {
			pos++
		}
		if w := pos - start; w >= width {
			shift, width = start, w
		}
	}
	if width > limit {
		shift += width - limit
		width = limit
	}
	return shift, width
}

func buildDecodeNode(entries []*OpcodeEntry, used uint32) *decodeNode {
	common := ^used
	for _, e := range entries {
		common &= e.Mask
	}

	if len(entries) <= 1 || common == 0 {
		return buildDecodeLeaf(entries)
	}

	shift, width := widestRun(common, DECODE_MAX_BITS)
	node := &decodeNode{
		shift:    shift,
		mask:     (1 << width) - 1,
		children: make([]*decodeNode, 1<<width),
	}

	buckets := make([][]*OpcodeEntry, 1<<width)
	for _, e := range entries {
		key := (e.Value >> shift) & node.mask
		buckets[key] = append(buckets[key], e)
	}
	for key, bucket := range buckets {
		if len(bucket) != 0 {
			node.children[key] = buildDecodeNode(bucket, used|node.mask<<shift)
		}
	}
	return node
}

func buildDecodeLeaf(entries []*OpcodeEntry) *decodeNode {
	leaf := &decodeNode{entries: append([]*OpcodeEntry(nil), entries...)}
	sort.SliceStable(leaf.entries, func(a, b int) bool {
		return bits.OnesCount32(leaf.entries[a].Mask) > bits.OnesCount32(leaf.entries[b].Mask)
	})

	// an overlap is only allowed when one entry is strictly more specific
	for a, ea := range leaf.entries {
		for _, eb := range leaf.entries[a+1:] {
			shared := ea.Mask & eb.Mask
			if (ea.Value^eb.Value)&shared != 0 {
				continue
			}
			if shared != eb.Mask || ea.Mask == eb.Mask {
				panicFmt("opcodes: %s and %s have ambiguous encodings", ea.Name, eb.Name)
			}
		}
	}
	return leaf
}
