package prettydiff

// RangeKind classifies a sub-span of a hunk.
type RangeKind int

// Range kinds.
const (
	Same RangeKind = iota
	Old
	New
	Replace
	Unified
)

// String returns the kind's name.
func (k RangeKind) String() string {
	switch k {
	case Same:
		return "same"
	case Old:
		return "old"
	case New:
		return "new"
	case Replace:
		return "replace"
	case Unified:
		return "unified"
	default:
		return "unknown"
	}
}

// Range is a classified sub-span of a hunk over elements of type T (lines at
// the hunk level, tokens during refinement). Which fields are populated
// depends on Kind:
//
//   - Same: Pairs holds aligned (mine, other) element pairs.
//   - Old: Mine holds the removed elements.
//   - New: Other holds the added elements.
//   - Replace: Mine holds the removed and Other the added elements.
//   - Unified: Mine holds the merged display elements.
//
// Refined marks ranges whose elements were produced by word-level refinement
// and therefore already carry their own styling.
type Range[T any] struct {
	Kind    RangeKind
	Pairs   [][2]T
	Mine    []T
	Other   []T
	Refined bool
}

// SameRange returns a Same range over aligned pairs.
func SameRange[T any](pairs [][2]T) Range[T] {
	return Range[T]{Kind: Same, Pairs: pairs}
}

// OldRange returns an Old range over removed elements.
func OldRange[T any](elems []T) Range[T] {
	return Range[T]{Kind: Old, Mine: elems}
}

// NewRange returns a New range over added elements.
func NewRange[T any](elems []T) Range[T] {
	return Range[T]{Kind: New, Other: elems}
}

// ReplaceRange returns a Replace range pairing removed and added elements.
func ReplaceRange[T any](mine, other []T) Range[T] {
	return Range[T]{Kind: Replace, Mine: mine, Other: other}
}

// UnifiedRange returns a Unified range over merged display elements.
func UnifiedRange[T any](elems []T) Range[T] {
	return Range[T]{Kind: Unified, Mine: elems}
}

// mineLen returns how many elements the range spans on the mine side.
func (r Range[T]) mineLen() int {
	switch r.Kind {
	case Same:
		return len(r.Pairs)
	case Old, Replace:
		return len(r.Mine)
	default:
		return 0
	}
}

// otherLen returns how many elements the range spans on the other side.
func (r Range[T]) otherLen() int {
	switch r.Kind {
	case Same:
		return len(r.Pairs)
	case New, Replace:
		return len(r.Other)
	default:
		return 0
	}
}

// Hunk is a contiguous span of aligned content between two sequences,
// composed of ordered ranges. Start positions are 1-based.
type Hunk[T any] struct {
	MineStart, MineSize   int
	OtherStart, OtherSize int
	Ranges                []Range[T]
}

// FileDiff is one file pair's worth of hunks, ready for refinement and
// rendering.
type FileDiff struct {
	OldFile string
	NewFile string
	Hunks   []Hunk[string]
}

// WindowRanges cuts a flat, full-file range list into hunks with at most
// context unchanged lines on either side of each change run. A negative
// context returns the whole sequence as a single hunk with no trimming.
// Oracle adapters share this so hunk shapes do not depend on the diff
// algorithm in use.
func WindowRanges(ranges []Range[string], context int) []Hunk[string] {
	if context < 0 {
		h := Hunk[string]{MineStart: 1, OtherStart: 1, Ranges: ranges}
		for _, r := range ranges {
			h.MineSize += r.mineLen()
			h.OtherSize += r.otherLen()
		}
		return []Hunk[string]{h}
	}

	var hunks []Hunk[string]
	var cur *Hunk[string]
	var prevSame [][2]string
	mine, other := 1, 1 // next line number on each side

	for i, r := range ranges {
		if r.Kind == Same {
			n := len(r.Pairs)
			if cur != nil {
				keep := n
				closing := i == len(ranges)-1 || n > 2*context
				if closing {
					keep = min(n, context)
				}
				if keep > 0 {
					cur.Ranges = append(cur.Ranges, SameRange(r.Pairs[:keep]))
					cur.MineSize += keep
					cur.OtherSize += keep
				}
				if closing {
					hunks = append(hunks, *cur)
					cur = nil
				}
			}
			prevSame = r.Pairs
			mine += n
			other += n
			continue
		}

		if cur == nil {
			cur = &Hunk[string]{MineStart: mine, OtherStart: other}
			if k := min(context, len(prevSame)); k > 0 {
				cur.MineStart -= k
				cur.OtherStart -= k
				cur.MineSize += k
				cur.OtherSize += k
				cur.Ranges = append(cur.Ranges, SameRange(prevSame[len(prevSame)-k:]))
			}
		}
		cur.Ranges = append(cur.Ranges, r)
		cur.MineSize += r.mineLen()
		cur.OtherSize += r.otherLen()
		mine += r.mineLen()
		other += r.otherLen()
		prevSame = nil
	}

	if cur != nil {
		hunks = append(hunks, *cur)
	}
	return hunks
}
