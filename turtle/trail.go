package turtle

// Segment is one drawn line: two endpoints and the pen color it was drawn
// with. Segments are immutable once appended.
type Segment struct {
	X1, Y1 float64
	X2, Y2 float64
	Color  RGB
}

// initialTrailCap is the segment capacity a fresh trail starts with.
const initialTrailCap = 50

// Trail is the append-only store of drawn segments. Storage doubles when
// full, never shrinks, and segments are never removed or reordered, so N
// appends cost O(N) moves overall.
type Trail struct {
	segs []Segment
}

// NewTrail returns an empty trail with room for initialTrailCap segments.
func NewTrail() *Trail {
	return &Trail{segs: make([]Segment, 0, initialTrailCap)}
}

// Append stores seg after the existing segments, doubling the underlying
// storage when full. A failed growth is fatal: the runtime aborts the
// process rather than dropping drawing data.
func (t *Trail) Append(seg Segment) {
	if len(t.segs) == cap(t.segs) {
		next := cap(t.segs) * 2
		if next == 0 {
			next = initialTrailCap
		}
		grown := make([]Segment, len(t.segs), next)
		copy(grown, t.segs)
		t.segs = grown
	}
	t.segs = append(t.segs, seg)
}

// Len returns the number of stored segments.
func (t *Trail) Len() int { return len(t.segs) }

// Cap returns the current segment capacity.
func (t *Trail) Cap() int { return cap(t.segs) }

// ForEach visits the segments in insertion order until fn returns false.
func (t *Trail) ForEach(fn func(Segment) bool) {
	for _, seg := range t.segs {
		if !fn(seg) {
			return
		}
	}
}
