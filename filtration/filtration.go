package filtration

import (
	"sort"

	"github.com/arvantis/simplicial/simplicial"
)

// Entry is one record in a filtration's total order T: a cell, identified by
// (dim, index) within its owning Complex, and the scale value at which it
// enters.
type Entry struct {
	Dim   int
	Index int // 1-based within Complex
	Value float64
}

// CellRef identifies a cell by (dim, index) without its filtration value,
// used in Step output where the value is already the step's key.
type CellRef struct {
	Dim   int
	Index int
}

// WeightLookup resolves a cell's filtration weight against the complex that
// owns it. vr.Weights satisfies this interface, but filtration depends on no
// particular producer: any dimension-indexed weight source works.
type WeightLookup interface {
	At(c *simplicial.Complex, sigma simplicial.Simplex) (float64, bool)
}

// Filtration is a simplicial.Complex plus a totally ordered sequence T of its
// cells, ordered lexicographically by (value, dim). T grows only through
// Push; New performs the initial one-shot assembly.
type Filtration struct {
	complex *simplicial.Complex
	t       []Entry
}

// Complex returns the filtration's underlying complex.
func (f *Filtration) Complex() *simplicial.Complex {
	return f.complex
}

// Entries returns a defensive copy of T in its current (value, dim) order.
func (f *Filtration) Entries() []Entry {
	out := make([]Entry, len(f.t))
	copy(out, f.t)

	return out
}

// New assembles T from c: cells are emitted in dimension order (d = 0..dim(C),
// index order within each dimension), assigned a value via weights.At if
// weights is non-nil, else assigned consecutive insertion-order values
// 1, 2, 3, ... in that same dimension-major enumeration order (the only
// total order a Complex's dimension-partitioned storage makes available
// without a weight source). The result is stable-sorted by (value, dim).
//
// Complexity: O(N log N), N = total cell count.
func New(c *simplicial.Complex, weights WeightLookup) (*Filtration, error) {
	var entries []Entry
	for d := 0; d <= c.Dim(); d++ {
		for _, cell := range c.Cells(d) {
			idx := c.IndexOf(cell)
			v := float64(len(entries) + 1)
			if weights != nil {
				if val, ok := weights.At(c, cell); ok {
					v = val
				}
			}
			entries = append(entries, Entry{Dim: d, Index: idx, Value: v})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Value != entries[j].Value {
			return entries[i].Value < entries[j].Value
		}

		return entries[i].Dim < entries[j].Dim
	})

	return &Filtration{complex: c, t: entries}, nil
}

// Push inserts sigma into the underlying complex (closing over faces first
// if recursive) and splices every newly created cell into T, all at value v,
// at the first position where preceding entries have value <= v and
// following entries have value > v. Faces created by a recursive insert
// precede sigma itself in the spliced run, since Complex.Add already returns
// them in that order.
//
// Returns the newly inserted entries (possibly none, if sigma was already
// present), in the same order they were spliced into T.
func (f *Filtration) Push(sigma simplicial.Simplex, v float64, recursive bool) ([]Entry, error) {
	inserted, err := f.complex.Add(sigma, recursive)
	if err != nil {
		return nil, err
	}
	if len(inserted) == 0 {
		return nil, nil
	}

	entries := make([]Entry, len(inserted))
	for i, cell := range inserted {
		entries[i] = Entry{Dim: cell.Dim(), Index: f.complex.IndexOf(cell), Value: v}
	}

	pos := sort.Search(len(f.t), func(i int) bool { return f.t[i].Value > v })
	merged := make([]Entry, 0, len(f.t)+len(entries))
	merged = append(merged, f.t[:pos]...)
	merged = append(merged, entries...)
	merged = append(merged, f.t[pos:]...)
	f.t = merged

	return entries, nil
}

// Step is one group of cells sharing a filtration value, produced by Iterate.
type Step struct {
	Value float64
	Cells []CellRef
}

// Continuous requests one Step per distinct filtration value (the
// divisions = infinity case).
const Continuous = 0

// Iterate groups T into Steps. With divisions == Continuous, each distinct
// value in T produces one Step. With divisions == N > 0, the value range
// [min, max] is split into N equal half-open steps [min+i*w, min+(i+1)*w),
// except the last step which also includes max; empty steps are omitted.
//
// Returns ErrInvalidDivisions if divisions < 0.
func (f *Filtration) Iterate(divisions int) ([]Step, error) {
	if divisions < 0 {
		return nil, ErrInvalidDivisions
	}
	if len(f.t) == 0 {
		return nil, nil
	}
	if divisions == Continuous {
		return f.iterateContinuous(), nil
	}

	return f.iterateDivisions(divisions)
}

func (f *Filtration) iterateContinuous() []Step {
	var steps []Step
	i := 0
	for i < len(f.t) {
		v := f.t[i].Value
		j := i
		var cells []CellRef
		for j < len(f.t) && f.t[j].Value == v {
			cells = append(cells, CellRef{Dim: f.t[j].Dim, Index: f.t[j].Index})
			j++
		}
		steps = append(steps, Step{Value: v, Cells: cells})
		i = j
	}

	return steps
}

func (f *Filtration) iterateDivisions(n int) ([]Step, error) {
	lo, hi := f.t[0].Value, f.t[0].Value
	for _, e := range f.t {
		if e.Value < lo {
			lo = e.Value
		}
		if e.Value > hi {
			hi = e.Value
		}
	}
	width := (hi - lo) / float64(n)
	if width == 0 {
		width = 1 // degenerate: every cell shares one value
	}

	buckets := make([][]CellRef, n)
	for _, e := range f.t {
		idx := int((e.Value - lo) / width)
		if idx >= n {
			idx = n - 1 // the max value belongs to the last half-open interval
		}
		buckets[idx] = append(buckets[idx], CellRef{Dim: e.Dim, Index: e.Index})
	}

	var steps []Step
	for i, b := range buckets {
		if len(b) == 0 {
			continue
		}
		steps = append(steps, Step{Value: lo + float64(i)*width, Cells: b})
	}

	return steps, nil
}
