package filtration

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/arvantis/simplicial/simplicial"
)

// WriteText serializes f to w in the on-disk format: one line per T entry,
// comma-separated vertex labels followed by the filtration value, e.g.
// "1,2,3,0.5" for simplex {1,2,3} entering at 0.5.
func WriteText(w io.Writer, f *Filtration) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = false

	for _, e := range f.t {
		cell, err := f.complex.CellAt(e.Index, e.Dim)
		if err != nil {
			return err
		}
		vs := cell.Vertices()
		record := make([]string, 0, len(vs)+1)
		for _, v := range vs {
			record = append(record, strconv.Itoa(v))
		}
		record = append(record, strconv.FormatFloat(e.Value, 'g', -1, 64))
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadText reconstructs a Filtration by pushing each line's simplex in line
// order with recursive=false, per the on-disk format's contract that lines
// are pre-closed under faces (every face of a line's simplex already
// appeared on an earlier line).
func ReadText(r io.Reader) (*Filtration, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	cx := simplicial.NewComplex()
	flt := &Filtration{complex: cx}

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) < 2 {
			return nil, fmt.Errorf("filtration.ReadText: %v: %w", record, ErrMalformedLine)
		}

		vs := make([]int, len(record)-1)
		for i, tok := range record[:len(record)-1] {
			n, convErr := strconv.Atoi(tok)
			if convErr != nil {
				return nil, fmt.Errorf("filtration.ReadText: vertex %q: %w", tok, ErrMalformedLine)
			}
			vs[i] = n
		}
		v, convErr := strconv.ParseFloat(record[len(record)-1], 64)
		if convErr != nil {
			return nil, fmt.Errorf("filtration.ReadText: value %q: %w", record[len(record)-1], ErrMalformedLine)
		}

		sigma, err := simplicial.NewSimplex(vs...)
		if err != nil {
			return nil, err
		}
		if _, err := flt.Push(sigma, v, false); err != nil {
			return nil, err
		}
	}

	return flt, nil
}
