// SPDX-License-Identifier: MIT

// Package matrixio reads and writes CSR matrices and similarity results as
// JSON. The matrix format mirrors the CSR arrays one to one:
//
//	{"rows":2,"cols":3,"row_ptr":[0,3,6],"col_idx":[0,1,2,0,1,2],"values":[1,2,3,4,5,6]}
package matrixio

import (
	"errors"
	"fmt"
	"io"
	"os"

	json "github.com/goccy/go-json"

	"github.com/katalvlaran/sparsesim/csr"
	"github.com/katalvlaran/sparsesim/similarity"
)

// ErrFormat reports a document that is not a matrix file.
var ErrFormat = errors.New("matrixio: invalid format")

// matrixFile is the on-disk shape of a CSR matrix.
type matrixFile struct {
	Rows   *int      `json:"rows"`
	Cols   *int      `json:"cols"`
	RowPtr []int     `json:"row_ptr"`
	ColIdx []int     `json:"col_idx"`
	Values []float64 `json:"values"`
}

// DecodeMatrix reads one matrix document from r and builds it with csr.Build.
// Unknown fields, missing dimensions or a missing row_ptr yield ErrFormat;
// structural problems surface as the csr sentinel errors.
func DecodeMatrix(r io.Reader, opts ...csr.Option) (*csr.Matrix, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var f matrixFile
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	switch {
	case f.Rows == nil:
		return nil, fmt.Errorf("%w: missing rows", ErrFormat)
	case f.Cols == nil:
		return nil, fmt.Errorf("%w: missing cols", ErrFormat)
	case f.RowPtr == nil:
		return nil, fmt.Errorf("%w: missing row_ptr", ErrFormat)
	}

	return csr.Build(*f.Rows, *f.Cols, f.RowPtr, f.ColIdx, f.Values, opts...)
}

// EncodeMatrix writes m to w as a single JSON document.
func EncodeMatrix(w io.Writer, m *csr.Matrix) error {
	if m == nil {
		return csr.ErrNilMatrix
	}
	rows, cols := m.Dims()
	f := matrixFile{
		Rows:   &rows,
		Cols:   &cols,
		RowPtr: m.RowPtr(),
		ColIdx: m.ColIdx(),
		Values: m.Values(),
	}
	// Keep empty arrays as [] so the document round-trips through DecodeMatrix.
	if f.ColIdx == nil {
		f.ColIdx = []int{}
	}
	if f.Values == nil {
		f.Values = []float64{}
	}

	return json.NewEncoder(w).Encode(f)
}

// ReadMatrix decodes the matrix stored at path.
func ReadMatrix(path string, opts ...csr.Option) (*csr.Matrix, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening matrix file: %w", err)
	}
	defer fh.Close()

	m, err := DecodeMatrix(fh, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return m, nil
}

// WriteMatrix encodes m into the file at path, replacing it.
func WriteMatrix(path string, m *csr.Matrix) error {
	fh, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating matrix file: %w", err)
	}
	if err := EncodeMatrix(fh, m); err != nil {
		fh.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return fh.Close()
}

// matchJSON and rowJSON are the wire shapes of similarity results.
type matchJSON struct {
	Idx   int     `json:"idx"`
	Score float64 `json:"score"`
}

type rowJSON struct {
	Idx     int         `json:"idx"`
	Matches []matchJSON `json:"matches"`
}

// resultFile is the document written by EncodeResultSet.
type resultFile struct {
	Pairs     int       `json:"pairs"`
	Cancelled bool      `json:"cancelled,omitempty"`
	Rows      []rowJSON `json:"rows"`
}

// EncodeResultSet writes rs to w. cancelled marks a partial result.
func EncodeResultSet(w io.Writer, rs similarity.ResultSet, cancelled bool) error {
	f := resultFile{
		Pairs:     rs.Pairs(),
		Cancelled: cancelled,
		Rows:      make([]rowJSON, len(rs)),
	}
	for i, r := range rs {
		ms := make([]matchJSON, len(r.Values))
		for j, m := range r.Values {
			ms[j] = matchJSON{Idx: m.Idx, Score: m.S}
		}
		f.Rows[i] = rowJSON{Idx: r.Idx, Matches: ms}
	}

	return json.NewEncoder(w).Encode(f)
}

// DecodeResultSet reads a document produced by EncodeResultSet.
func DecodeResultSet(r io.Reader) (similarity.ResultSet, bool, error) {
	var f resultFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, false, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	rs := make(similarity.ResultSet, len(f.Rows))
	for i, row := range f.Rows {
		ms := make([]similarity.Match, len(row.Matches))
		for j, m := range row.Matches {
			ms[j] = similarity.Match{Idx: m.Idx, S: m.Score}
		}
		rs[i] = similarity.RowResult{Idx: row.Idx, Values: ms}
	}

	return rs, f.Cancelled, nil
}
