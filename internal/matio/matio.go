// Package matio reads and writes dense matrices as plain text.
//
// Format: one row per line, fields separated by whitespace (or by commas in
// CSV mode). A '#' starts a comment that runs to the end of the line; blank
// and comment-only lines are skipped.
package matio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/matinv/matrix"
)

var (
	// ErrRaggedRows is returned when rows have different field counts.
	// It matches matrix.ErrRaggedRows under errors.Is.
	ErrRaggedRows = matrix.ErrRaggedRows

	// ErrEmpty is returned when the input holds no rows.
	ErrEmpty = errors.New("matio: no matrix rows in input")

	// ErrSyntax is returned when a field is not a number.
	ErrSyntax = errors.New("matio: invalid number")
)

const commentMark = "#"

// Format selects the field separator.
type Format struct {
	Comma     bool // CSV: fields separated by ','
	Precision int  // digits for Write; -1 = shortest round-trip
}

// Read parses a matrix from r.
// Values go through matrix.FromRows, so NaN/Inf fields yield matrix.ErrNaNInf.
func Read(r io.Reader, f Format) (*matrix.Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var (
		rows   [][]float64
		line   int
		fields []string
	)
	for sc.Scan() {
		line++
		text := sc.Text()
		if k := strings.Index(text, commentMark); k >= 0 {
			text = text[:k]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		fields = split(text, f.Comma)

		row := make([]float64, len(fields))
		for j, fld := range fields {
			v, err := strconv.ParseFloat(fld, 64)
			if err != nil {
				return nil, fmt.Errorf("matio: line %d field %d %q: %w", line, j+1, fld, ErrSyntax)
			}
			row[j] = v
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("matio: line %d: %d fields, want %d: %w", line, len(row), len(rows[0]), ErrRaggedRows)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("matio: read: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}

	m, err := matrix.FromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("matio: %w", err)
	}

	return m, nil
}

func split(text string, comma bool) []string {
	if !comma {
		return strings.Fields(text)
	}
	parts := strings.Split(text, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	return parts
}

// Write prints m one row per line using f.
func Write(w io.Writer, m matrix.Matrix, f Format) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("matio: %w", err)
	}
	sep := " "
	if f.Comma {
		sep = ","
	}
	prec := f.Precision
	if prec < 0 {
		prec = -1
	}

	bw := bufio.NewWriter(w)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return fmt.Errorf("matio: %w", err)
			}
			if j > 0 {
				_, _ = bw.WriteString(sep)
			}
			_, _ = bw.WriteString(strconv.FormatFloat(v, 'g', prec, 64))
		}
		_ = bw.WriteByte('\n')
	}

	return bw.Flush()
}
