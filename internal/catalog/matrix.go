// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Matrix is a square similarity matrix. Entry [i][j] scores movie j
// against movie i.
type Matrix [][]float64

// LoadMatrix reads a similarity file, choosing the parser by extension.
func LoadMatrix(path string) (Matrix, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("open similarity matrix: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ParseMatrixJSON(f)
	case ".csv":
		return ParseMatrixCSV(f)
	default:
		return nil, fmt.Errorf("similarity matrix %s: %w", path, ErrUnsupportedFormat)
	}
}

// ParseMatrixJSON parses an array of arrays of numbers.
func ParseMatrixJSON(r io.Reader) (Matrix, error) {
	var m Matrix
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode similarity matrix: %w", err)
	}
	return m, nil
}

// ParseMatrixCSV parses one matrix row per line with no header.
func ParseMatrixCSV(r io.Reader) (Matrix, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	var m Matrix
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read similarity row %d: %w", len(m), err)
		}

		row := make([]float64, len(record))
		for j, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, fmt.Errorf("similarity row %d column %d: %w", len(m), j, err)
			}
			row[j] = v
		}
		m = append(m, row)
	}
	return m, nil
}

// Validate checks that m is n by n and every score is finite.
func (m Matrix) Validate(n int) error {
	if len(m) != n {
		return fmt.Errorf("%w: %d rows for %d movies", ErrDimensionMismatch, len(m), n)
	}
	for i, row := range m {
		if len(row) != n {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrDimensionMismatch, i, len(row), n)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w at [%d][%d]", ErrInvalidScore, i, j)
			}
		}
	}
	return nil
}
