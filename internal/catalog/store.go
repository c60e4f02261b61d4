// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package catalog

import (
	"context"
	"fmt"
	"strings"
)

// Store holds the catalog, its similarity matrix and a title index.
// It is immutable after construction.
type Store struct {
	movies  []Movie
	matrix  Matrix
	byTitle map[string]int
	lower   []string
}

// Load reads both artifacts from disk and builds a Store.
func Load(ctx context.Context, catalogPath, matrixPath string) (*Store, error) {
	movies, err := LoadMovies(catalogPath)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	matrix, err := LoadMatrix(matrixPath)
	if err != nil {
		return nil, err
	}
	return New(movies, matrix)
}

// New validates the artifacts and builds a Store. The inputs are retained
// and must not be modified afterwards.
func New(movies []Movie, matrix Matrix) (*Store, error) {
	if len(movies) == 0 {
		return nil, ErrEmptyCatalog
	}
	if err := matrix.Validate(len(movies)); err != nil {
		return nil, err
	}

	s := &Store{
		movies:  movies,
		matrix:  matrix,
		byTitle: make(map[string]int, len(movies)),
		lower:   make([]string, len(movies)),
	}
	for i, m := range movies {
		if m.Title == "" {
			return nil, fmt.Errorf("movie at index %d has an empty title", i)
		}
		// First occurrence wins for duplicate titles.
		if _, exists := s.byTitle[m.Title]; !exists {
			s.byTitle[m.Title] = i
		}
		s.lower[i] = strings.ToLower(m.Title)
	}
	return s, nil
}

// Len returns the number of movies.
func (s *Store) Len() int {
	return len(s.movies)
}

// Movies returns a copy of the catalog in index order.
func (s *Store) Movies() []Movie {
	out := make([]Movie, len(s.movies))
	copy(out, s.movies)
	return out
}

// Titles returns all titles in catalog order.
func (s *Store) Titles() []string {
	out := make([]string, len(s.movies))
	for i, m := range s.movies {
		out[i] = m.Title
	}
	return out
}

// Index returns the row of the first movie with exactly this title.
func (s *Store) Index(title string) (int, bool) {
	i, ok := s.byTitle[title]
	return i, ok
}

// Movie returns the movie at index i. It panics if i is out of range.
func (s *Store) Movie(i int) Movie {
	return s.movies[i]
}

// Row returns the similarity scores of movie i against every movie.
// Callers must not modify the returned slice.
func (s *Store) Row(i int) []float64 {
	return s.matrix[i]
}

// Search returns up to limit movies whose title contains query,
// case-insensitively, in catalog order. An empty query matches everything.
func (s *Store) Search(query string, limit int) []Movie {
	if limit <= 0 {
		return nil
	}
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]Movie, 0, min(limit, len(s.movies)))
	for i, m := range s.movies {
		if q != "" && !strings.Contains(s.lower[i], q) {
			continue
		}
		out = append(out, m)
		if len(out) == limit {
			break
		}
	}
	return out
}
