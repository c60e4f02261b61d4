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
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Movie is one catalog entry. ID is the TMDB movie id used for poster lookup.
type Movie struct {
	ID    int64  `json:"movie_id"`
	Title string `json:"title"`
}

// LoadMovies reads a catalog file, choosing the parser by extension.
func LoadMovies(path string) ([]Movie, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return ParseMoviesCSV(f)
	case ".json":
		return ParseMoviesJSON(f)
	default:
		return nil, fmt.Errorf("catalog %s: %w", path, ErrUnsupportedFormat)
	}
}

// ParseMoviesCSV parses a catalog with a header row naming movie_id and title.
func ParseMoviesCSV(r io.Reader) ([]Movie, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyCatalog
	}
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}

	idCol, titleCol := -1, -1
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))) {
		case "movie_id":
			idCol = i
		case "title":
			titleCol = i
		}
	}
	if idCol < 0 {
		return nil, fmt.Errorf("catalog header missing movie_id column")
	}
	if titleCol < 0 {
		return nil, fmt.Errorf("catalog header missing title column")
	}

	var movies []Movie
	line := 1
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read catalog line %d: %w", line, err)
		}
		if idCol >= len(record) || titleCol >= len(record) {
			return nil, fmt.Errorf("catalog line %d: expected at least %d fields, got %d",
				line, max(idCol, titleCol)+1, len(record))
		}

		m, err := newMovie(record[idCol], record[titleCol])
		if err != nil {
			return nil, fmt.Errorf("catalog line %d: %w", line, err)
		}
		movies = append(movies, m)
	}

	if len(movies) == 0 {
		return nil, ErrEmptyCatalog
	}
	return movies, nil
}

// ParseMoviesJSON parses a JSON array of movie objects.
func ParseMoviesJSON(r io.Reader) ([]Movie, error) {
	var raw []struct {
		ID    *int64 `json:"movie_id"`
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(raw) == 0 {
		return nil, ErrEmptyCatalog
	}

	movies := make([]Movie, 0, len(raw))
	for i, entry := range raw {
		if entry.ID == nil {
			return nil, fmt.Errorf("catalog entry %d: missing movie_id", i)
		}
		m, err := newMovie(strconv.FormatInt(*entry.ID, 10), entry.Title)
		if err != nil {
			return nil, fmt.Errorf("catalog entry %d: %w", i, err)
		}
		movies = append(movies, m)
	}
	return movies, nil
}

func newMovie(rawID, title string) (Movie, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
	if err != nil {
		return Movie{}, fmt.Errorf("invalid movie_id %q: %w", rawID, err)
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return Movie{}, fmt.Errorf("movie %d has an empty title", id)
	}
	return Movie{ID: id, Title: title}, nil
}
