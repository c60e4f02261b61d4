// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package tmdb

import "testing"

func TestBuildImageURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		base string
		path string
		want string
	}{
		{"plain", "https://image.tmdb.org/t/p/w500", "/abc.jpg", "https://image.tmdb.org/t/p/w500/abc.jpg"},
		{"trailing slash on base", "https://image.tmdb.org/t/p/w500/", "/abc.jpg", "https://image.tmdb.org/t/p/w500/abc.jpg"},
		{"no leading slash on path", "https://image.tmdb.org/t/p/w780", "poster.png", "https://image.tmdb.org/t/p/w780/poster.png"},
		{"both slashes", "https://img.example/", "abc.jpg", "https://img.example/abc.jpg"},
		{"empty path", "https://image.tmdb.org/t/p/w500", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := BuildImageURL(tt.base, tt.path); got != tt.want {
				t.Errorf("BuildImageURL(%q, %q) = %q, want %q", tt.base, tt.path, got, tt.want)
			}
		})
	}
}
