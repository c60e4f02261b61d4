// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package tmdb

import "strings"

// DefaultImageBaseURL serves posters at 500px width.
const DefaultImageBaseURL = "https://image.tmdb.org/t/p/w500"

// BuildImageURL joins an image base and a poster path with exactly one slash.
// An empty path yields "".
func BuildImageURL(base, path string) string {
	if path == "" {
		return ""
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}
