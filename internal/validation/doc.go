// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

// Package validation validates API request parameters with
// go-playground/validator v10.
//
// A single validator instance is built on first use and shared. Field names in
// messages come from the `query` struct tag, so errors name the parameter the
// client actually sent. The custom "movietitle" tag rejects blank titles and
// control characters.
//
//	type recommendationsParams struct {
//	    Title string `query:"title" validate:"required,max=500,movietitle"`
//	    Limit int    `query:"limit" validate:"min=0,max=50"`
//	}
//
//	if verr := validation.ValidateStruct(&params); verr != nil {
//	    apiErr := verr.ToAPIError() // Code: VALIDATION_FAILED
//	}
package validation
