// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/marquee/internal/validation"
)

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
// Newlines, carriage returns and other control characters would otherwise let
// a caller forge log entries.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			result.WriteString(fmt.Sprintf("\\x%02x", r))
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// paramError reports a query or path parameter that could not be parsed.
type paramError struct {
	field string
	tag   string
	value string
}

func (e *paramError) Error() string {
	return fmt.Sprintf("%s must be %s", e.field, e.tag)
}

// details renders the error in the same shape as a single validator failure.
func (e *paramError) details() map[string]interface{} {
	return map[string]interface{}{
		"field": e.field,
		"tag":   e.tag,
		"value": sanitizeLogValue(e.value),
	}
}

// queryInt extracts an integer query parameter. An absent parameter yields
// defaultValue; a present but non-numeric one is an error.
func queryInt(r *http.Request, key string, defaultValue int) (int, error) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return defaultValue, nil
	}

	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, &paramError{field: key, tag: "numeric", value: value}
	}
	return n, nil
}

// queryBool extracts a boolean query parameter using strconv.ParseBool rules.
func queryBool(r *http.Request, key string, defaultValue bool) (bool, error) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return defaultValue, nil
	}

	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, &paramError{field: key, tag: "boolean", value: value}
	}
	return b, nil
}

// pathInt64 parses an integer path segment.
func pathInt64(key, value string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return 0, &paramError{field: key, tag: "numeric", value: value}
	}
	return n, nil
}

// respondParamError writes a 400 for an unparsable parameter.
func respondParamError(rw *ResponseWriter, err error) {
	var pe *paramError
	if errors.As(err, &pe) {
		rw.ValidationError(pe.Error(), pe.details())
		return
	}
	rw.ValidationError(err.Error(), nil)
}

// validateRequest validates a request struct using go-playground/validator.
// Returns nil if valid.
//
// Example:
//
//	req := MoviesRequest{Query: q, Limit: limit}
//	if apiErr := validateRequest(&req); apiErr != nil {
//	    rw.ValidationError(apiErr.Message, apiErr.Details)
//	    return
//	}
func validateRequest(v interface{}) *validation.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}
	return validationErr.ToAPIError()
}
