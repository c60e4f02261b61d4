// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package validation

import (
	"strings"
	"testing"
)

type recommendParams struct {
	Title  string `query:"title" validate:"required,max=500,movietitle"`
	Limit  int    `query:"limit" validate:"min=0,max=50"`
	Theme  string `query:"theme" validate:"omitempty,oneof=dark light"`
	Silent bool
}

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() should not return nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same singleton instance")
	}
}

func TestValidateStruct_Valid(t *testing.T) {
	tests := []struct {
		name  string
		input recommendParams
	}{
		{"title only", recommendParams{Title: "Avatar"}},
		{"max limit", recommendParams{Title: "The Dark Knight Rises", Limit: 50}},
		{"dark theme", recommendParams{Title: "Alien", Theme: "dark"}},
		{"light theme", recommendParams{Title: "Alien", Theme: "light"}},
		{"unicode title", recommendParams{Title: "Amélie"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateStruct(&tt.input); err != nil {
				t.Errorf("ValidateStruct() unexpected error: %v", err)
			}
		})
	}
}

func TestValidateStruct_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		input     recommendParams
		wantField string
		wantTag   string
		wantMsg   string
	}{
		{
			name:      "missing title",
			input:     recommendParams{},
			wantField: "title",
			wantTag:   "required",
			wantMsg:   "title is required",
		},
		{
			name:      "blank title",
			input:     recommendParams{Title: "   "},
			wantField: "title",
			wantTag:   "movietitle",
			wantMsg:   "title must be a non-blank title without control characters",
		},
		{
			name:      "control characters",
			input:     recommendParams{Title: "Avatar\x00"},
			wantField: "title",
			wantTag:   "movietitle",
		},
		{
			name:      "title too long",
			input:     recommendParams{Title: strings.Repeat("a", 501)},
			wantField: "title",
			wantTag:   "max",
			wantMsg:   "title must be at most 500 characters",
		},
		{
			name:      "limit too large",
			input:     recommendParams{Title: "Avatar", Limit: 51},
			wantField: "limit",
			wantTag:   "max",
			wantMsg:   "limit must be at most 50",
		},
		{
			name:      "negative limit",
			input:     recommendParams{Title: "Avatar", Limit: -1},
			wantField: "limit",
			wantTag:   "min",
			wantMsg:   "limit must be at least 0",
		},
		{
			name:      "unknown theme",
			input:     recommendParams{Title: "Avatar", Theme: "sepia"},
			wantField: "theme",
			wantTag:   "oneof",
			wantMsg:   "theme must be one of: dark light",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := ValidateStruct(&tt.input)
			if verr == nil {
				t.Fatal("ValidateStruct() expected error, got nil")
			}
			errs := verr.Errors()
			if len(errs) != 1 {
				t.Fatalf("expected 1 error, got %d: %v", len(errs), verr)
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", errs[0].Field(), tt.wantField)
			}
			if errs[0].Tag() != tt.wantTag {
				t.Errorf("Tag() = %q, want %q", errs[0].Tag(), tt.wantTag)
			}
			if tt.wantMsg != "" && errs[0].Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", errs[0].Error(), tt.wantMsg)
			}
		})
	}
}

func TestToAPIError_Single(t *testing.T) {
	verr := ValidateStruct(&recommendParams{Title: "Avatar", Limit: 99})
	if verr == nil {
		t.Fatal("expected validation error")
	}

	apiErr := verr.ToAPIError()
	if apiErr.Code != ErrorCode {
		t.Errorf("Code = %q, want %q", apiErr.Code, ErrorCode)
	}
	if apiErr.Message != "limit must be at most 50" {
		t.Errorf("Message = %q", apiErr.Message)
	}
	if apiErr.Details["field"] != "limit" {
		t.Errorf("Details[field] = %v", apiErr.Details["field"])
	}
	if apiErr.Details["value"] != 99 {
		t.Errorf("Details[value] = %v", apiErr.Details["value"])
	}
}

func TestToAPIError_Multiple(t *testing.T) {
	verr := ValidateStruct(&recommendParams{Limit: 99, Theme: "sepia"})
	if verr == nil {
		t.Fatal("expected validation error")
	}
	if len(verr.Errors()) != 3 {
		t.Fatalf("expected 3 errors, got %d", len(verr.Errors()))
	}

	apiErr := verr.ToAPIError()
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 3 {
		t.Fatalf("Details[fields] = %#v", apiErr.Details["fields"])
	}
	if !strings.Contains(apiErr.Message, "title is required") {
		t.Errorf("Message missing title error: %q", apiErr.Message)
	}
	if !strings.Contains(verr.Error(), "; ") {
		t.Errorf("Error() should join messages: %q", verr.Error())
	}
}

func TestToAPIError_Empty(t *testing.T) {
	verr := &RequestValidationError{}
	if verr.Error() != "validation failed" {
		t.Errorf("Error() = %q", verr.Error())
	}
	if got := verr.ToAPIError(); got.Code != ErrorCode || got.Message != "Validation failed" {
		t.Errorf("ToAPIError() = %+v", got)
	}
}
