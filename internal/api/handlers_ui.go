// Marquee - Movie Recommendation Lookup and Poster Gallery
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/marquee

package api

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/tomtom215/marquee/internal/gallery"
	"github.com/tomtom215/marquee/internal/logging"
	"github.com/tomtom215/marquee/internal/recommend"
)

//go:embed templates/index.html.tmpl
var templateFS embed.FS

// Themes accepted by the ?theme= parameter.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// palette is one style set of the page.
type palette struct {
	Background    string
	Text          string
	Card          string
	Control       string
	ControlBorder string
	ControlHover  string
	Subheader     string
}

var (
	darkPalette = palette{
		Background:    "#1a1a1a",
		Text:          "#ffffff",
		Card:          "#2a2a2a",
		Control:       "#333333",
		ControlBorder: "#555555",
		ControlHover:  "#444444",
		Subheader:     "#cccccc",
	}
	lightPalette = palette{
		Background:    "#f5f5f5",
		Text:          "#333333",
		Card:          "#ffffff",
		Control:       "#ffffff",
		ControlBorder: "#cccccc",
		ControlHover:  "#e0e0e0",
		Subheader:     "#666666",
	}
)

// css renders the palette as custom properties. The values are constants, so
// marking them safe for the style context is sound.
func (p palette) css() template.CSS {
	return template.CSS(fmt.Sprintf(
		":root{--bg:%s;--text:%s;--card:%s;--control:%s;--control-border:%s;--control-hover:%s;--subheader:%s;}",
		p.Background, p.Text, p.Card, p.Control, p.ControlBorder, p.ControlHover, p.Subheader,
	))
}

// pageData is the template context of the HTML page.
type pageData struct {
	Nonce       string
	Title       string
	Subtitle    string
	Theme       string
	ThemeCSS    template.CSS
	DarkMode    bool
	ToggleURL   string
	Titles      []string
	Selected    string
	Cards       []gallery.Card
	Placeholder string
	NotFound    bool
	Notice      string
}

func parsePageTemplate() (*template.Template, error) {
	tmpl, err := template.New("index.html.tmpl").ParseFS(templateFS, "templates/index.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}
	return tmpl, nil
}

// resolveTheme picks the theme from ?theme=, falling back to the configured default.
func resolveTheme(r *http.Request, darkDefault bool) string {
	switch strings.ToLower(r.URL.Query().Get("theme")) {
	case ThemeDark:
		return ThemeDark
	case ThemeLight:
		return ThemeLight
	}
	if darkDefault {
		return ThemeDark
	}
	return ThemeLight
}

// toggleURL links to the same page in the other theme, keeping the selection.
func toggleURL(theme, title string) string {
	next := ThemeDark
	if theme == ThemeDark {
		next = ThemeLight
	}

	q := url.Values{}
	q.Set("theme", next)
	if title != "" {
		q.Set("title", title)
	}
	return "/?" + q.Encode()
}

// Index renders the recommender page. With ?title= it shows the gallery for
// that movie; an unknown title renders the page with a notice and 404.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	theme := resolveTheme(r, h.deps.UI.DarkMode)
	selected := strings.TrimSpace(r.URL.Query().Get("title"))

	pal := lightPalette
	if theme == ThemeDark {
		pal = darkPalette
	}

	data := pageData{
		Nonce:       CSPNonce(r.Context()),
		Title:       h.deps.UI.Title,
		Subtitle:    h.deps.UI.Subtitle,
		Theme:       theme,
		ThemeCSS:    pal.css(),
		DarkMode:    theme == ThemeDark,
		ToggleURL:   toggleURL(theme, selected),
		Titles:      h.deps.Catalog.Titles(),
		Selected:    selected,
		Placeholder: h.deps.Posters.Placeholder(),
	}

	status := http.StatusOK
	if selected != "" {
		status = h.fillGallery(r, &data)
	}

	h.renderPage(w, r, status, &data)
}

// fillGallery builds the cards for data.Selected and returns the page status.
func (h *Handler) fillGallery(r *http.Request, data *pageData) int {
	if !h.ready.Load() {
		data.Notice = "The movie catalog is still loading. Please try again shortly."
		return http.StatusServiceUnavailable
	}

	g, err := h.deps.Gallery.BuildWithOptions(r.Context(), data.Selected, 0, gallery.Options{})
	switch {
	case err == nil:
		data.Cards = g.Cards
		return http.StatusOK
	case errors.Is(err, recommend.ErrNotFound):
		data.NotFound = true
		data.Notice = fmt.Sprintf("%q was not found in the catalog.", data.Selected)
		return http.StatusNotFound
	default:
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to build gallery for page")
		data.Notice = "Recommendations are unavailable right now."
		return http.StatusInternalServerError
	}
}

// renderPage executes into a buffer first so a template failure never leaves
// a half-written page behind a success status.
func (h *Handler) renderPage(w http.ResponseWriter, r *http.Request, status int, data *pageData) {
	var buf bytes.Buffer
	if err := h.page.Execute(&buf, data); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to execute page template")
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write page")
	}
}
