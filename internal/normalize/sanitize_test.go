package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newTestSanitizer(t *testing.T) *Sanitizer {
	t.Helper()
	return NewSanitizer(zap.NewNop())
}

func TestSanitizeStripWrappingQuotes(t *testing.T) {
	s := newTestSanitizer(t)

	out := s.Sanitize(`"<div>Hi</div>"`, "", "")

	assert.Equal(t, "<div>Hi</div>", out)
}

func TestSanitizeExtractNestedPreview(t *testing.T) {
	s := newTestSanitizer(t)

	// The preview field itself contains JSON text rather than markup.
	in := `{"preview_html": "<div style=\"color: red;\">Nested</div>"}`

	out := s.Sanitize(in, "", "")

	assert.Contains(t, out, `<div style="color: red;">Nested</div>`)
	assert.NotContains(t, out, `"preview_html"`)
}

func TestSanitizeWrapsPlainText(t *testing.T) {
	s := newTestSanitizer(t)

	out := s.Sanitize("Just a caption", "", "")

	assert.Contains(t, out, "<div")
	assert.Contains(t, out, "Just a caption")
	assert.Contains(t, out, "justify-content: center")
}

func TestSanitizeWrapsBareIcon(t *testing.T) {
	s := newTestSanitizer(t)

	out := s.Sanitize(`<svg width="24" height="24"/>`, "", "")

	assert.Contains(t, out, "<div")
	assert.Contains(t, out, "background-color: #000")
	assert.Contains(t, out, "<svg")
}

func TestSanitizeHeaderBackground(t *testing.T) {
	tests := []struct {
		name    string
		preview string
		changed bool
	}{
		{
			name:    "header without background gains dark styling",
			preview: "<header><h1>Title</h1></header>",
			changed: true,
		},
		{
			name:    "header with existing background untouched",
			preview: `<header style="background-color: #333;"><h1>Title</h1></header>`,
			changed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSanitizer(t)
			out := s.Sanitize(tt.preview, "", "")
			if tt.changed {
				assert.Contains(t, out, "background-color: #000")
				assert.Contains(t, out, "display: flex")
			} else {
				assert.Equal(t, tt.preview, out)
			}
		})
	}
}

func TestSanitizeForcesHeaderStylingFromDescription(t *testing.T) {
	s := newTestSanitizer(t)

	// Description mentions a header but the markup has no black background.
	out := s.Sanitize(`<div>App Title</div>`, "A header with the app title", "")

	assert.Contains(t, out, "background-color: #000")
}

func TestSanitizeSynthesizesIcons(t *testing.T) {
	tests := []struct {
		name        string
		description string
		sourceCode  string
		wantGlyph   string
	}{
		{
			name:        "hamburger keyword picks hamburger glyph",
			description: "A header with a hamburger icon",
			sourceCode:  `import { Menu } from 'lucide-react';`,
			wantGlyph:   "🍔",
		},
		{
			name:        "theme keyword picks moon glyph",
			description: "A header with a theme toggle icon",
			sourceCode:  `import { Moon } from 'lucide-react';`,
			wantGlyph:   "🌙",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSanitizer(t)
			out := s.Sanitize("<div>Title</div>", tt.description, tt.sourceCode)
			assert.Contains(t, out, tt.wantGlyph)
		})
	}
}

func TestSanitizeIconsRequireIconImport(t *testing.T) {
	s := newTestSanitizer(t)

	// Without an icon library import in the source code, no placeholder
	// icons are synthesized.
	out := s.Sanitize("<div style=\"background-color: #000;\">Title</div>", "A bar with an icon", "const X = 1;")

	assert.NotContains(t, out, "🍔")
	assert.NotContains(t, out, "✨")
}

func TestSanitizeNeverPanicsOnMalformedInput(t *testing.T) {
	inputs := []string{
		"",
		`"`,
		"<div",
		"<<<>>>",
		`"preview_html":`,
		"<header",
	}

	for _, in := range inputs {
		s := newTestSanitizer(t)
		assert.NotPanics(t, func() { s.Sanitize(in, "some description", "some code") }, "input: %q", in)
	}
}

func TestSanitizeCleanMarkupUnchanged(t *testing.T) {
	s := newTestSanitizer(t)

	// Markup that already has a container and needs no repair passes
	// through untouched.
	in := `<div style="padding: 8px;">Home</div>`

	assert.Equal(t, in, s.Sanitize(in, "A home screen", "const Home = () => {}"))
}
