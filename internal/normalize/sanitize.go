package normalize

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"go.uber.org/zap"
)

// Sanitizer applies best-effort heuristic repairs to preview markup so it
// can be rendered directly. The backend's preview output is untrusted and
// variable; each repair is a rule in an explicit ordered table so it can be
// tested in isolation. The sanitizer never fails and always returns a
// string, possibly unchanged.
type Sanitizer struct {
	logger *zap.Logger
	rules  []sanitizeRule
}

// sanitizeInput carries the markup under repair together with the
// companion description and source code that drive the heuristics.
type sanitizeInput struct {
	Preview     string
	Description string
	SourceCode  string
}

// sanitizeRule is a single condition → transformation pair.
type sanitizeRule struct {
	name    string
	applies func(in sanitizeInput) bool
	apply   func(in sanitizeInput) string
}

var (
	anyTagRe        = regexp.MustCompile(`<[^>]+>`)
	selfClosedSVGRe = regexp.MustCompile(`<svg[^>]*/>`)
	headerTagRe     = regexp.MustCompile(`(?i)<header([^>]*)>`)
	nestedPreviewRe = regexp.MustCompile(`"preview_html"\s*:\s*"((?:\\.|[^"\\])*)"`)
	iconImportRe    = regexp.MustCompile(`(?i)import\s+.*(lucide|react-icons|feather|heroicons|@expo/vector-icons|ionicons)`)
)

// NewSanitizer creates a sanitizer with the full repair rule table.
func NewSanitizer(logger *zap.Logger) *Sanitizer {
	s := &Sanitizer{logger: logger}
	s.rules = []sanitizeRule{
		{
			name:    "strip-wrapping-quotes",
			applies: func(in sanitizeInput) bool { return isQuoteWrapped(in.Preview) },
			apply:   func(in sanitizeInput) string { return in.Preview[1 : len(in.Preview)-1] },
		},
		{
			name: "extract-nested-preview",
			applies: func(in sanitizeInput) bool {
				return strings.Contains(in.Preview, `"preview_html"`)
			},
			apply: func(in sanitizeInput) string {
				if m := nestedPreviewRe.FindStringSubmatch(in.Preview); m != nil {
					return Unescape(m[1])
				}
				return in.Preview
			},
		},
		{
			name: "wrap-plain-text",
			applies: func(in sanitizeInput) bool {
				return !anyTagRe.MatchString(in.Preview)
			},
			apply: func(in sanitizeInput) string {
				return `<div style="display: flex; justify-content: center; align-items: center; padding: 16px;">` +
					in.Preview + `</div>`
			},
		},
		{
			name: "wrap-bare-icon",
			applies: func(in sanitizeInput) bool {
				return selfClosedSVGRe.MatchString(in.Preview) && !hasContainer(in.Preview)
			},
			apply: func(in sanitizeInput) string {
				return `<div style="` + darkHeaderStyle + `">` + in.Preview + `</div>`
			},
		},
		{
			name: "header-background",
			applies: func(in sanitizeInput) bool {
				m := headerTagRe.FindStringSubmatch(in.Preview)
				return m != nil && !strings.Contains(strings.ToLower(m[1]), "background")
			},
			apply: func(in sanitizeInput) string {
				return injectHeaderStyle(in.Preview)
			},
		},
		{
			name: "force-header-styling",
			applies: func(in sanitizeInput) bool {
				return mentions(in.Description, "header") && !hasBlackBackground(in.Preview)
			},
			apply: func(in sanitizeInput) string {
				if headerTagRe.MatchString(in.Preview) {
					return injectHeaderStyle(in.Preview)
				}
				return `<div style="` + darkHeaderStyle + `">` + in.Preview + `</div>`
			},
		},
		{
			name: "synthesize-icons",
			applies: func(in sanitizeInput) bool {
				wantsIcons := mentions(in.Description, "icon") || mentions(in.Description, "hamburger")
				return wantsIcons &&
					!strings.Contains(in.Preview, "<svg") &&
					iconImportRe.MatchString(in.SourceCode)
			},
			apply: func(in sanitizeInput) string {
				return synthesizeIcons(in)
			},
		},
	}
	return s
}

// Sanitize runs the repair rules in sequence over the preview markup. The
// description and source code feed the heuristic rules; an empty string for
// either simply disables them.
func (s *Sanitizer) Sanitize(preview, description, sourceCode string) string {
	in := sanitizeInput{Preview: preview, Description: description, SourceCode: sourceCode}
	for _, r := range s.rules {
		if !r.applies(in) {
			continue
		}
		in.Preview = r.apply(in)
		s.logger.Debug("applied preview repair", zap.String("rule", r.name))
	}
	return in.Preview
}

const darkHeaderStyle = "display: flex; flex-direction: row; align-items: center; " +
	"justify-content: space-between; background-color: #000; color: #fff; " +
	"padding: 12px 16px; width: 100%; box-sizing: border-box;"

func isQuoteWrapped(s string) bool {
	return len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`)
}

func hasContainer(s string) bool {
	lower := strings.ToLower(s)
	return strings.Contains(lower, "<div") || strings.Contains(lower, "<header") ||
		strings.Contains(lower, "<nav") || strings.Contains(lower, "<section")
}

func hasBlackBackground(s string) bool {
	lower := strings.ToLower(s)
	for _, decl := range []string{"background-color: #000", "background-color:#000", "background: #000", "background:#000", "background-color: black", "background-color:black"} {
		if strings.Contains(lower, decl) {
			return true
		}
	}
	return false
}

func mentions(description, word string) bool {
	return strings.Contains(strings.ToLower(description), word)
}

// injectHeaderStyle forces a dark background and flex layout onto the first
// header element, merging with any style attribute already present.
func injectHeaderStyle(markup string) string {
	return headerTagRe.ReplaceAllStringFunc(markup, func(tag string) string {
		m := headerTagRe.FindStringSubmatch(tag)
		attrs := m[1]
		if strings.Contains(strings.ToLower(attrs), "style=") {
			// Prepend the forced declarations to the existing style value.
			styleRe := regexp.MustCompile(`(?i)style="`)
			return styleRe.ReplaceAllString(tag, `style="`+darkHeaderStyle+` `)
		}
		return `<header` + attrs + ` style="` + darkHeaderStyle + `">`
	})
}

// synthesizeIcons builds a placeholder header with emoji icons when the
// description asks for icons the markup never delivered. The glyph is
// keyword-matched against the description.
func synthesizeIcons(in sanitizeInput) string {
	leftIcon := iconFor(in.Description)
	label := labelFor(in.Description)
	return fmt.Sprintf(
		`<div style="%s"><span style="font-size: 20px;">%s</span>`+
			`<span style="font-weight: 600;">%s</span>`+
			`<span style="font-size: 20px;">%s</span></div>`,
		darkHeaderStyle, leftIcon, label, rightIconFor(in.Description))
}

func iconFor(description string) string {
	switch {
	case mentions(description, "hamburger"):
		return "🍔"
	case mentions(description, "menu"):
		return "☰"
	case mentions(description, "search"):
		return "🔍"
	default:
		return "✨"
	}
}

func rightIconFor(description string) string {
	switch {
	case mentions(description, "theme"):
		return "🌙"
	case mentions(description, "settings"):
		return "⚙️"
	case mentions(description, "profile"), mentions(description, "user"):
		return "👤"
	default:
		return "✨"
	}
}

// labelFor picks a short title out of the description, falling back to a
// generic one.
func labelFor(description string) string {
	words := strings.Fields(description)
	if len(words) == 0 {
		return "Component"
	}
	if len(words) > 3 {
		words = words[:3]
	}
	label := []rune(strings.ToLower(strings.Join(words, " ")))
	label[0] = unicode.ToUpper(label[0])
	return string(label)
}
