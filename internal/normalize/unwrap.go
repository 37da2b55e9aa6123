package normalize

import (
	"encoding/json"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/creai-labs/creai/internal/component"
)

// Unwrapper reduces the backend's ambiguous component payload to a
// normalized Record. The backend returns generated content whose shape is
// inconsistent: sometimes a JSON object, sometimes a JSON-encoded string,
// sometimes a string containing a markdown-fenced JSON block, sometimes raw
// text. Unwrapping tries an explicit ordered list of strategies, first
// success wins, and the winning strategy is logged so fallthrough is
// observable rather than silent.
type Unwrapper struct {
	logger    *zap.Logger
	sanitizer *Sanitizer
}

// NewUnwrapper creates a new payload unwrapper.
func NewUnwrapper(logger *zap.Logger) *Unwrapper {
	return &Unwrapper{
		logger:    logger,
		sanitizer: NewSanitizer(logger),
	}
}

// strategy is a single parser attempt. It reports whether it recovered a
// record from the string payload.
type strategy struct {
	name string
	fn   func(s string) (component.Record, bool)
}

var (
	fencedJSONRe = regexp.MustCompile("```json\\s*([\\s\\S]*?)\\s*```")

	// Field patterns stop at the first unescaped quote.
	descriptionRe = regexp.MustCompile(`"visual_description"\s*:\s*"((?:\\.|[^"\\])*)"`)
	previewRe     = regexp.MustCompile(`"preview_html"\s*:\s*"((?:\\.|[^"\\])*)"`)
	codeRe        = regexp.MustCompile(`"component_code"\s*:\s*"((?:\\.|[^"\\])*)"`)
)

// Unwrap produces a Record from the raw component field of a backend
// envelope. It never fails: when no strategy recovers a field, the entire
// original string is preserved verbatim as the source code so the payload
// is never dropped. Recovered previews are passed through the sanitizer
// before the record is returned.
func (u *Unwrapper) Unwrap(raw json.RawMessage) component.Record {
	rec, how := u.unwrap(raw)
	if how != "object" && how != "" {
		// Anything past the direct-object path means the backend did not
		// honor the structured contract. Worth a diagnostic, never an error.
		u.logger.Warn("component payload required recovery",
			zap.String("strategy", how))
	}
	if rec.PreviewHTML != "" {
		rec.PreviewHTML = u.sanitizer.Sanitize(Unescape(rec.PreviewHTML), rec.Description, rec.SourceCode)
	}
	return rec
}

func (u *Unwrapper) unwrap(raw json.RawMessage) (component.Record, string) {
	if len(raw) == 0 {
		return component.Record{}, ""
	}

	// Already a structured object: use it directly.
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "{") {
		var rec component.Record
		if err := json.Unmarshal(raw, &rec); err == nil {
			return rec, "object"
		}
	}

	// Otherwise the payload should be a JSON string wrapping the real
	// content. If it is not even that, fall through with the raw bytes.
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		s = trimmed
	}

	for _, st := range u.strategies() {
		if rec, ok := st.fn(s); ok {
			return rec, st.name
		}
	}

	// No strategy recovered anything; keep the payload verbatim.
	return component.Record{SourceCode: s}, "verbatim"
}

func (u *Unwrapper) strategies() []strategy {
	return []strategy{
		{name: "json-string", fn: parseJSONString},
		{name: "fenced-json", fn: parseFencedJSON},
		{name: "field-regex", fn: extractFields},
	}
}

// parseJSONString attempts a strict JSON parse of the string content.
func parseJSONString(s string) (component.Record, bool) {
	var rec component.Record
	if err := json.Unmarshal([]byte(s), &rec); err != nil {
		return component.Record{}, false
	}
	return rec, true
}

// parseFencedJSON looks for a markdown code fence labeled json and parses
// its contents.
func parseFencedJSON(s string) (component.Record, bool) {
	m := fencedJSONRe.FindStringSubmatch(s)
	if m == nil {
		return component.Record{}, false
	}
	var rec component.Record
	if err := json.Unmarshal([]byte(m[1]), &rec); err != nil {
		return component.Record{}, false
	}
	return rec, true
}

// extractFields independently searches for the three known quoted fields
// and assembles whichever are found into a partial record.
func extractFields(s string) (component.Record, bool) {
	var rec component.Record
	if m := descriptionRe.FindStringSubmatch(s); m != nil {
		rec.Description = m[1]
	}
	if m := previewRe.FindStringSubmatch(s); m != nil {
		rec.PreviewHTML = m[1]
	}
	if m := codeRe.FindStringSubmatch(s); m != nil {
		rec.SourceCode = m[1]
	}
	return rec, !rec.IsEmpty()
}
