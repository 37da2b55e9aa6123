package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/creai-labs/creai/internal/component"
)

func newTestUnwrapper(t *testing.T) *Unwrapper {
	t.Helper()
	return NewUnwrapper(zap.NewNop())
}

func TestUnwrapStructuredObject(t *testing.T) {
	u := newTestUnwrapper(t)

	raw := json.RawMessage(`{
		"visual_description": "A home screen",
		"preview_html": "<div>Home</div>",
		"component_code": "const Home = () => {}"
	}`)

	rec := u.Unwrap(raw)

	assert.Equal(t, "A home screen", rec.Description)
	assert.Equal(t, "<div>Home</div>", rec.PreviewHTML)
	assert.Equal(t, "const Home = () => {}", rec.SourceCode)
}

func TestUnwrapJSONString(t *testing.T) {
	u := newTestUnwrapper(t)

	inner := component.Record{
		Description: "A button",
		SourceCode:  "const Button = () => {}",
	}
	innerJSON, err := json.Marshal(inner)
	require.NoError(t, err)
	raw, err := json.Marshal(string(innerJSON))
	require.NoError(t, err)

	rec := u.Unwrap(raw)

	assert.Equal(t, inner.Description, rec.Description)
	assert.Equal(t, inner.SourceCode, rec.SourceCode)
}

func TestUnwrapFencedJSON(t *testing.T) {
	u := newTestUnwrapper(t)

	payload := "Here is your component:\n```json\n{\"component_code\":\"x\"}\n```\nEnjoy!"
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	rec := u.Unwrap(raw)

	assert.Equal(t, "x", rec.SourceCode)
	assert.Empty(t, rec.Description)
	assert.Empty(t, rec.PreviewHTML)
}

func TestUnwrapFieldRecovery(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		expected component.Record
	}{
		{
			name:    "all three fields recovered from broken JSON",
			payload: `oops { "visual_description": "A card", "preview_html": "<div>Card</div>", "component_code": "const Card = 1" trailing garbage`,
			expected: component.Record{
				Description: "A card",
				PreviewHTML: "<div>Card</div>",
				SourceCode:  "const Card = 1",
			},
		},
		{
			name:    "partial record from a single field",
			payload: `broken "component_code": "const X = 2" broken`,
			expected: component.Record{
				SourceCode: "const X = 2",
			},
		},
		{
			name:    "extraction stops at the first unescaped quote",
			payload: `x "visual_description": "says \"hi\" politely" y`,
			expected: component.Record{
				Description: `says \"hi\" politely`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := newTestUnwrapper(t)
			raw, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			rec := u.Unwrap(raw)

			assert.Equal(t, tt.expected.Description, rec.Description)
			assert.Equal(t, tt.expected.PreviewHTML, rec.PreviewHTML)
			assert.Equal(t, tt.expected.SourceCode, rec.SourceCode)
		})
	}
}

func TestUnwrapVerbatimFallback(t *testing.T) {
	u := newTestUnwrapper(t)

	payload := "just some prose the model emitted instead of JSON"
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	rec := u.Unwrap(raw)

	// No data loss: the unrecoverable payload survives verbatim.
	assert.Equal(t, payload, rec.SourceCode)
	assert.Empty(t, rec.Description)
	assert.Empty(t, rec.PreviewHTML)
}

func TestUnwrapNeverPanics(t *testing.T) {
	payloads := []json.RawMessage{
		nil,
		json.RawMessage(``),
		json.RawMessage(`null`),
		json.RawMessage(`42`),
		json.RawMessage(`{broken`),
		json.RawMessage(`"{\"preview_html\": "`),
		json.RawMessage("\"```json\\nnot json\\n```\""),
	}

	for _, raw := range payloads {
		u := newTestUnwrapper(t)
		assert.NotPanics(t, func() { u.Unwrap(raw) }, "payload: %s", string(raw))
	}
}

func TestUnwrapSanitizesPreview(t *testing.T) {
	u := newTestUnwrapper(t)

	// Preview is plain text with no markup; the sanitizer must wrap it in
	// a container.
	raw := json.RawMessage(`{"preview_html": "Hello there"}`)

	rec := u.Unwrap(raw)

	assert.Contains(t, rec.PreviewHTML, "<div")
	assert.Contains(t, rec.PreviewHTML, "Hello there")
}
