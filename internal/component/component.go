package component

import "encoding/json"

// Record is the canonical generated-artifact value used throughout the
// client. All three fields are independently optional; a zero Record is
// valid and renders as placeholder content. Records are replaced wholesale
// on every successful generate or modify call, never field-merged.
type Record struct {
	Description string `json:"visual_description,omitempty"`
	PreviewHTML string `json:"preview_html,omitempty"`
	SourceCode  string `json:"component_code,omitempty"`
}

// IsEmpty reports whether no field of the record is populated.
func (r Record) IsEmpty() bool {
	return r.Description == "" && r.PreviewHTML == "" && r.SourceCode == ""
}

// Envelope is the wire-level response from the generation backend. The
// Component field's shape is not contractually fixed: it may be an object,
// a JSON-encoded string, a string containing a markdown-fenced JSON block,
// or a flat string. It is kept raw here and resolved by the normalize
// package.
type Envelope struct {
	Status    string          `json:"status"`
	Component json.RawMessage `json:"component"`
	Message   string          `json:"message,omitempty"`
}

// StatusSuccess is the envelope status discriminator for a successful
// generation.
const StatusSuccess = "success"

// ErrorBody is the JSON body of a non-2xx backend response.
type ErrorBody struct {
	Detail string `json:"detail"`
}

// GenerateRequest is the request body for the generation endpoint, reused
// for both generate and modify calls.
type GenerateRequest struct {
	Prompt   string `json:"prompt"`
	Platform string `json:"platform"`
}
