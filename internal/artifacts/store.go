package artifacts

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/creai-labs/creai/internal/component"
)

// Artifact is a saved generated component.
type Artifact struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Prompt    string           `json:"prompt"`
	Platform  string           `json:"platform"`
	Record    component.Record `json:"record"`
	CreatedAt time.Time        `json:"created_at"`
}

// componentNameRe pulls the component name out of the generated source for
// use as a default artifact name.
var componentNameRe = regexp.MustCompile(`(?:function|const)\s+([A-Za-z0-9_]+)`)

// NewArtifact builds an artifact from a generation result. An empty name
// falls back to the component name detected in the source code.
func NewArtifact(name, prompt, platform string, rec component.Record) *Artifact {
	if name == "" {
		name = DetectComponentName(rec.SourceCode)
	}
	return &Artifact{
		ID:        uuid.New().String(),
		Name:      name,
		Prompt:    prompt,
		Platform:  platform,
		Record:    rec,
		CreatedAt: time.Now().UTC(),
	}
}

// DetectComponentName extracts the declared component name from generated
// source, defaulting to "Component".
func DetectComponentName(code string) string {
	if m := componentNameRe.FindStringSubmatch(code); m != nil {
		return m[1]
	}
	return "Component"
}

// Store defines the interface for artifact persistence
type Store interface {
	Save(artifact *Artifact) error
	Get(id string) (*Artifact, error)
	List() ([]*Artifact, error)
}

// JSONStore implements file-based JSON persistence, one file per saved
// artifact.
type JSONStore struct {
	dir string
}

// NewJSONStore creates a new JSON artifact store
func NewJSONStore(dir string) *JSONStore {
	os.MkdirAll(dir, 0755)

	return &JSONStore{dir: dir}
}

// Save writes the artifact to a JSON file named after its ID.
func (j *JSONStore) Save(artifact *Artifact) error {
	filename := filepath.Join(j.dir, fmt.Sprintf("%s.json", artifact.ID))

	data, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal artifact: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write artifact file: %w", err)
	}

	return nil
}

// Get retrieves an artifact by ID.
func (j *JSONStore) Get(id string) (*Artifact, error) {
	filename := filepath.Join(j.dir, fmt.Sprintf("%s.json", id))

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("artifact not found: %s", id)
		}
		return nil, fmt.Errorf("failed to read artifact file: %w", err)
	}

	var artifact Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("failed to unmarshal artifact: %w", err)
	}

	return &artifact, nil
}

// List retrieves all saved artifacts, newest first.
func (j *JSONStore) List() ([]*Artifact, error) {
	files, err := filepath.Glob(filepath.Join(j.dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to list artifact files: %w", err)
	}

	list := make([]*Artifact, 0, len(files))

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			continue // Skip files that can't be read
		}

		var artifact Artifact
		if err := json.Unmarshal(data, &artifact); err != nil {
			continue // Skip files that can't be parsed
		}

		list = append(list, &artifact)
	}

	sort.Slice(list, func(i, k int) bool {
		return list[i].CreatedAt.After(list[k].CreatedAt)
	})

	return list, nil
}
