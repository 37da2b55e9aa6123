package artifacts

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creai-labs/creai/internal/component"
)

func TestDetectComponentName(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected string
	}{
		{name: "const declaration", code: "const HomeScreen = () => {}", expected: "HomeScreen"},
		{name: "function declaration", code: "function SearchBar() {}", expected: "SearchBar"},
		{name: "no declaration", code: "<div>hello</div>", expected: "Component"},
		{name: "empty code", code: "", expected: "Component"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectComponentName(tt.code))
		})
	}
}

func TestNewArtifactDefaultsName(t *testing.T) {
	rec := component.Record{SourceCode: "const Card = () => {}"}

	a := NewArtifact("", "a card", "web", rec)

	assert.Equal(t, "Card", a.Name)
	assert.NotEmpty(t, a.ID)
	assert.WithinDuration(t, time.Now().UTC(), a.CreatedAt, time.Minute)
}

func TestJSONStoreRoundTrip(t *testing.T) {
	store := NewJSONStore(t.TempDir())

	artifact := NewArtifact("MyCard", "a card", "mobile", component.Record{
		Description: "A card",
		PreviewHTML: "<div>Card</div>",
		SourceCode:  "const Card = () => {}",
	})

	require.NoError(t, store.Save(artifact))

	got, err := store.Get(artifact.ID)
	require.NoError(t, err)

	assert.Equal(t, artifact.ID, got.ID)
	assert.Equal(t, artifact.Name, got.Name)
	assert.Equal(t, artifact.Record, got.Record)
}

func TestJSONStoreGetMissing(t *testing.T) {
	store := NewJSONStore(t.TempDir())

	_, err := store.Get("nope")
	assert.Error(t, err)
}

func TestJSONStoreListNewestFirst(t *testing.T) {
	store := NewJSONStore(t.TempDir())

	older := NewArtifact("Old", "p", "web", component.Record{SourceCode: "a"})
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	newer := NewArtifact("New", "p", "web", component.Record{SourceCode: "b"})

	require.NoError(t, store.Save(older))
	require.NoError(t, store.Save(newer))

	list, err := store.List()
	require.NoError(t, err)
	require.Len(t, list, 2)

	assert.Equal(t, "New", list[0].Name)
	assert.Equal(t, "Old", list[1].Name)
}

func TestJSONStoreListSkipsCorruptFiles(t *testing.T) {
	dir := t.TempDir()
	store := NewJSONStore(dir)

	good := NewArtifact("Good", "p", "web", component.Record{SourceCode: "a"})
	require.NoError(t, store.Save(good))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0644))

	list, err := store.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
