package taxonomy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTaxonomy(t *testing.T) {
	t.Parallel()
	tax := Default()

	categories := tax.Categories()
	require.NotEmpty(t, categories)
	assert.Equal(t, "technology", categories[0].ID)

	skills, ok := tax.SkillsFor("music")
	require.True(t, ok)
	assert.Contains(t, skills, "Guitar")

	_, ok = tax.SkillsFor("nonexistent")
	assert.False(t, ok)
}

func TestHasSkillInCategory(t *testing.T) {
	t.Parallel()
	tax := Default()

	assert.True(t, tax.HasSkillInCategory("music", []string{"Guitar", "Excel"}))
	assert.False(t, tax.HasSkillInCategory("music", []string{"Excel"}))
	assert.False(t, tax.HasSkillInCategory("music", nil))

	// Category membership is exact on the skill name.
	assert.False(t, tax.HasSkillInCategory("music", []string{"guitar"}))

	// Unknown categories match everything so the browse filter degrades to
	// the unfiltered set.
	assert.True(t, tax.HasSkillInCategory("nonexistent", []string{"Excel"}))
	assert.True(t, tax.HasSkillInCategory("nonexistent", nil))
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "taxonomy.yaml")
	content := `
- id: crafts
  name: Crafts
  skills:
    - Pottery
    - Weaving
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	tax, err := LoadFile(path)
	require.NoError(t, err)

	skills, ok := tax.SkillsFor("crafts")
	require.True(t, ok)
	assert.Equal(t, []string{"Pottery", "Weaving"}, skills)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("[]"), 0o644))
	_, err = LoadFile(empty)
	assert.Error(t, err)
}
