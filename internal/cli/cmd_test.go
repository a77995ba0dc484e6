package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/dalemusser/wellnesshub/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const smallCatalog = `
- title: "Night Line"
  description: "Listening service for students"
  link: "tel:0800-000-111"
  type: helpline
  keywords: [listen, night]
- title: "Box Breathing"
  description: "Four counts in, hold, out, hold"
  link: "box breathing"
  type: exercise
  keywords: [breathing, calm, anxiety]
`

// runCmd executes catalogctl with args and returns its output.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(&App{})
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func writeCatalog(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestSearch_CrisisShowsHelplines(t *testing.T) {
	out, err := runCmd(t, "search", "I", "want", "to", "die")
	require.NoError(t, err)

	assert.Contains(t, out, "Crisis terms detected")
	assert.Contains(t, out, "KIRAN - Mental Health Helpline (India)")
	assert.Contains(t, out, "tel:1800-599-0019")
}

func TestSearch_JSONOmitsKeywords(t *testing.T) {
	out, err := runCmd(t, "search", "--json", "--limit", "3", "emergency")
	require.NoError(t, err)

	var got []models.ToolResource
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 3)
	for _, r := range got {
		assert.Equal(t, models.ResourceTypeHelpline, r.Type)
	}
	assert.NotContains(t, out, "keywords")
}

func TestSearch_TypeFilter(t *testing.T) {
	path := writeCatalog(t, smallCatalog)

	out, err := runCmd(t, "--catalog", path, "search", "--type", "exercise", "calm", "night")
	require.NoError(t, err)
	assert.Contains(t, out, "Box Breathing")
	assert.NotContains(t, out, "Night Line")
}

func TestSearch_UnknownType(t *testing.T) {
	_, err := runCmd(t, "search", "--type", "podcasts", "sleep")
	assert.Error(t, err)
}

func TestSearch_RequiresQuery(t *testing.T) {
	_, err := runCmd(t, "search")
	assert.Error(t, err)
}

func TestSearch_NoMatches(t *testing.T) {
	path := writeCatalog(t, smallCatalog)

	out, err := runCmd(t, "--catalog", path, "search", "zzzz")
	require.NoError(t, err)
	assert.Contains(t, out, "No matching resources.")
}

func TestList_FilterByTypes(t *testing.T) {
	path := writeCatalog(t, smallCatalog)

	out, err := runCmd(t, "--catalog", path, "list", "--type", "helpline")
	require.NoError(t, err)
	assert.Contains(t, out, "Night Line")
	assert.NotContains(t, out, "Box Breathing")

	out, err = runCmd(t, "--catalog", path, "list", "--type", "helpline,exercise")
	require.NoError(t, err)
	assert.Contains(t, out, "Night Line")
	assert.Contains(t, out, "Box Breathing")
}

func TestList_UnknownType(t *testing.T) {
	_, err := runCmd(t, "list", "--type", "vlog")
	assert.Error(t, err)
}

func TestGroups_BuiltIn(t *testing.T) {
	out, err := runCmd(t, "groups")
	require.NoError(t, err)
	assert.Contains(t, out, "Helplines")
	assert.Contains(t, out, "(7)")
	assert.Contains(t, out, "Childline India")
}

func TestValidate_File(t *testing.T) {
	path := writeCatalog(t, smallCatalog)

	out, err := runCmd(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ok, 2 resources")
}

func TestValidate_BuiltIn(t *testing.T) {
	out, err := runCmd(t, "validate")
	require.NoError(t, err)
	assert.Contains(t, out, "built-in catalog: ok, 42 resources")
}

func TestValidate_RejectsBadFile(t *testing.T) {
	path := writeCatalog(t, "- title: \"No link\"\n  type: helpline\n")

	_, err := runCmd(t, "validate", path)
	assert.Error(t, err)
}

func TestValidate_RejectsMissingFile(t *testing.T) {
	_, err := runCmd(t, "validate", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
