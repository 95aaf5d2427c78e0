package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func writeTestRecord(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "record.yaml")
	content := `category: "Wedding"
template_id: "1"
bride_name: "Ayşe"
groom_name: "Mehmet"
event_date: "2027-06-12"
event_time: "17:30"
venue_name: "Sahil Bahçesi"
rsvp_enabled: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRenderCommand_WritesHTMLToStdout(t *testing.T) {
	path := writeTestRecord(t)

	stdout, err := executeCommand(t, "render", path)
	require.NoError(t, err)
	require.Contains(t, stdout, `<article class="invitation`)
	require.Contains(t, stdout, "Ayşe &amp; Mehmet")
	require.Contains(t, stdout, "Katılım Bildirimi")
}

func TestRenderCommand_EmbeddedModeOmitsSections(t *testing.T) {
	path := writeTestRecord(t)

	stdout, err := executeCommand(t, "render", path, "--mode", "embedded")
	require.NoError(t, err)
	require.Contains(t, stdout, "Ayşe &amp; Mehmet")
	require.NotContains(t, stdout, "Katılım Bildirimi")
	require.NotContains(t, stdout, "Etkinlik Bilgileri")
}

func TestRenderCommand_WritesToOutputFile(t *testing.T) {
	path := writeTestRecord(t)
	out := filepath.Join(t.TempDir(), "page.html")

	stdout, err := executeCommand(t, "render", path, "--out", out)
	require.NoError(t, err)
	require.Empty(t, stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(data), "Ayşe &amp; Mehmet")
}

func TestRenderCommand_TemplateOverride(t *testing.T) {
	path := writeTestRecord(t)

	stdout, err := executeCommand(t, "render", path, "--template", "2", "--mode", "embedded")
	require.NoError(t, err)
	require.Contains(t, stdout, "hero--minimal")
}

func TestRenderCommand_UnknownMode(t *testing.T) {
	path := writeTestRecord(t)

	_, err := executeCommand(t, "render", path, "--mode", "sideways")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown mode")
}

func TestRenderCommand_MissingRecord(t *testing.T) {
	_, err := executeCommand(t, "render", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "loading record")
}

func TestTemplatesCommand_TableOutput(t *testing.T) {
	stdout, err := executeCommand(t, "templates")
	require.NoError(t, err)
	require.Contains(t, stdout, "ID")
	require.Contains(t, stdout, "NAME")
	require.Contains(t, stdout, "Klasik")
	require.Contains(t, stdout, "centered")
}

func TestTemplatesCommand_JSONOutput(t *testing.T) {
	stdout, err := executeCommand(t, "templates", "--json")
	require.NoError(t, err)

	var payload templatesJSONPayload
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, "1.0", payload.Version)
	require.Equal(t, payload.Count, len(payload.Templates))
	require.NotEmpty(t, payload.Templates)
	require.Equal(t, 1, payload.Templates[0].ID)
}

func TestTemplatesCommand_CategoryFilter(t *testing.T) {
	stdout, err := executeCommand(t, "templates", "--category", "Wedding")
	require.NoError(t, err)
	require.Contains(t, stdout, "Klasik")
	require.NotContains(t, stdout, "Plaza")
}

func TestTemplatesCommand_UnknownCategory(t *testing.T) {
	stdout, err := executeCommand(t, "templates", "--category", "nope")
	require.NoError(t, err)
	require.Contains(t, stdout, "No templates match")
}

func TestVersionCommand(t *testing.T) {
	stdout, err := executeCommand(t, "version")
	require.NoError(t, err)
	require.Contains(t, stdout, "Invitekit")
	require.Contains(t, stdout, "commit:")
}
