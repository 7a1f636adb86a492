package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/goliatone/go-pagerender/pkg/testsupport"
)

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := Run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_HelloWorld(t *testing.T) {
	dir := testsupport.TemplateDir(t, map[string]string{"index.html": "Hello, World!"})

	code, stdout, stderr := run(t, "--dir", dir)

	assert.Equal(t, 0, code)
	assert.Equal(t, "Hello, World!\n", stdout)
	assert.Empty(t, stderr)
}

func TestRun_DefaultPathMissing(t *testing.T) {
	// No src/html exists next to this package, so the unconditional default
	// render must fail.
	code, stdout, stderr := run(t)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Error: ")
	assert.Contains(t, stderr, "template not found")
}

func TestRun_SyntaxError(t *testing.T) {
	dir := testsupport.TemplateDir(t, map[string]string{"index.html": "{% block body %}unterminated"})

	code, stdout, stderr := run(t, "--dir", dir)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "template syntax error")
}

func TestRun_TemplateFlag(t *testing.T) {
	dir := testsupport.TemplateDir(t, map[string]string{
		"index.html":       "index",
		"pages/about.html": "about\n",
	})

	code, stdout, _ := run(t, "-d", dir, "-t", "pages/about.html")

	assert.Equal(t, 0, code)
	assert.Equal(t, "about\n", stdout)
}

func TestRun_RejectsArguments(t *testing.T) {
	code, stdout, stderr := run(t, "index.html")

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "Error: ")
}

func TestRun_ConfigFile(t *testing.T) {
	dir := testsupport.TemplateDir(t, map[string]string{
		"index.html": "<p>hi</p><script>x()</script>\n",
		"home.html":  "home\n",
	})
	cfgPath := filepath.Join(t.TempDir(), "pagerender.yaml")
	content := "dir: " + dir + "\ntemplate: home.html\nkeep_trailing_newline: true\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o644))

	code, stdout, stderr := run(t, "--config", cfgPath)
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "home\n\n", stdout)

	// Explicit flags win over the file.
	code, stdout, stderr = run(t, "--config", cfgPath, "--template", "index.html", "--keep-trailing-newline=false", "--sanitize", "ugc")
	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "<p>hi</p>\n", stdout)
}

func TestRun_InvalidConfig(t *testing.T) {
	code, stdout, stderr := run(t, "--config", filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Equal(t, 1, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "configuration file not found")

	code, _, stderr = run(t, "--sanitize", "paranoid")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "sanitize")
}

func TestRun_DebugGoesToStderr(t *testing.T) {
	dir := testsupport.TemplateDir(t, map[string]string{"index.html": "page"})

	code, stdout, stderr := run(t, "--dir", dir, "--debug")

	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "page\n", stdout)
	assert.Contains(t, stderr, "[DEBUG]")
	assert.Contains(t, stderr, "index.html")
}

func TestRun_Version(t *testing.T) {
	code, stdout, _ := run(t, "--version")

	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, Version)
}
