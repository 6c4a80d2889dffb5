package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/decker502/portfolio/pkg/embedded"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCommand(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(good, []byte("labels: [{ text: \"Dev\" }]\nprojects: [{ id: 1, title: \"A\" }]\n"), 0o644))
	require.NoError(t, os.WriteFile(bad, []byte("projects: [{ id: 1, title: \"\" }]\n"), 0o644))

	var out bytes.Buffer
	validateCmd.SetOut(&out)
	defer validateCmd.SetOut(nil)

	require.NoError(t, runValidate(validateCmd, []string{good}))
	assert.Contains(t, out.String(), "1 projects")

	out.Reset()
	err := runValidate(validateCmd, []string{good, bad})
	assert.Error(t, err)
	assert.Contains(t, out.String(), "bad.yaml")
}

func TestEmbeddedConfigLoads(t *testing.T) {
	embedded.Init(dataFS)
	configPath = ""
	c, err := loadContent(t.Context())
	require.NoError(t, err)
	defer c.close()

	assert.NotEmpty(t, c.cfg.Projects)
	assert.Nil(t, c.updates())
}
