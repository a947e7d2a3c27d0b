// Package testutil provides common test helpers for the goto-project tree.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// SampleConfig is a YAML config with one project that declares
// instructions and one that does not.
const SampleConfig = `
awesome-project:
  path: ~/Devel/Projects/awesome-project/

yet_another_project:
  path: ~/Devel/Projects/yet_another_project
  instructions:
    - source ~/Devel/Envs/yet_another_project/bin/activate
    - export FLASK_APP=app.py
    - export FLASK_DEBUG=1
`

// TempConfigFile creates a temporary .goto-project.yaml with the given content
// and returns its path. The file is automatically cleaned up.
func TempConfigFile(t *testing.T, content string) string {
	t.Helper()
	return TempConfigFileNamed(t, ".goto-project.yaml", content)
}

// TempConfigFileNamed is TempConfigFile with an explicit file name, so the
// extension can select the decoder.
func TempConfigFileNamed(t *testing.T, name, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempConfigFile: write failed: %v", err)
	}

	return path
}

// TempProjectDir creates a temporary directory populated with the given
// subdirectories and regular files, and returns its path.
func TempProjectDir(t *testing.T, subdirs []string, files []string) string {
	t.Helper()

	dir := t.TempDir()

	for _, name := range subdirs {
		if err := os.MkdirAll(filepath.Join(dir, name), 0700); err != nil {
			t.Fatalf("TempProjectDir: mkdir %s failed: %v", name, err)
		}
	}
	for _, name := range files {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0600); err != nil {
			t.Fatalf("TempProjectDir: write %s failed: %v", name, err)
		}
	}

	return dir
}

// ProjectConfig renders a single-project YAML config pointing at path.
func ProjectConfig(name, path string, instructions ...string) string {
	content := name + ":\n  path: " + path + "\n"
	if len(instructions) > 0 {
		content += "  instructions:\n"
		for _, ins := range instructions {
			content += "    - " + ins + "\n"
		}
	}
	return content
}
