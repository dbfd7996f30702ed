package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/dockscaffold/cli/internal/config"
	"github.com/dockscaffold/cli/internal/testutil"
)

const fixtureDefaults = `organization:
  name: Example Org
image:
  name: ""
  description: ""
  base: alpine:3.20
build:
  platforms: [linux/amd64, linux/arm64]
github:
  workflows: true
security:
  sbom:
    format: spdx
registry:
  ghcr: true
`

const fixtureProject = `features:
  github: false
image:
  name: demo
  description: Demo image
`

const fixtureInvalidProject = `build:
  platforms: [linux/amd64, linux/invalid]
`

// setupWorkspace isolates HOME and the environment, changes into a fresh
// directory and writes the defaults and project documents there.
func setupWorkspace(t *testing.T, project string) string {
	t.Helper()

	testutil.IsolateEnv(t)

	dir := t.TempDir()
	chdir(t, dir)

	writeFile(t, filepath.Join(dir, config.DefaultDefaultsFile), fixtureDefaults)
	if project != "" {
		writeFile(t, filepath.Join(dir, config.DefaultProjectFile), project)
	}
	return dir
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	testutil.WriteFile(t, filepath.Dir(path), filepath.Base(path), content)
}

// execute runs the root command in-process and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}
