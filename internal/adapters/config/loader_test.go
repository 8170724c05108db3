package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rig/internal/adapters/config"
	"go.trai.ch/rig/internal/core/domain"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rig.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Success(t *testing.T) {
	path := writeManifest(t, `
version: "1"
default: all

vars:
  version:
    sh: awk '{print $2}' version.txt
  image: docker.io/acme/app:${version}

tasks:
  install:
    desc: Install dependencies
    cmds:
      - pip install -r requirements.txt
  test:
    desc: Run the test suite
    deps: [install]
    cmds:
      - pytest tests
  all:
    desc: Everything
    deps: [test]
`)

	m, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "all", m.Default.String())
	assert.Equal(t, 3, m.Registry.Len())

	version, ok := m.Vars.Lookup(domain.NewInternedString("version"))
	require.True(t, ok)
	assert.True(t, version.Shell)
	assert.Equal(t, "awk '{print $2}' version.txt", version.Value)

	image, ok := m.Vars.Lookup(domain.NewInternedString("image"))
	require.True(t, ok)
	assert.False(t, image.Shell)
	assert.Equal(t, "docker.io/acme/app:${version}", image.Value)

	test, err := m.Registry.Lookup(domain.NewInternedString("test"))
	require.NoError(t, err)
	assert.Equal(t, "Run the test suite", test.Desc)
	require.Len(t, test.Deps, 1)
	assert.Equal(t, "install", test.Deps[0].String())
	assert.Equal(t, []string{"pytest tests"}, test.Cmds)
}

func TestLoad_PreservesDeclarationOrder(t *testing.T) {
	// Deliberately non-alphabetical; the listing depends on this order.
	path := writeManifest(t, `
tasks:
  wheel:
    desc: Build the wheel
  sdist:
    desc: Build the source distribution
  clean:
    cmds: [rm -rf dist]
  install:
    desc: Install dependencies
`)

	m, err := config.Load(path)
	require.NoError(t, err)

	var names []string
	for _, task := range m.Registry.ListPublic() {
		names = append(names, task.Name.String())
	}
	assert.Equal(t, []string{"wheel", "sdist", "install"}, names)
}

func TestLoad_DuplicateTask_LastDeclarationWins(t *testing.T) {
	// Duplicate mapping keys survive the node walk, so the registry's
	// overwrite policy applies to textual redefinitions too.
	path := writeManifest(t, `
tasks:
  build:
    desc: first
    cmds: [echo first]
  build:
    desc: second
    cmds: [echo second]
`)

	m, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1, m.Registry.Len())
	task, err := m.Registry.Lookup(domain.NewInternedString("build"))
	require.NoError(t, err)
	assert.Equal(t, "second", task.Desc)
	assert.Equal(t, []string{"echo second"}, task.Cmds)
}

func TestLoad_BareTaskIsPlaceholder(t *testing.T) {
	path := writeManifest(t, `
tasks:
  pre-release:
  release:
    deps: [pre-release]
`)

	m, err := config.Load(path)
	require.NoError(t, err)

	task, err := m.Registry.Lookup(domain.NewInternedString("pre-release"))
	require.NoError(t, err)
	assert.Empty(t, task.Deps)
	assert.Empty(t, task.Cmds)
}

func TestLoad_DanglingPrerequisite(t *testing.T) {
	path := writeManifest(t, `
tasks:
  build:
    deps: [missing]
`)

	_, err := config.Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownTask)
}

func TestLoad_DefaultFallsBackToHelp(t *testing.T) {
	path := writeManifest(t, `
tasks:
  build:
    cmds: [go build ./...]
`)

	m, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultTask, m.Default.String())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeManifest(t, "tasks: [not: a: mapping")

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestLoad_InvalidVariableForm(t *testing.T) {
	path := writeManifest(t, `
vars:
  version:
    shell: echo wrong-key
tasks:
  noop:
`)

	_, err := config.Load(path)
	require.Error(t, err)
}

func TestLoad_VarsNotAMapping(t *testing.T) {
	path := writeManifest(t, `
vars:
  - version=1
tasks:
  noop:
`)

	_, err := config.Load(path)
	require.Error(t, err)
}
