package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocale(t *testing.T) {
	cases := []struct {
		path string
		want string
	}{
		{"pages/common/tar.md", "en"},
		{"pages.fr/common/tar.md", "fr"},
		{"pages.pt_BR/linux/apt.md", "pt_BR"},
		{"/home/user/tldr/pages.zh/common/ls.md", "zh"},
		{"somewhere/else.md", ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Locale(c.path), "path %q", c.path)
	}
}

func TestIsIgnored(t *testing.T) {
	assert.True(t, IsIgnored(".git"))
	assert.True(t, IsIgnored(".DS_Store"))
	assert.True(t, IsIgnored("README.md"))
	assert.False(t, IsIgnored("common"))
	assert.False(t, IsIgnored("tar.md"))
}

func TestPagesDirs(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"pages", "pages.fr", "pages.pt_BR", ".git", "scripts"} {
		require.NoError(t, os.Mkdir(filepath.Join(root, dir), 0o755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "LICENSE.md"), nil, 0o644))

	dirs, err := PagesDirs(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"pages", "pages.fr", "pages.pt_BR"}, dirs)
}

func TestPlatforms(t *testing.T) {
	root := t.TempDir()
	for _, platform := range []string{"osx", "common", "linux"} {
		require.NoError(t, os.MkdirAll(filepath.Join(root, "pages", platform), 0o755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "pages", ".DS_Store"), nil, 0o644))

	platforms, err := Platforms(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"common", "linux", "osx"}, platforms)
}

func TestCommands(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "pages", "common")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	for _, name := range []string{"tar.md", "ls.md", "README.md", ".hidden"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}

	commands, err := Commands(root, "common")
	require.NoError(t, err)
	assert.Equal(t, []string{"ls.md", "tar.md"}, commands)
}

func TestCommandsMissingPlatform(t *testing.T) {
	_, err := Commands(t.TempDir(), "sunos")
	require.Error(t, err)
}

func TestReadPage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tar.md")
	require.NoError(t, os.WriteFile(path, []byte("# tar\n\n> Archiving utility."), 0o644))

	lines, err := ReadPage(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"# tar", "", "> Archiving utility."}, lines)

	_, err = ReadPage(filepath.Join(t.TempDir(), "missing.md"))
	require.Error(t, err)
}

// chdir is the pre-Go-1.24 equivalent of t.Chdir.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestFindRootFromParentDirectory(t *testing.T) {
	tmp := t.TempDir()
	inner := filepath.Join(tmp, "tldr", "pages", "common")
	require.NoError(t, os.MkdirAll(inner, 0o755))
	chdir(t, inner)

	root, err := FindRoot()
	require.NoError(t, err)
	assert.Equal(t, "tldr", filepath.Base(root))
}

func TestFindRootFromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(EnvRoot, "/srv/tldr-clone")

	root, err := FindRoot()
	require.NoError(t, err)
	assert.Equal(t, "/srv/tldr-clone", root)
}

func TestFindRootUnresolvable(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(EnvRoot, "")

	_, err := FindRoot()
	require.Error(t, err)
}
