// Package corpus locates a tldr documentation clone on disk and enumerates
// its page-set directories, platforms, and command pages.
package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvRoot names the environment variable consulted when the root cannot be
// inferred from the working directory.
const EnvRoot = "TLDR_ROOT"

// ignoreNames are repository files that sit alongside platforms and pages
// but are not part of the corpus.
var ignoreNames = map[string]struct{}{
	"README.md":       {},
	"LICENSE.md":      {},
	"CONTRIBUTING.md": {},
}

// IsIgnored reports whether a directory entry is excluded from traversal.
// Hidden entries and known repository files are skipped.
func IsIgnored(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	_, ok := ignoreNames[name]
	return ok
}

// FindRoot resolves the tldr clone to operate on. It walks up from the
// working directory looking for a component named "tldr", then falls back
// to the TLDR_ROOT environment variable.
func FindRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}

	for dir := wd; ; dir = filepath.Dir(dir) {
		if filepath.Base(dir) == "tldr" {
			return dir, nil
		}
		if dir == filepath.Dir(dir) {
			break
		}
	}

	if root := os.Getenv(EnvRoot); root != "" {
		return root, nil
	}
	return "", fmt.Errorf(`cannot locate the tldr root: no parent directory is named "tldr" and %s is unset`, EnvRoot)
}

// PagesDirs returns the names of all page-set directories directly under
// root: the canonical "pages" plus every "pages.<locale>" translation.
// Entries come back sorted by name.
func PagesDirs(root string) ([]string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", root, err)
	}

	var dirs []string
	for _, e := range entries {
		if e.IsDir() && strings.HasPrefix(e.Name(), "pages") {
			dirs = append(dirs, e.Name())
		}
	}
	return dirs, nil
}

// Locale derives a page's locale from its path. Pages under the canonical
// "pages" directory are English; translated page sets carry the locale as a
// directory suffix ("pages.fr", "pages.pt_BR").
func Locale(path string) string {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if part == "pages" {
			return "en"
		}
		if locale, ok := strings.CutPrefix(part, "pages."); ok {
			return locale
		}
	}
	return ""
}

// Platforms returns the platform subdirectories of the canonical page set,
// sorted by name.
func Platforms(root string) ([]string, error) {
	en := filepath.Join(root, "pages")
	entries, err := os.ReadDir(en)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", en, err)
	}

	var platforms []string
	for _, e := range entries {
		if e.IsDir() && !IsIgnored(e.Name()) {
			platforms = append(platforms, e.Name())
		}
	}
	return platforms, nil
}

// Commands returns the page file names under one platform of the canonical
// page set, sorted by name.
func Commands(root, platform string) ([]string, error) {
	dir := filepath.Join(root, "pages", platform)
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	var commands []string
	for _, e := range entries {
		if !e.IsDir() && !IsIgnored(e.Name()) {
			commands = append(commands, e.Name())
		}
	}
	return commands, nil
}

// ReadPage reads a page into newline-delimited lines.
func ReadPage(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return strings.Split(string(data), "\n"), nil
}
