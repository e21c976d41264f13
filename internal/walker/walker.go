// Package walker runs the style-guide check across every page/locale
// combination of a tldr clone.
package walker

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/tldr-pages/tldr-style-check/internal/checker"
	"github.com/tldr-pages/tldr-style-check/internal/config"
	"github.com/tldr-pages/tldr-style-check/internal/corpus"
	"github.com/tldr-pages/tldr-style-check/internal/report"
)

// Run enumerates every (platform, command) pair of the canonical page set,
// checks the matching file in each page-set directory, and prints one line
// per flagged page to stdout. Flagged pages are advisory and do not cause
// an error; only enumeration failures do.
func Run(cfg *config.Config) error {
	return run(cfg, os.Stdout)
}

func run(cfg *config.Config, out io.Writer) error {
	pagesDirs, err := corpus.PagesDirs(cfg.Root)
	if err != nil {
		return fmt.Errorf("page sets: %w", err)
	}

	platforms, err := corpus.Platforms(cfg.Root)
	if err != nil {
		return fmt.Errorf("platforms: %w", err)
	}

	for _, platform := range platforms {
		commands, err := corpus.Commands(cfg.Root, platform)
		if err != nil {
			return fmt.Errorf("commands for %s: %w", platform, err)
		}

		for _, command := range commands {
			for _, dir := range pagesDirs {
				pagePath := filepath.Join(cfg.Root, dir, platform, command)
				if _, err := os.Stat(pagePath); err != nil {
					continue
				}

				status, err := checker.CheckPage(pagePath, cfg.Language)
				if err != nil {
					logrus.Warnf("Skipping unreadable page: %v", err)
					continue
				}
				if status == "" {
					continue
				}

				rel := path.Join(dir, platform, command)
				fmt.Fprintln(out, report.ResultLine(rel)+" "+status)
			}
		}
	}
	return nil
}
