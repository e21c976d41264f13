package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tldr-pages/tldr-style-check/internal/config"
	"github.com/tldr-pages/tldr-style-check/internal/corpus"
	"github.com/tldr-pages/tldr-style-check/internal/walker"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "tldr-style-check",
	Short: "Check tldr pages against the style guide",
	Long: `tldr-style-check scans every page of a tldr clone, in every locale, for
command descriptions that repeat a short option letter where the style
guide expects the long option name.

The tldr root is inferred by walking up from the current directory looking
for a directory named "tldr"; set TLDR_ROOT or pass --root when running
from elsewhere. Flagged pages are advisory output and do not affect the
exit code.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&cfg.Language, "language", "l", "", `only check the translation for this locale, in the form "ll" or "ll_CC" (e.g. "fr" or "pt_BR")`)
	rootCmd.Flags().StringVar(&cfg.Root, "root", "", "tldr root directory (default: inferred, then $TLDR_ROOT)")
}

func run(cmd *cobra.Command, args []string) error {
	if cfg.Root == "" {
		root, err := corpus.FindRoot()
		if err != nil {
			return err
		}
		cfg.Root = root
	}

	return walker.Run(&cfg)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
