// stest filters a list of files by their properties, comparable to test(1)
// applied to many paths at once.
package main

import (
	"os"

	"github.com/inconshreveable/log15"
	"github.com/spf13/cobra"

	"github.com/Nytelife26/wmenu/stest"
	"github.com/Nytelife26/wmenu/stest/config"
)

// version is overridden at build time via -ldflags.
var version = "dev"

// status is the eventual process exit status, set by run. It stays zero when
// cobra short-circuits for --help or --version.
var status int

var rootCmd = &cobra.Command{
	Use:   "stest [-abcdefghlpqrsuvwx] [-n file] [-o file] [file...]",
	Short: "filter a list of files by properties",
	Long: `stest takes a list of files and filters by the files' properties,
comparable to test(1). Files which pass all tests are printed to stdout. If
no files are given as arguments, they are read from stdin one per line until
a blank line or the end of input.

With -l, directory candidates expand into their recursive contents and
archive candidates (.tar, .tgz, .gz, .xz, .zip, .7z, .rpm) into their member
entries, each tested in place of the candidate itself.

The exit status is 0 when at least one file passed all tests, 1 when none
did, and 2 on a usage error.`,
	Version:               version,
	Args:                  cobra.ArbitraryArgs,
	DisableFlagsInUseLine: true,
	RunE:                  run,
}

func init() {
	// -h belongs to the symlink test, so help must exist as a long-only flag
	// before cobra claims the shorthand for it.
	rootCmd.Flags().Bool("help", false, "display this help and exit")

	config.RegisterFlags(rootCmd.Flags())
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	logger := log15.New()
	logger.SetHandler(log15.DiscardHandler())

	if cfg.Debug {
		logger.SetHandler(log15.LvlFilterHandler(log15.LvlDebug, log15.StderrHandler))
	}

	paths := args
	if len(paths) == 0 {
		paths = stest.ReadPaths(os.Stdin)
		logger.Debug("read candidates from stdin", "count", len(paths))
	}

	status = stest.NewRunner(cfg, os.Stdout, logger).Run(paths)

	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(stest.ExitUsage)
	}

	os.Exit(status)
}
