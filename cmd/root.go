// Package cmd provides flocc's command-line entry point and flag
// handling. flocc is a single-command tool: every flag lives on the root
// command, mirroring the original tool's getopt_long-based CLI rather
// than a subcommand tree.
package cmd

import (
	"github.com/spf13/cobra"
)

const longDescription = `flocc counts lines of code, comment and blank lines across a tree of
source files, classifying each file by extension and routing it through a
shared byte-level line classifier instead of a per-language parser.`

// Execute builds and runs the root command, injecting version as reported
// by --version.
func Execute(version string) error {
	rootCmd := newRootCmd(version)
	return rootCmd.Execute()
}

func newRootCmd(version string) *cobra.Command {
	opts := &runOptions{}

	rootCmd := &cobra.Command{
		Use:     "flocc [options] [arguments...]",
		Short:   "Fast lines-of-code counter",
		Long:    longDescription,
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
		SilenceUsage: true,
	}
	rootCmd.SetVersionTemplate("flocc version {{.Version}}\n")

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.repo, "repo", "r", "", "repository root for revision mode (implies --git)")
	flags.BoolVarP(&opts.git, "git", "g", false, "treat arguments as Git revisions instead of filesystem paths")
	flags.StringVar(&opts.jsonPath, "json", "", "write the JSON report to this file in addition to stdout")
	flags.BoolVar(&opts.dumpUnknown, "dump-unknown", false, "list extensions no handler recognized")
	flags.IntVar(&opts.workers, "workers", 0, "worker goroutines (default: number of CPUs)")
	flags.StringVar(&opts.cacheDir, "cache", "", "directory for a cross-run classification cache")

	return rootCmd
}
