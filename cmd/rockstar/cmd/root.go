package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "rockstar [path]",
	Short: "Rockstar interpreter",
	Long: `rockstar runs programs written in Rockstar, the esoteric language
whose syntax reads like 1980s rock-ballad lyrics.

Given a single file path, it tokenizes and evaluates the program,
printing whatever it shouts along the way. With no path, it looks for
demo.rock in the current directory.`,
	Version:      Version,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runScript,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print the resolved script path and completion status")
}
