package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the zipup version, the bundled esbuild version and the Go version used to build this tool.",
		Args:  usageArgs(cobra.NoArgs),
		Run: func(cmd *cobra.Command, _ []string) {
			version, goVersion := "unknown", runtime.Version()

			if info, ok := debug.ReadBuildInfo(); ok {
				if info.Main.Version != "" {
					version = info.Main.Version
				}

				goVersion = info.GoVersion
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintln(out, "zipup version\t", version)
			_, _ = fmt.Fprintln(out, "esbuild version\t", bundler.Version())
			_, _ = fmt.Fprintln(out, "go version\t", goVersion)
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
