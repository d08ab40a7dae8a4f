package cmd

import (
	"github.com/spf13/cobra"

	m "zipup.dev/pkg/zipup/internal/model"
)

const runLongDescription = `Bundle <file>, stage the archive in a temporary workspace and execute it
with the configured interpreter (run.interpreter, default "node").

The nearest node_modules above <file> is linked into the workspace. Arguments
after -- are passed to the program. The workspace is removed when the program
exits or zipup is interrupted, and the program's exit code becomes zipup's.`

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <file> [-- program args...]",
		Short: "Build an entry file and execute the packaged result",
		Long:  runLongDescription,
		Args: usageArgs(func(cmd *cobra.Command, args []string) error {
			entryArgs, _ := splitProgramArgs(cmd, args)
			return cobra.ExactArgs(1)(cmd, entryArgs)
		}),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range []string{outFlagName, watchFlagName} {
				if cmd.Flags().Changed(name) {
					return m.NewUsageError("--%s cannot be used with run", name)
				}
			}

			entryArgs, programArgs := splitProgramArgs(cmd, args)

			return buildEntry(cmd, entryArgs[0], true, programArgs)
		},
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// splitProgramArgs separates the arguments before and after "--".
func splitProgramArgs(cmd *cobra.Command, args []string) ([]string, []string) {
	dash := cmd.ArgsLenAtDash()
	if dash < 0 {
		return args, nil
	}

	return args[:dash], args[dash:]
}
