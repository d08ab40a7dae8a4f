package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"zipup.dev/pkg/zipup/internal/domain"
)

const buildLongDescription = `Bundle <file> and package the result into a zip archive.

<file> may name the entry directly, omit its .js or .cjs extension, or be a
directory resolved through package.json "main", index.js or index.cjs.

With --watch the archive is rebuilt on every change until interrupted.`

// buildCmd represents the build command.
var buildCmd = newBuildCmd()

func newBuildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build <file>",
		Short: "Bundle an entry file into a zip archive",
		Long:  buildLongDescription,
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return buildEntry(cmd, args[0], false, nil)
		},
	}
}

func init() {
	rootCmd.AddCommand(buildCmd)
}

// buildEntry is the routine shared by build and run.
func buildEntry(cmd *cobra.Command, entry string, run bool, programArgs []string) error {
	env, err := commandEnv(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	args, err := planner.Plan(ctx, env, domain.Request{
		Entry:       entry,
		Run:         run,
		Out:         outFlag,
		Filename:    viper.GetString(filenameConfigKey),
		ConfigPath:  configFlag,
		Ignore:      ignoreFlag,
		Compression: viper.GetInt(compressionConfigKey),
		StatsOut:    statsOutFlag,
		Watch:       watchFlag,
		NoCache:     viper.GetBool(noCacheConfigKey),
		Interpreter: viper.GetString(interpreterKey),
		ProgramArgs: programArgs,
		Overrides:   overridesFromFlags(cmd.Flags()),
	})
	if err != nil {
		return err
	}

	if args.Watch {
		var stop func()

		ctx, stop = signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
		defer stop()
	}

	ui := newCommandUI(cmd, args.Watch || args.Run)

	return newWorkflow(ui).Build(ctx, env, args)
}
