// Package cmd provides the root command and CLI setup for zipup.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"zipup.dev/pkg/zipup/internal/adapter"
	"zipup.dev/pkg/zipup/internal/controller"
	"zipup.dev/pkg/zipup/internal/domain"
	m "zipup.dev/pkg/zipup/internal/model"
)

var fsAdapter adapter.FSAdapter
var bundler adapter.Bundler
var assembler domain.Assembler
var supervisor domain.Supervisor
var planner domain.Planner
var cacheMaintainer domain.CacheMaintainer

// newWorkflow builds the orchestrator around the UI chosen for one invocation.
var newWorkflow = func(ui controller.UI) domain.Workflow {
	return domain.NewWorkflow(fsAdapter, bundler, assembler, supervisor, ui)
}

var (
	outFlag         string
	filenameFlag    string
	configFlag      string
	ignoreFlag      []string
	licenseFlag     string
	compressionFlag int
	quietFlag       bool
	statsOutFlag    string
	watchFlag       bool
	minifyFlag      bool
	sourceMapFlag   bool
	externalFlag    []string
	targetFlag      string
	noCacheFlag     bool
)

func init() {
	initDependencies()
}

func initDependencies() {
	fsAdapter = adapter.NewLocalFSAdapter()
	archiver := adapter.NewZipArchiver()
	bundler = adapter.NewEsbuildBundler(m.Path(viper.GetString(cacheDirKey)), fsAdapter)
	assembler = domain.NewAssembler(fsAdapter, archiver)
	supervisor = domain.NewSupervisor(fsAdapter, archiver, adapter.NewLocalProcessAdapter())
	planner = domain.NewPlanner(fsAdapter, domain.NewConfigResolver(fsAdapter))
	cacheMaintainer = domain.NewCacheMaintainer(fsAdapter, bundler.CacheDir())
}

const rootLongDescription = `zipup bundles a JavaScript entry file with esbuild and packages the result
into a single zip archive ready for deployment.

Source maps and the license file named with --license are written beside the
archive instead of into it. Project settings are read from zipup.config.json,
.yaml, .yml or .toml, or from the "zipup" block of package.json.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zipup",
		Short: "Bundle JavaScript into deployable zip archives",
		Long:  rootLongDescription,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return m.NewUsageError("unknown command %q for %q", args[0], cmd.CommandPath())
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			_ = cmd.Usage()
			return m.NewSilentExit(m.ExitUsage)
		},
		PersistentPreRunE: func(*cobra.Command, []string) error {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cmd.CompletionOptions.DisableDefaultCmd = true
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return m.WrapUsageError(err)
	})
	cmd.SetHelpCommand(newHelpCmd())
	configureRootFlags(cmd)

	return cmd
}

// newHelpCmd prints usage and always fails with the usage exit code.
func newHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "help [command]",
		Short: "Show usage for zipup or one of its commands",
		RunE: func(cmd *cobra.Command, args []string) error {
			target, _, err := cmd.Root().Find(args)
			if err != nil || target == nil {
				target = cmd.Root()
			}

			_ = target.Help()

			return m.NewSilentExit(m.ExitUsage)
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&outFlag, outFlagName, "o", "", `archive path (default "dist.zip"); not with run or --watch`)
	flags.StringVarP(&filenameFlag, filenameFlagName, "f", m.DefaultFilename, "stem of the main code entry in the archive")
	bindFlagToConfig(flags.Lookup(filenameFlagName), filenameConfigKey)
	flags.StringVarP(&configFlag, configFlagName, "c", "", "project config file (default: zipup.config.* or package.json)")
	flags.StringArrayVarP(&ignoreFlag, ignoreFlagName, "i", nil, "leave assets matching the glob out of the archive (can be repeated)")
	flags.StringVar(&licenseFlag, licenseFlagName, "", "asset written beside the archive instead of into it")
	flags.IntVar(&compressionFlag, compressionFlagName, m.DefaultCompression, "deflate level 0-9")
	bindFlagToConfig(flags.Lookup(compressionFlagName), compressionConfigKey)
	flags.BoolVarP(&quietFlag, quietFlagName, "q", false, "do not print the size summary")
	flags.StringVar(&statsOutFlag, statsOutFlagName, "", "write the bundler metafile as JSON to this path")
	flags.BoolVarP(&watchFlag, watchFlagName, "w", false, "rebuild on every change; not with run")
	flags.BoolVarP(&minifyFlag, minifyFlagName, "m", false, "minify the bundle")
	flags.BoolVarP(&sourceMapFlag, sourceMapFlagName, "s", false, "write a source map beside the archive")
	flags.StringArrayVarP(&externalFlag, externalFlagName, "e", nil, "keep the module out of the bundle (can be repeated)")
	flags.StringVarP(&targetFlag, targetFlagName, "t", "", "language target such as es2020 or node18")
	flags.BoolVar(&noCacheFlag, noCacheFlagName, false, "bypass the build cache")
	bindFlagToConfig(flags.Lookup(noCacheFlagName), noCacheConfigKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// overridesFromFlags returns the config overrides the user set explicitly.
func overridesFromFlags(flags *pflag.FlagSet) domain.Overrides {
	var overrides domain.Overrides

	if flags.Changed(quietFlagName) {
		overrides.Quiet = ptr(quietFlag)
	}

	if flags.Changed(licenseFlagName) {
		overrides.License = ptr(licenseFlag)
	}

	if flags.Changed(minifyFlagName) {
		overrides.Minify = ptr(minifyFlag)
	}

	if flags.Changed(sourceMapFlagName) {
		overrides.SourceMap = ptr(sourceMapFlag)
	}

	if flags.Changed(externalFlagName) {
		overrides.External = append([]string{}, externalFlag...)
	}

	if flags.Changed(targetFlagName) {
		overrides.Target = ptr(targetFlag)
	}

	return overrides
}

func ptr[T any](v T) *T {
	return &v
}

// commandEnv is the process environment with stdio taken from cmd so output
// can be captured.
func commandEnv(cmd *cobra.Command) (domain.Env, error) {
	env, err := domain.NewOSEnv(true)
	if err != nil {
		return domain.Env{}, fmt.Errorf("working directory: %w", err)
	}

	env.Stdin = cmd.InOrStdin()
	env.Stdout = cmd.OutOrStdout()
	env.Stderr = cmd.ErrOrStderr()

	return env, nil
}

// newCommandUI styles output on terminals. Long-running invocations never page.
func newCommandUI(cmd *cobra.Command, longRunning bool) controller.UI {
	out := cmd.OutOrStdout()
	styled := controller.IsTerminal(out)

	return controller.NewUI(controller.Options{
		Out:         out,
		ErrOut:      cmd.ErrOrStderr(),
		Styled:      styled,
		Interactive: styled && !longRunning,
	})
}

// usageArgs tags positional argument errors with the usage exit code.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return m.WrapUsageError(err)
		}

		return nil
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if code := execute(rootCmd); code != m.ExitSuccess {
		os.Exit(code)
	}
}

// execute runs cmd and maps its outcome to an exit code. Silent errors were
// already reported and are not printed again.
func execute(cmd *cobra.Command) int {
	err := cmd.Execute()
	if err == nil {
		return m.ExitSuccess
	}

	code := m.GetExitCode(err)

	if !m.IsSilent(err) {
		errOut := cmd.ErrOrStderr()
		_, _ = fmt.Fprintf(errOut, "Error: %v\n", err)

		if code == m.ExitUsage {
			_, _ = fmt.Fprintf(errOut, "Run '%s help' for usage.\n", cmd.CommandPath())
		}
	}

	return code
}
