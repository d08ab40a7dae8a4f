package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	m "zipup.dev/pkg/zipup/internal/model"
)

// cacheCmd represents the cache command.
var cacheCmd = newCacheCmd()

func newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache <clean|dir|size>",
		Short: "Inspect or clear the build cache",
		Long:  "Inspect or clear the build cache kept by the bundler (cache.dir, ZIPUP_CACHE_DIR).",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return m.NewUsageError("unknown command %q for %q", args[0], cmd.CommandPath())
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := rejectFlags(cmd); err != nil {
				return err
			}

			_ = cmd.Usage()

			return m.NewSilentExit(m.ExitUsage)
		},
	}

	cmd.AddCommand(newCacheCleanCmd(), newCacheDirCmd(), newCacheSizeCmd())

	return cmd
}

func init() {
	rootCmd.AddCommand(cacheCmd)
}

func newCacheCleanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Remove the cache directory",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := rejectFlags(cmd); err != nil {
				return err
			}

			return cacheMaintainer.Clean(cmd.Context())
		},
	}
}

func newCacheDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dir",
		Short: "Print the cache directory",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := rejectFlags(cmd); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), cacheMaintainer.Dir())

			return err
		},
	}
}

func newCacheSizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "size",
		Short: "Print the cache size in MB",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := rejectFlags(cmd); err != nil {
				return err
			}

			size, err := cacheMaintainer.Size(cmd.Context())
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), size)

			return err
		},
	}
}

// rejectFlags fails when any flag was given: cache commands take none.
func rejectFlags(cmd *cobra.Command) error {
	var names []string

	cmd.Flags().Visit(func(flag *pflag.Flag) {
		names = append(names, "--"+flag.Name)
	})

	if len(names) > 0 {
		return m.NewUsageError("%s cannot be used with cache", strings.Join(names, ", "))
	}

	return nil
}
