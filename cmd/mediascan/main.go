package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/autobrr/go-mediascan/internal/cli"
	"github.com/autobrr/go-mediascan/internal/mediainfo"
)

var version = "dev"

var opts cli.Options

var rootCmd = &cobra.Command{
	Use:   "mediascan [flags] <path> [path...]",
	Short: "List media files as a sorted video and audio inventory.",
	Long: "mediascan runs mediainfo on each path (or reads pre-generated .xml reports)\n" +
		"and prints the videos sorted by size, followed by the audio files.",
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(cli.Run(cmd.Context(), os.Args[0], opts, args, cmd.OutOrStdout(), cmd.ErrOrStderr()))
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print mediascan version information",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cli.Version(cmd.OutOrStdout())
		return nil
	},
	DisableFlagsInUseLine: true,
}

func init() {
	mediainfo.SetAppVersion(resolveVersion())

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.ConfigPath, "config", "c", "", "YAML configuration file")
	flags.StringVar(&opts.Mediainfo, "mediainfo", "", "path to the mediainfo binary")
	flags.IntVarP(&opts.Workers, "workers", "j", 0, "documents read in parallel (default one per CPU)")
	flags.IntVarP(&opts.Width, "width", "w", 0, "output width in columns (default terminal width)")
	flags.StringVar(&opts.LogLevel, "log-level", "", "trace, debug, info, warn, error or off")
	flags.BoolVar(&opts.Header, "header", false, "print a heading above each section")
	flags.BoolVarP(&opts.Human, "human", "H", false, "print live file sizes in KiB/MiB/GiB")

	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func resolveVersion() string {
	if version != "" && version != "dev" {
		return normalizeVersion(version)
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			return normalizeVersion(info.Main.Version)
		}
	}
	return "dev"
}

func normalizeVersion(value string) string {
	return strings.TrimPrefix(value, "v")
}
