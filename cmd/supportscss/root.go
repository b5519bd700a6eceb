package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adamwathan/lightningcss/targets"
)

var rootCmd = &cobra.Command{
	Use:   "supportscss",
	Short: "Parse, transform and print CSS @supports rules",
	Long: `supportscss reads CSS and rewrites its @supports rules: conditions are
normalized, vendor prefixes are resolved against browser targets, and
rules that reduce to nothing are dropped.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("targets", "", `browser targets, e.g. "chrome 90, safari 13.2"`)
	rootCmd.PersistentFlags().String("targets-file", "", "YAML file with browser targets")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
}

// loadTargets resolves browser targets from flags. An explicit --targets
// string wins over a --targets-file.
func loadTargets(cmd *cobra.Command) (targets.Browsers, error) {
	if s, _ := cmd.Flags().GetString("targets"); s != "" {
		return targets.Parse(s)
	}
	if path, _ := cmd.Flags().GetString("targets-file"); path != "" {
		slog.Debug("loading targets", "path", path)
		return targets.Load(path)
	}
	return targets.Browsers{}, nil
}

// readInput returns the contents of the file named by args, or stdin when
// no argument is given.
func readInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(args[0])
	return string(b), err
}

// inputName names the input for diagnostics.
func inputName(args []string) string {
	if len(args) == 0 || args[0] == "-" {
		return "<stdin>"
	}
	return args[0]
}

// trimTrailingNewline drops a single trailing newline so command output
// controls its own line ending.
func trimTrailingNewline(s string) string {
	return strings.TrimSuffix(s, "\n")
}
