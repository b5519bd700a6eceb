package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/adamwathan/lightningcss"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Rewrite @supports rules and print the result",
	Long: `Parses CSS from a file or stdin, resolves supports conditions against the
configured browser targets, prunes rules that reduced to nothing, and
prints the transformed stylesheet.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runFmt(cmd, args); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %v\n", inputName(args), err)
			os.Exit(1)
		}
	},
}

func init() {
	fmtCmd.Flags().BoolP("minify", "m", false, "strip optional whitespace from the output")
	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
	source, err := readInput(args)
	if err != nil {
		return err
	}

	t, err := loadTargets(cmd)
	if err != nil {
		return err
	}
	if !t.IsEmpty() {
		slog.Debug("resolving prefixes", "targets", t.String())
	}

	minify, _ := cmd.Flags().GetBool("minify")
	out, err := lightningcss.Transform(source, lightningcss.TransformOptions{
		Minify:  minify,
		Targets: t,
	})
	if err != nil {
		return err
	}

	fmt.Println(trimTrailingNewline(out))
	return nil
}
