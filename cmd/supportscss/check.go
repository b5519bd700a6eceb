package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adamwathan/lightningcss"
	"github.com/adamwathan/lightningcss/parser"
)

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate the @supports rules in a stylesheet",
	Long: `Parses CSS from a file or stdin and reports every syntax error found in
@supports preludes, with line and column positions. Exits non-zero when
the input does not parse cleanly.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runCheck(args); err != nil {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(args []string) error {
	source, err := readInput(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", inputName(args), err)
		return err
	}

	_, err = lightningcss.ParseStyleSheet(source)
	if err == nil {
		fmt.Printf("%s: ok\n", inputName(args))
		return nil
	}

	if errs, ok := err.(parser.ErrorList); ok {
		for _, e := range errs {
			if pe, ok := e.(*parser.Error); ok {
				fmt.Fprintf(os.Stderr, "%s:%s: %s\n", inputName(args), pe.Pos, pe.Message)
				continue
			}
			fmt.Fprintf(os.Stderr, "%s: %v\n", inputName(args), e)
		}
		return err
	}
	fmt.Fprintf(os.Stderr, "%s: %v\n", inputName(args), err)
	return err
}
