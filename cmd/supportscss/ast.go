package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xlab/treeprint"

	"github.com/adamwathan/lightningcss"
	"github.com/adamwathan/lightningcss/ast"
)

var astCmd = &cobra.Command{
	Use:   "ast <condition>",
	Short: "Print the tree of a supports condition",
	Long: `Parses the text of a supports condition, such as
"(display: flex) and (display: grid)", and prints its tree.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cond, err := lightningcss.ParseCondition(args[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		tree := treeprint.New()
		addConditionNode(tree, cond)
		fmt.Print(tree.String())
	},
}

func init() {
	rootCmd.AddCommand(astCmd)
}

func addConditionNode(tree treeprint.Tree, c ast.Condition) {
	switch c := c.(type) {
	case *ast.NotCondition:
		addConditionNode(tree.AddBranch("not"), c.Inner)
	case *ast.AndCondition:
		branch := tree.AddBranch("and")
		for _, inner := range c.Conditions {
			addConditionNode(branch, inner)
		}
	case *ast.OrCondition:
		branch := tree.AddBranch("or")
		for _, inner := range c.Conditions {
			addConditionNode(branch, inner)
		}
	case *ast.DeclarationCondition:
		tree.AddNode(fmt.Sprintf("declaration %s: %s", c.Property, c.Value))
	case *ast.SelectorCondition:
		tree.AddNode(fmt.Sprintf("selector(%s)", c.Selector))
	case *ast.UnknownCondition:
		tree.AddNode(fmt.Sprintf("unknown %s", c.Raw))
	}
}
