package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"linked_bst/bench"
	"linked_bst/bst"
)

func printShape(w io.Writer, label string, tree *bst.Tree[string]) {
	fmt.Fprintf(w, "%s: size %d, height %d, balanced %t\n",
		label, tree.Len(), tree.Height(), tree.IsBalanced())
}

func newStatsCmd(v *viper.Viper, log *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "load the word list in file order and describe the tree's shape",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := bench.LoadWordsFile(v.GetString(cfgWords))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			tree := bst.New(words...)
			if err := tree.Check(); err != nil {
				return err
			}
			log.WithField("size", tree.Len()).Debug("loaded")

			printShape(out, "as loaded", tree)
			lo, _ := tree.Min()
			hi, _ := tree.Max()
			fmt.Fprintf(out, "range: %q .. %q\n", lo, hi)

			tree.Rebalance()
			printShape(out, "rebalanced", tree)
			if v.GetBool(cfgPrint) {
				fmt.Fprint(out, tree)
			}
			return nil
		},
	}
	cmd.Flags().Bool(cfgPrint, false, "draw the rebalanced tree")
	_ = v.BindPFlag(cfgPrint, cmd.Flags().Lookup(cfgPrint))
	return cmd
}
