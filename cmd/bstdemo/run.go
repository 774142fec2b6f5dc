package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"linked_bst/bench"
)

func newRunCmd(v *viper.Viper, log *logrus.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "time lookups of sampled words in lists and trees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			words, err := bench.LoadWordsFile(v.GetString(cfgWords))
			if err != nil {
				return err
			}
			cfg := bench.Config{
				SampleSize: v.GetInt(cfgSample),
				Log:        log,
			}
			if seed := v.GetUint64(cfgSeed); seed != 0 {
				cfg.Rand = bench.Seeded(seed)
			}
			report, err := bench.Run(words, cfg)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), report)
			return nil
		},
	}
	cmd.Flags().Int(cfgSample, bench.DefaultSampleSize, "number of words to sample")
	cmd.Flags().Uint64(cfgSeed, 0, "random seed (0 picks one at random)")
	_ = v.BindPFlag(cfgSample, cmd.Flags().Lookup(cfgSample))
	_ = v.BindPFlag(cfgSeed, cmd.Flags().Lookup(cfgSeed))
	return cmd
}
