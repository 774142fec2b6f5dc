package main

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"linked_bst/bst"
)

const (
	cfgConfig   = "config"
	cfgWords    = "words"
	cfgLogLevel = "log-level"
	cfgSample   = "sample"
	cfgSeed     = "seed"
	cfgPrint    = "print"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	log := logrus.New()

	root := &cobra.Command{
		Use:          "bstdemo",
		Short:        "binary search tree lookup demo",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, v, log)
		},
	}
	root.PersistentFlags().String(cfgConfig, "", "config file (yaml, toml or json)")
	root.PersistentFlags().String(cfgWords, "words.txt", "word list, one word per line")
	root.PersistentFlags().String(cfgLogLevel, "info", "log level")
	_ = v.BindPFlags(root.PersistentFlags())

	root.AddCommand(newRunCmd(v, log), newStatsCmd(v, log))
	return root
}

// initConfig layers flags over BSTDEMO_* environment variables over the config
// file, then sets up logging.
func initConfig(cmd *cobra.Command, v *viper.Viper, log *logrus.Logger) error {
	v.SetEnvPrefix("BSTDEMO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file := v.GetString(cfgConfig); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	level, err := logrus.ParseLevel(v.GetString(cfgLogLevel))
	if err != nil {
		return err
	}
	log.SetOutput(cmd.ErrOrStderr())
	log.SetLevel(level)
	bst.Log.SetOutput(cmd.ErrOrStderr())
	bst.Log.SetLevel(level)
	log.WithFields(logrus.Fields{
		"words":  v.GetString(cfgWords),
		"config": v.ConfigFileUsed(),
	}).Debug("configured")
	return nil
}
