package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/getzep/animalfacts/config"
	"github.com/getzep/animalfacts/internal"
	"github.com/getzep/animalfacts/pkg/llms"
)

var log = internal.GetLogger()

var (
	cfgFile     string
	showVersion bool
	dumpConfig  bool
)

var cmd = &cobra.Command{
	Use:   "animalfacts",
	Short: "animalfacts serves LLM generated facts about animals, animal images and an upload endpoint",
	Run:   func(cmd *cobra.Command, args []string) { run() },
}

var dumpJsonSchemaCmd = &cobra.Command{
	Use:     "json-schema",
	Short:   "Generates JSON Schema for the animalfacts configuration file",
	Example: "animalfacts json-schema > animalfacts_config_schema.json",
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := config.JSONSchema()
		if err != nil {
			return err
		}
		fmt.Println(string(schema))
		return nil
	},
}

var checkLLMCmd = &cobra.Command{
	Use:   "check-llm",
	Short: "Checks the configured API key and sends a test prompt to the LLM",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(cfgFile)
		if err != nil {
			return err
		}
		config.SetLogLevel(cfg)

		cmd.SilenceUsage = true
		return checkLLM(context.Background(), cfg, llms.NewLLMClient, cmd.OutOrStdout())
	},
}

func init() {
	cmd.AddCommand(dumpJsonSchemaCmd)
	cmd.AddCommand(checkLLMCmd)

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default config.yaml)")
	cmd.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "print version number")
	cmd.PersistentFlags().BoolVarP(&dumpConfig, "dump-config", "d", false, "dump config")
}

// Execute executes the root cobra command.
func Execute() {
	log.SetLevel(logrus.InfoLevel)

	err := cmd.Execute()

	if err != nil {
		os.Exit(1)
	}
}
