package cmd

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/Rorical/arraykit/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or change generator settings",
	Long:  `Inspect or change the ranges used when a random array is created.`,
}

var showConfigCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective settings",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		out := cmd.OutOrStdout()
		source := "built-in defaults"
		if cfg.FromFile() {
			source = cfg.Path()
		}
		fmt.Fprintf(out, "Config: %s\n", source)
		fmt.Fprintf(out, "  Length: %d..%d\n", cfg.Generator.MinLength, cfg.Generator.MaxLength)
		fmt.Fprintf(out, "  Values: %d..%d\n", cfg.Generator.MinValue, cfg.Generator.MaxValue)
	},
}

var initConfigCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file interactively",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}

		fields := []struct {
			label string
			value *int
		}{
			{"Minimum length", &cfg.Generator.MinLength},
			{"Maximum length", &cfg.Generator.MaxLength},
			{"Minimum value", &cfg.Generator.MinValue},
			{"Maximum value", &cfg.Generator.MaxValue},
		}

		for _, f := range fields {
			prompt := promptui.Prompt{
				Label:    f.label,
				Default:  strconv.Itoa(*f.value),
				Validate: validateInt,
			}
			answer, err := prompt.Run()
			if err != nil {
				log.Fatalf("Prompt failed: %v", err)
			}
			*f.value, _ = strconv.Atoi(answer)
		}

		if err := cfg.Save(); err != nil {
			log.Fatalf("Failed to save config: %v", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Settings written to %s\n", cfg.Path())
	},
}

func validateInt(s string) error {
	if _, err := strconv.Atoi(s); err != nil {
		return errors.New("enter a whole number")
	}
	return nil
}

func init() {
	configCmd.AddCommand(showConfigCmd)
	configCmd.AddCommand(initConfigCmd)
}
