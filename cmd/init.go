package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/support-bot/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize supportbot configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure supportbot and writes the config file (.supportbot.yml by default).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		useDefaults, _ := cmd.Flags().GetBool("defaults")
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(cfgFile); err == nil && !force {
			return fmt.Errorf("%s already exists; use --force to overwrite", cfgFile)
		}

		if useDefaults {
			if err := config.DefaultConfig().Save(cfgFile); err != nil {
				return err
			}
			fmt.Printf("Default configuration saved to %s\n", cfgFile)
			return nil
		}

		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	initCmd.Flags().Bool("defaults", false, "write the default config without prompting")
	initCmd.Flags().Bool("force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}
