// internal/cli/config.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arc-language/dllget/pkg/core"
)

var configWrite bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Long: `Print the configuration after applying the config file, the env file,
DLLGET_* variables and flags. With --write it is saved to the config file.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configWrite, "write", false, "save the effective configuration to the config file")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if configWrite {
		if err := core.SaveConfig(config, cfgFile); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		fmt.Println("Configuration saved.")
		return nil
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	fmt.Print(string(data))
	return nil
}
