// internal/cli/root.go
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/arc-language/dllget/pkg/core"
)

var (
	cfgFile string
	envFile string
	debug   bool
	config  *core.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "dllget",
	Short: "Fetch missing DLLs into the Windows system directories",
	Long: `dllget - DLL installer

Looks a library up on the file host, downloads the 32-bit and 64-bit
builds and places them into SysWOW64 and System32.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/dllget/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "KEY=value file with DLLGET_* overrides (default is ./.env)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	// Add commands
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		config = core.DefaultConfig()
	}

	var envFiles []string
	if envFile != "" {
		envFiles = append(envFiles, envFile)
	}
	if err := core.LoadEnv(envFiles...); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading env file: %v\n", err)
	}
	if err := core.ApplyEnv(config); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading environment: %v\n", err)
	}

	// Override config with flags
	if debug {
		config.Debug = true
	}
}
