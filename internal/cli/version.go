// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dllget version %s\n", version)
		fmt.Println("DLL installer for the Windows system directories")
		fmt.Println("https://github.com/arc-language/dllget")
	},
}
