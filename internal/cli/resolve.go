// internal/cli/resolve.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/dllget"
)

var resolveArch string

var resolveCmd = &cobra.Command{
	Use:   "resolve [library.dll]",
	Short: "Show the download pages and links of a library",
	Long:  `Resolve a library down to its final download URLs without installing anything.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runResolve,
}

func init() {
	resolveCmd.Flags().StringVar(&resolveArch, "arch", "all", "architecture to resolve (32, 64 or all)")
}

func runResolve(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	library, err := dllget.ParseLibraryName(args[0])
	if err != nil {
		return fmt.Errorf("parsing dll name: %w", err)
	}

	archs, err := parseArchFlag(resolveArch)
	if err != nil {
		return err
	}

	mgr, err := dllget.NewManager(config, nil)
	if err != nil {
		return fmt.Errorf("initializing: %w", err)
	}

	logstep(fmt.Sprintf("Resolving %s", library))

	_, err = mgr.Links(ctx, library, archs, func(r dllget.Result) {
		if !r.PageFound() {
			logwarn(fmt.Sprintf("%s: no download page", r.Arch))
			return
		}
		fmt.Printf("%s:\n", r.Arch)
		logdetail("page:     " + r.PageURL)
		if r.Err != nil {
			logfail("download url not found")
			return
		}
		logdetail("download: " + r.DownloadURL)
	})
	return err
}
