// internal/cli/install.go
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/dllget"
	"github.com/arc-language/dllget/pkg/dllfiles"
)

var installArch string

var installCmd = &cobra.Command{
	Use:   "install [library.dll]",
	Short: "Download a library and install it into the system directories",
	Long: `Install the 32-bit and 64-bit builds of a library.

The 32-bit build goes to SysWOW64 and the 64-bit build to System32.
A library that already exists is left untouched.

Examples:
  dllget install msvcp140.dll
  dllget install d3dx9_43.dll --arch=32
  DLLGET_X64_DIR=$WINEPREFIX/drive_c/windows/system32 dllget install zlib1.dll --arch=64`,
	Args: cobra.ExactArgs(1),
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVar(&installArch, "arch", "all", "architecture to install (32, 64 or all)")
}

func runInstall(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	logstep("Installing...")

	library, err := dllget.ParseLibraryName(args[0])
	if err != nil {
		return fmt.Errorf("parsing dll name: %w", err)
	}

	archs, err := parseArchFlag(installArch)
	if err != nil {
		return err
	}

	if config.UsesDefaultDirs(archs...) {
		if err := dllfiles.DetectPlatform(); err != nil {
			return fmt.Errorf("%w (set x32_dir and x64_dir to install elsewhere)", err)
		}
	}

	mgr, err := dllget.NewManager(config, nil)
	if err != nil {
		return fmt.Errorf("initializing: %w", err)
	}

	_, err = mgr.Install(ctx, library, archs, func(r dllget.Result) {
		printInstallResult(mgr, library, r)
	})
	return err
}

func printInstallResult(mgr *dllget.Manager, library string, r dllget.Result) {
	switch {
	case !r.PageFound():
		logwarn(fmt.Sprintf("The %s %s download page url not found", r.Arch, library))
	case r.Err != nil:
		logfail(fmt.Sprintf("Install the %s %s fail", r.Arch, library))
	default:
		dest := mgr.Destination(r.Arch, library)
		switch r.Outcome {
		case dllget.OutcomeInstalled:
			logok(fmt.Sprintf("Install the %s %s success!", r.Arch, library))
			logdetail(dest)
		case dllget.OutcomeSkippedAlreadyPresent:
			logok(fmt.Sprintf("The %s %s is already installed", r.Arch, library))
			logdetail(dest)
		case dllget.OutcomeNoMatchingMember:
			logwarn(fmt.Sprintf("The %s %s archive holds no dll, nothing installed", r.Arch, library))
		}
	}
}

// parseArchFlag turns "32", "64" or "all" into the architectures to process
func parseArchFlag(value string) ([]dllget.Architecture, error) {
	if value == "" || value == "all" {
		return dllfiles.Architectures, nil
	}
	arch, ok := dllfiles.ParseArchitecture(value)
	if !ok {
		return nil, fmt.Errorf("unknown architecture %q (want 32, 64 or all): %w", value, dllget.ErrArgument)
	}
	return []dllget.Architecture{arch}, nil
}
