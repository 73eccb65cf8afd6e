package dllfiles

import (
	"fmt"
	"runtime"
)

// DetectPlatform checks if we're on Windows, the only OS the default
// system directories exist on
func DetectPlatform() error {
	if runtime.GOOS != "windows" {
		return fmt.Errorf("default system directories only exist on windows, got %s: %w", runtime.GOOS, ErrPlatformNotSupported)
	}
	return nil
}
