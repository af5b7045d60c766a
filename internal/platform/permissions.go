package platform

import (
	"os"
	"runtime"
)

// Chmod sets file permissions. Windows has no Unix permission bits, so the
// call is a no-op there.
func Chmod(path string, mode os.FileMode) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	return os.Chmod(path, mode)
}
