package platform

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestChmod(t *testing.T) {
	tests := []struct {
		name string
		dir  bool
		mode os.FileMode
	}{
		{"executable script", false, 0700},
		{"private file", false, 0600},
		{"directory", true, 0750},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "target")
			var err error
			if tt.dir {
				err = os.Mkdir(path, 0755)
			} else {
				err = os.WriteFile(path, []byte("print('hi')\n"), 0644)
			}
			if err != nil {
				t.Fatal(err)
			}

			if err := Chmod(path, tt.mode); err != nil {
				t.Fatalf("Chmod failed: %v", err)
			}
			if runtime.GOOS == "windows" {
				return
			}
			info, err := os.Stat(path)
			if err != nil {
				t.Fatal(err)
			}
			if perm := info.Mode().Perm(); perm != tt.mode {
				t.Errorf("permissions = %o, want %o", perm, tt.mode)
			}
		})
	}
}
