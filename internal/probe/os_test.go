package probe

import (
	"runtime"
	"testing"
)

func TestDetectOS(t *testing.T) {
	tests := []struct {
		platform string
		want     OSKind
	}{
		{"Darwin", MacOS},
		{"Linux", Linux},
		{"Windows", Windows},
		{"FreeBSD", "FreeBSD"},
		{"darwin", "darwin"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := DetectOS(tt.platform); got != tt.want {
			t.Errorf("DetectOS(%q) = %q, want %q", tt.platform, got, tt.want)
		}
	}
}

func TestPlatformName(t *testing.T) {
	tests := []struct {
		goos string
		want string
	}{
		{"darwin", "Darwin"},
		{"linux", "Linux"},
		{"windows", "Windows"},
		{"freebsd", "FreeBSD"},
		{"plan9", "Plan9"},
		{"solaris", "Solaris"},
	}
	for _, tt := range tests {
		if got := PlatformName(tt.goos); got != tt.want {
			t.Errorf("PlatformName(%q) = %q, want %q", tt.goos, got, tt.want)
		}
	}
}

func TestCurrentOS(t *testing.T) {
	got := CurrentOS()
	switch runtime.GOOS {
	case "darwin":
		if got != MacOS {
			t.Errorf("CurrentOS() = %q, want %q", got, MacOS)
		}
	case "linux":
		if got != Linux {
			t.Errorf("CurrentOS() = %q, want %q", got, Linux)
		}
	case "windows":
		if got != Windows {
			t.Errorf("CurrentOS() = %q, want %q", got, Windows)
		}
	}
}
