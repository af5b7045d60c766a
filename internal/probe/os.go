package probe

import (
	"runtime"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// OSKind is the host operating system as presented to users. Known values are
// the constants below; any other platform name passes through unchanged.
type OSKind string

const (
	Windows OSKind = "Windows"
	Linux   OSKind = "Linux"
	MacOS   OSKind = "MacOS"
)

// darwinPlatform is the platform identifier macOS reports.
const darwinPlatform = "Darwin"

var platformNames = map[string]string{
	"darwin":  darwinPlatform,
	"linux":   "Linux",
	"windows": "Windows",
	"freebsd": "FreeBSD",
	"openbsd": "OpenBSD",
	"netbsd":  "NetBSD",
}

// PlatformName converts a Go GOOS value to the conventional platform
// identifier ("darwin" → "Darwin", "linux" → "Linux"). Unlisted values are
// title-cased.
func PlatformName(goos string) string {
	if name, ok := platformNames[goos]; ok {
		return name
	}
	return cases.Title(language.English).String(goos)
}

// DetectOS maps a platform identifier to an OSKind. "Darwin" becomes MacOS;
// every other value is returned verbatim.
func DetectOS(platform string) OSKind {
	if platform == darwinPlatform {
		return MacOS
	}
	return OSKind(platform)
}

// CurrentOS returns the OSKind of the running host.
func CurrentOS() OSKind {
	return DetectOS(PlatformName(runtime.GOOS))
}
