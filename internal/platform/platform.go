package platform

import (
	"fmt"
	"runtime"
	"strings"
)

// SupportedOS represents supported operating systems
type SupportedOS string

const (
	Linux   SupportedOS = "linux"
	Windows SupportedOS = "windows"
	Solaris SupportedOS = "solaris"
	Illumos SupportedOS = "illumos"
)

// GetOS returns the current operating system
func GetOS() SupportedOS {
	return SupportedOS(runtime.GOOS)
}

// IsSupported returns true if the current OS is supported
func IsSupported() bool {
	switch GetOS() {
	case Linux, Windows, Solaris, Illumos:
		return true
	}
	return false
}

// ValidateSupport returns an error if the current OS is not supported
func ValidateSupport() error {
	if !IsSupported() {
		return fmt.Errorf("unsupported operating system: %s. Supported: linux, windows, solaris, illumos", runtime.GOOS)
	}
	return nil
}

// Arch is the processor architecture family that decides which psrinfo
// report format a host prints.
type Arch string

const (
	X86   Arch = "x86"
	Sparc Arch = "sparc"
)

// ParseArch maps the output of `uname -p` (or a canonical name) to an Arch.
func ParseArch(s string) (Arch, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "x86", "i386", "i486", "i586", "i686", "i86pc", "x86_64", "amd64":
		return X86, nil
	case "sparc", "sparcv9", "sun4u", "sun4v":
		return Sparc, nil
	default:
		return "", fmt.Errorf("unsupported processor architecture %q", strings.TrimSpace(s))
	}
}
