package platform

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
	WindowsCmdFlag = "/c"
)

// Audio file extensions accepted for recognition uploads
var (
	AudioExtensions = []string{".mp3", ".wav", ".ogg", ".m4a", ".flac", ".aac", ".wma", ".opus", ".aiff", ".webm"}
)

// IsAudioFile reports whether the path has a recognized audio extension
func IsAudioFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, audioExt := range AudioExtensions {
		if ext == audioExt {
			return true
		}
	}
	return false
}

// OpenExternal opens a URL or file with the default system application
func OpenExternal(target string) error {
	if target == "" {
		return fmt.Errorf("nothing to open: empty target")
	}

	switch runtime.GOOS {
	case OSDarwin: // macOS
		return openExternalMacOS(target)
	case OSWindows:
		return openExternalWindows(target)
	case OSLinux:
		return openExternalLinux(target)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openExternalMacOS opens the target with the default app on macOS
func openExternalMacOS(target string) error {
	cmd := exec.Command(OpenCommand, target)
	return cmd.Run()
}

// openExternalWindows opens the target with the default app on Windows
func openExternalWindows(target string) error {
	cmd := exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", target)
	return cmd.Run()
}

// openExternalLinux opens the target with the default app on Linux
func openExternalLinux(target string) error {
	cmd := exec.Command(XDGOpenCommand, target)
	return cmd.Run()
}
