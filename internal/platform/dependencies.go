package platform

import (
	"fmt"
	"os/exec"
	"runtime"
)

// YTDLPCommand is the downloader executable, resolved through PATH
const YTDLPCommand = "yt-dlp"

// ValidateYTDLP checks that yt-dlp is available in PATH
func ValidateYTDLP() error {
	if _, err := exec.LookPath(YTDLPCommand); err != nil {
		return fmt.Errorf("%s not found in PATH. %s", YTDLPCommand, installationInstructions())
	}
	return nil
}

// installationInstructions returns platform-specific installation instructions
func installationInstructions() string {
	switch runtime.GOOS {
	case OSDarwin:
		return "Install with: brew install yt-dlp"
	case OSLinux:
		return "Install with: pipx install yt-dlp (or your distribution's package manager)"
	case OSWindows:
		return "Install with: winget install yt-dlp, or download yt-dlp.exe and add it to PATH"
	default:
		return "Download from https://github.com/yt-dlp/yt-dlp/releases"
	}
}
