// Package clipboard provides cross-platform clipboard support.
package clipboard

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

// Write copies text to the system clipboard. The native clipboard is
// tried first; on failure the platform command-line tools are used.
func Write(text string) error {
	if err := clipboard.WriteAll(text); err == nil {
		return nil
	}
	return writeViaCommand(text)
}

func writeViaCommand(text string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("pbcopy")
	case "linux":
		// Try xclip first, fall back to xsel
		if _, err := exec.LookPath("xclip"); err == nil {
			cmd = exec.Command("xclip", "-selection", "clipboard")
		} else {
			cmd = exec.Command("xsel", "--clipboard", "--input")
		}
	case "windows":
		cmd = exec.Command("cmd", "/c", "clip")
	default:
		cmd = exec.Command("xclip", "-selection", "clipboard")
	}

	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}

// Available checks if clipboard functionality is available.
func Available() bool {
	if !clipboard.Unsupported {
		return true
	}
	switch runtime.GOOS {
	case "darwin":
		_, err := exec.LookPath("pbcopy")
		return err == nil
	case "linux":
		if _, err := exec.LookPath("xclip"); err == nil {
			return true
		}
		_, err := exec.LookPath("xsel")
		return err == nil
	case "windows":
		return true
	default:
		return false
	}
}
