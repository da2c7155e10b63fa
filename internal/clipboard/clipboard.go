// Package clipboard copies converted text to the system clipboard.
package clipboard

import (
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// ErrUnavailable is returned when no clipboard helper is installed.
var ErrUnavailable = errors.New("no clipboard command available")

// command returns the helper used on this platform, if one is installed.
func command() (name string, args []string, ok bool) {
	switch runtime.GOOS {
	case "darwin":
		name = "pbcopy"
	case "windows":
		return "cmd", []string{"/c", "clip"}, true
	default:
		// Wayland first, then the X11 helpers
		for _, c := range [][]string{
			{"wl-copy"},
			{"xclip", "-selection", "clipboard"},
			{"xsel", "--clipboard", "--input"},
		} {
			if _, err := exec.LookPath(c[0]); err == nil {
				return c[0], c[1:], true
			}
		}
		return "", nil, false
	}

	if _, err := exec.LookPath(name); err != nil {
		return "", nil, false
	}
	return name, nil, true
}

// Write copies text to the system clipboard.
func Write(text string) error {
	name, args, ok := command()
	if !ok {
		return ErrUnavailable
	}

	cmd := exec.Command(name, args...)
	cmd.Stdin = strings.NewReader(text)
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", name, err)
	}
	return nil
}

// Available reports whether Write can succeed on this system.
func Available() bool {
	_, _, ok := command()
	return ok
}
