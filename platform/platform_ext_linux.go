//go:build linux

package platform

import (
	"os"
	"path/filepath"
)

// GetSteamRoot checks the native install, the legacy ~/.steam symlink and the
// flatpak sandbox, in that order.
func GetSteamRoot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return firstExistingDir(
		filepath.Join(home, ".local", "share", "Steam"),
		filepath.Join(home, ".steam", "steam"),
		filepath.Join(home, ".var", "app", "com.valvesoftware.Steam", ".local", "share", "Steam"),
	)
}
