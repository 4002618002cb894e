//go:build darwin

package platform

import (
	"os"
	"path/filepath"
)

func GetSteamRoot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return firstExistingDir(filepath.Join(home, "Library", "Application Support", "Steam"))
}
