//go:build windows

package platform

import (
	"fmt"
	"path/filepath"

	"golang.org/x/sys/windows/registry"
)

// GetSteamRoot reads the install location the Steam client records in the
// registry, falling back to the machine-wide key.
func GetSteamRoot() (string, error) {
	if path, err := readRegistryPath(registry.CURRENT_USER, `SOFTWARE\Valve\Steam`, "SteamPath"); err == nil {
		return firstExistingDir(filepath.Clean(path))
	}

	path, err := readRegistryPath(registry.LOCAL_MACHINE, `SOFTWARE\WOW6432Node\Valve\Steam`, "InstallPath")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSteamNotFound, err)
	}
	return firstExistingDir(filepath.Clean(path))
}

func readRegistryPath(root registry.Key, path string, value string) (string, error) {
	key, err := registry.OpenKey(root, path, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer key.Close()

	steamPath, _, err := key.GetStringValue(value)
	if err != nil {
		return "", err
	}
	return steamPath, nil
}
