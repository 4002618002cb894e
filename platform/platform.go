package platform

import (
	"errors"
	"os"
)

var ErrSteamNotFound = errors.New("steam installation not found")

func firstExistingDir(candidates ...string) (string, error) {
	for _, dir := range candidates {
		info, err := os.Stat(dir)
		if err == nil && info.IsDir() {
			return dir, nil
		}
	}
	return "", ErrSteamNotFound
}
