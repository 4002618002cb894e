package core

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strconv"

	"github.com/andygrunwald/vdf"
)

// steamID64Base is the SteamID64 of account id 0; userdata directories are
// named after the account id.
const steamID64Base = 76561197960265728

type ShortcutFile struct {
	UserID string
	Path   string
}

// FindShortcutFiles lists <root>/userdata/<id>/config/shortcuts.vdf for every
// user directory that has one.
func FindShortcutFiles(host HostFs, steamRoot string) ([]ShortcutFile, error) {
	userdata := filepath.Join(steamRoot, "userdata")
	entries, err := host.ReadDir(userdata)
	if err != nil {
		return nil, WrapError(err, ErrReadFailed, userdata, "read userdata directory")
	}

	result := []ShortcutFile{}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		path := filepath.Join(userdata, entry.Name(), "config", "shortcuts.vdf")
		info, err := host.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		result = append(result, ShortcutFile{
			UserID: entry.Name(),
			Path:   path,
		})
	}

	return result, nil
}

// LoadLoginUsers maps userdata account ids to persona names using
// config/loginusers.vdf. A missing file yields an empty map.
func LoadLoginUsers(host HostFs, steamRoot string) (map[string]string, error) {
	result := map[string]string{}

	path := filepath.Join(steamRoot, "config", "loginusers.vdf")
	if !host.PathExists(path) {
		return result, nil
	}

	content, err := host.ReadFile(path)
	if err != nil {
		return result, WrapError(err, ErrReadFailed, path, "read login users")
	}

	parser := vdf.NewParser(bytes.NewReader(content))
	loginUsersMap, err := parser.Parse()
	if err != nil {
		return result, WrapError(err, ErrConfigLoad, path, "parse login users")
	}

	jsonStr, err := json.Marshal(loginUsersMap)
	if err != nil {
		return result, err
	}

	loginUsers := LoginUsers{}
	if err := json.Unmarshal(jsonStr, &loginUsers); err != nil {
		return result, WrapError(err, ErrConfigLoad, path, "decode login users")
	}

	for steamID, user := range loginUsers.Users {
		id, err := strconv.ParseUint(steamID, 10, 64)
		if err != nil || id < steamID64Base {
			continue
		}
		result[strconv.FormatUint(id-steamID64Base, 10)] = user.PersonaName
	}

	return result, nil
}
