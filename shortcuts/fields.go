package shortcuts

import (
	"encoding/binary"
	"strconv"
	"strings"
)

type field int

const (
	fieldUnknown field = iota
	fieldAppID
	fieldAppName
	fieldExe
	fieldStartDir
	fieldIcon
	fieldShortcutPath
	fieldLaunchOptions
	fieldIsHidden
	fieldAllowDesktopConfig
	fieldAllowOverlay
	fieldOpenVR
	fieldDevkit
	fieldDevkitGameID
	fieldDevkitOverrideAppID
	fieldLastPlayTime
	fieldFlatpakAppID
	fieldTags
)

type fieldSpec struct {
	id   field
	name string
	tag  Tag
}

// knownFields is in the order the Steam client writes them.
var knownFields = []fieldSpec{
	{fieldAppID, "appid", TagInt32},
	{fieldAppName, "AppName", TagString},
	{fieldExe, "Exe", TagString},
	{fieldStartDir, "StartDir", TagString},
	{fieldIcon, "icon", TagString},
	{fieldShortcutPath, "ShortcutPath", TagString},
	{fieldLaunchOptions, "LaunchOptions", TagString},
	{fieldIsHidden, "IsHidden", TagInt32},
	{fieldAllowDesktopConfig, "AllowDesktopConfig", TagInt32},
	{fieldAllowOverlay, "AllowOverlay", TagInt32},
	{fieldOpenVR, "OpenVR", TagInt32},
	{fieldDevkit, "Devkit", TagInt32},
	{fieldDevkitGameID, "DevkitGameID", TagString},
	{fieldDevkitOverrideAppID, "DevkitOverrideAppID", TagInt32},
	{fieldLastPlayTime, "LastPlayTime", TagInt32},
	{fieldFlatpakAppID, "FlatpakAppID", TagString},
	{fieldTags, "tags", TagNested},
}

var fieldsByName = func() map[string]fieldSpec {
	m := make(map[string]fieldSpec, len(knownFields))
	for _, f := range knownFields {
		m[strings.ToLower(f.name)] = f
	}
	return m
}()

var fieldsByID = func() map[field]fieldSpec {
	m := make(map[field]fieldSpec, len(knownFields))
	for _, f := range knownFields {
		m[f.id] = f
	}
	return m
}()

func lookupField(key []byte) (fieldSpec, bool) {
	f, ok := fieldsByName[strings.ToLower(string(key))]
	return f, ok
}

// slot records one field of a decoded entry in its original position.
type slot struct {
	field field
	key   []byte
	node  *Node // verbatim value for unknown fields
}

// shortcutFromNode projects a decoded entry record onto a Shortcut. A field
// whose key is known but whose shape is not what the client writes, or that
// repeats, is kept verbatim instead.
func shortcutFromNode(n *Node, index int) *Shortcut {
	s := &Shortcut{
		Index:     index,
		key:       n.Key,
		origIndex: index,
		layout:    make([]slot, 0, len(n.Children)),
	}

	seen := make(map[field]bool)
	for _, c := range n.Children {
		spec, ok := lookupField(c.Key)
		if !ok || seen[spec.id] || c.Tag != spec.tag || (spec.id == fieldTags && !isStringList(c)) {
			s.layout = append(s.layout, slot{field: fieldUnknown, key: c.Key, node: c})
			continue
		}

		seen[spec.id] = true
		s.set(spec.id, c)
		s.layout = append(s.layout, slot{field: spec.id, key: c.Key})
	}
	return s
}

func isStringList(n *Node) bool {
	for _, c := range n.Children {
		if c.Tag != TagString {
			return false
		}
	}
	return true
}

func (s *Shortcut) set(id field, n *Node) {
	switch id {
	case fieldAppID:
		s.AppID = uint32(n.Int)
	case fieldAppName:
		s.AppName = string(n.Str)
	case fieldExe:
		s.Exe = string(n.Str)
	case fieldStartDir:
		s.StartDir = string(n.Str)
	case fieldIcon:
		s.Icon = string(n.Str)
	case fieldShortcutPath:
		s.ShortcutPath = string(n.Str)
	case fieldLaunchOptions:
		s.LaunchOptions = string(n.Str)
	case fieldIsHidden:
		s.IsHidden = Flag(n.Int)
	case fieldAllowDesktopConfig:
		s.AllowDesktopConfig = Flag(n.Int)
	case fieldAllowOverlay:
		s.AllowOverlay = Flag(n.Int)
	case fieldOpenVR:
		s.OpenVR = Flag(n.Int)
	case fieldDevkit:
		s.Devkit = Flag(n.Int)
	case fieldDevkitGameID:
		s.DevkitGameID = string(n.Str)
	case fieldDevkitOverrideAppID:
		s.DevkitOverrideAppID = n.Int
	case fieldLastPlayTime:
		s.LastPlayTime = n.Int
	case fieldFlatpakAppID:
		s.FlatpakAppID = string(n.Str)
	case fieldTags:
		s.Tags = make([]string, 0, len(n.Children))
		s.tagKeys = make([][]byte, 0, len(n.Children))
		for _, c := range n.Children {
			s.Tags = append(s.Tags, string(c.Str))
			s.tagKeys = append(s.tagKeys, c.Key)
		}
	}
}

func (s *Shortcut) appendField(dst []byte, spec fieldSpec, key []byte) []byte {
	dst = appendHeader(dst, spec.tag, key)
	switch spec.id {
	case fieldAppID:
		return binary.LittleEndian.AppendUint32(dst, s.AppID)
	case fieldAppName:
		return appendCString(dst, []byte(s.AppName))
	case fieldExe:
		return appendCString(dst, []byte(s.Exe))
	case fieldStartDir:
		return appendCString(dst, []byte(s.StartDir))
	case fieldIcon:
		return appendCString(dst, []byte(s.Icon))
	case fieldShortcutPath:
		return appendCString(dst, []byte(s.ShortcutPath))
	case fieldLaunchOptions:
		return appendCString(dst, []byte(s.LaunchOptions))
	case fieldIsHidden:
		return appendInt32(dst, int32(s.IsHidden))
	case fieldAllowDesktopConfig:
		return appendInt32(dst, int32(s.AllowDesktopConfig))
	case fieldAllowOverlay:
		return appendInt32(dst, int32(s.AllowOverlay))
	case fieldOpenVR:
		return appendInt32(dst, int32(s.OpenVR))
	case fieldDevkit:
		return appendInt32(dst, int32(s.Devkit))
	case fieldDevkitGameID:
		return appendCString(dst, []byte(s.DevkitGameID))
	case fieldDevkitOverrideAppID:
		return appendInt32(dst, s.DevkitOverrideAppID)
	case fieldLastPlayTime:
		return appendInt32(dst, s.LastPlayTime)
	case fieldFlatpakAppID:
		return appendCString(dst, []byte(s.FlatpakAppID))
	case fieldTags:
		for i, t := range s.Tags {
			dst = appendHeader(dst, TagString, s.tagKey(i))
			dst = appendCString(dst, []byte(t))
		}
		return append(dst, byte(TagEnd))
	}
	return dst
}

func (s *Shortcut) tagKey(i int) []byte {
	if len(s.tagKeys) == len(s.Tags) {
		return s.tagKeys[i]
	}
	return []byte(strconv.Itoa(i))
}

func appendInt32(dst []byte, v int32) []byte {
	return binary.LittleEndian.AppendUint32(dst, uint32(v))
}
