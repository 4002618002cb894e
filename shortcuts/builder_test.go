package shortcuts

import "encoding/binary"

// Small helpers to assemble raw record files field by field.

func str(key, val string) []byte {
	b := []byte{byte(TagString)}
	b = append(b, key...)
	b = append(b, 0)
	b = append(b, val...)
	return append(b, 0)
}

func i32(key string, v int32) []byte {
	b := []byte{byte(TagInt32)}
	b = append(b, key...)
	b = append(b, 0)
	return binary.LittleEndian.AppendUint32(b, uint32(v))
}

func nested(key string, fields ...[]byte) []byte {
	b := []byte{byte(TagNested)}
	b = append(b, key...)
	b = append(b, 0)
	for _, f := range fields {
		b = append(b, f...)
	}
	return append(b, byte(TagEnd))
}

func file(entries ...[]byte) []byte {
	b := nested(DefaultContainerKey, entries...)
	return append(b, byte(TagEnd))
}

func entry(index string, name, exe string, hidden int32, extra ...[]byte) []byte {
	fields := [][]byte{
		i32("appid", -1234567),
		str("AppName", name),
		str("Exe", exe),
		str("StartDir", `"C:\games\"`),
		str("icon", ""),
		str("ShortcutPath", ""),
		str("LaunchOptions", ""),
		i32("IsHidden", hidden),
		i32("AllowDesktopConfig", 1),
		i32("AllowOverlay", 1),
		i32("OpenVR", 0),
		i32("Devkit", 0),
		str("DevkitGameID", ""),
		i32("DevkitOverrideAppID", 0),
		i32("LastPlayTime", 1700000000),
		str("FlatpakAppID", ""),
	}
	fields = append(fields, extra...)
	return nested(index, fields...)
}
