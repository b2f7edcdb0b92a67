package util

import (
	"path"
	"strings"
)

// SanitizeBaseName reduces a user-supplied file name to its base name
// component, stripping any directory segments (forward or backward slashes)
// so the result can never escape the destination directory.
func SanitizeBaseName(name string) string {
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "\\", "/")
	s = path.Base(s)
	if s == "." || s == ".." || s == "/" {
		return ""
	}
	return s
}

// ResolveFileName derives the final stored name from the user-supplied
// desired name and the original upload's file name. The desired name is
// reduced to a base name first. A desired name without an extension gains
// the original's extension; a desired name with a different extension is
// silently overridden by the original's. The original extension always wins.
// An empty desired name falls back to the sanitized original name.
func ResolveFileName(desired, original string) string {
	origBase := SanitizeBaseName(original)
	origExt := path.Ext(origBase)

	name := SanitizeBaseName(desired)
	if name == "" {
		return origBase
	}

	ext := path.Ext(name)
	if origExt == "" {
		return name
	}
	if ext == "" {
		return name + origExt
	}
	if ext != origExt {
		return strings.TrimSuffix(name, ext) + origExt
	}
	return name
}
