// Package file holds helpers for uploaded file names.
package file

import (
	"path"
	"strings"
)

// Ext returns the lowercased extension of an uploaded file name, dot
// included. Directory parts and a trailing dot yield no extension.
func Ext(name string) string {
	name = path.Base(strings.ReplaceAll(name, `\`, "/"))
	idx := strings.LastIndex(name, ".")
	if idx == -1 || idx == len(name)-1 {
		return ""
	}
	return strings.ToLower(name[idx:])
}

// HasExt reports whether name carries one of exts, ignoring case.
func HasExt(name string, exts ...string) bool {
	ext := Ext(name)
	if ext == "" {
		return false
	}
	for _, e := range exts {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}
