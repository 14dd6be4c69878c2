// Package utils provides utility functions.
package utils

import "strings"

// Slashize converts every backslash to a forward slash
func Slashize(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}

// Backslashize converts every forward slash to a backslash
func Backslashize(path string) string {
	return strings.ReplaceAll(path, "/", "\\")
}

// ConvertWindowsToWSLPath converts a Windows path to WSL path
// C:/path/to/file -> /mnt/c/path/to/file
func ConvertWindowsToWSLPath(winPath string) string {
	if winPath == "" {
		return ""
	}

	path := Slashize(winPath)
	if len(path) >= 2 && path[1] == ':' {
		drive := strings.ToLower(string(path[0]))
		path = "/mnt/" + drive + path[2:]
	}
	return path
}

// NormalizePath normalizes a Windows path for case-insensitive comparison
func NormalizePath(path string) string {
	return strings.ToLower(Slashize(path))
}

// SameFile reports whether two local paths name the same file. Windows
// file systems are case-insensitive and accept both separators.
func SameFile(a, b string, caseInsensitive bool) bool {
	if caseInsensitive {
		return NormalizePath(a) == NormalizePath(b)
	}
	return Slashize(a) == Slashize(b)
}
