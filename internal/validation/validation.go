// Package validation provides input validation functions for mqlpath.
package validation

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrEmptyInput       = errors.New("input is empty")
	ErrControlChars     = errors.New("input contains control characters")
	ErrPathTooLong      = errors.New("path exceeds maximum length")
	ErrInvalidExtension = errors.New("invalid file extension")
	ErrInvalidDistro    = errors.New("invalid WSL distribution name")
	ErrInvalidUserName  = errors.New("invalid user name")
	ErrInvalidPrefix    = errors.New("invalid Wine prefix directory")
	ErrInvalidOutput    = errors.New("invalid output format")
	ErrInvalidHost      = errors.New("invalid host environment")
)

var (
	extensionPattern = regexp.MustCompile(`^\.?[A-Za-z0-9_-]{1,16}$`)
	distroPattern    = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,63}$`)
	userNamePattern  = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9._-]{0,31}\$?$`)
	prefixPattern    = regexp.MustCompile(`^[A-Za-z0-9._-]{1,64}$`)
)

var allowedOutputs = map[string]bool{
	"table": true, "json": true, "yaml": true, "toml": true,
}

var allowedHosts = map[string]bool{
	"auto": true, "windows": true, "win": true, "win32": true,
	"unix": true, "linux": true, "darwin": true,
}

// MaxPathLength is the longest path accepted from the command line.
const MaxPathLength = 4096

// ValidateRawPath checks a path given on the command line. Shell
// metacharacters are legal in file names and are not rejected.
func ValidateRawPath(path string) error {
	if path == "" {
		return ErrEmptyInput
	}
	if len(path) > MaxPathLength {
		return ErrPathTooLong
	}
	if hasControlChars(path) {
		return ErrControlChars
	}
	return nil
}

func ValidateExtension(ext string) error {
	if ext == "" {
		return ErrEmptyInput
	}
	if !extensionPattern.MatchString(ext) {
		return ErrInvalidExtension
	}
	return nil
}

func ValidateDistroName(name string) error {
	if name == "" {
		return ErrEmptyInput
	}
	if !distroPattern.MatchString(name) {
		return ErrInvalidDistro
	}
	return nil
}

func ValidateUserName(name string) error {
	if name == "" {
		return ErrEmptyInput
	}
	if !userNamePattern.MatchString(name) {
		return ErrInvalidUserName
	}
	return nil
}

// ValidateWinePrefix checks the prefix directory name under the user's home.
// It must be a single path component.
func ValidateWinePrefix(prefix string) error {
	if prefix == "" {
		return ErrEmptyInput
	}
	if prefix == "." || prefix == ".." || !prefixPattern.MatchString(prefix) {
		return ErrInvalidPrefix
	}
	return nil
}

func ValidateOutputFormat(format string) error {
	if format == "" {
		return ErrEmptyInput
	}
	if !allowedOutputs[strings.ToLower(format)] {
		return ErrInvalidOutput
	}
	return nil
}

func ValidateHost(host string) error {
	if host == "" {
		return ErrEmptyInput
	}
	if !allowedHosts[strings.ToLower(host)] {
		return ErrInvalidHost
	}
	return nil
}

func SanitizeString(input string) string {
	var result strings.Builder
	for _, r := range input {
		if r >= 32 && r != 127 {
			result.WriteRune(r)
		}
	}
	return result.String()
}

func hasControlChars(s string) bool {
	for _, r := range s {
		if r < 32 || r == 127 {
			return true
		}
	}
	return false
}
