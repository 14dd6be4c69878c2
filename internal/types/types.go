// Package types contains shared types and error definitions for mqlpath.
package types

import (
	"errors"
	"fmt"
	"strings"
)

// PathKind is the style a raw path string was detected (or declared) as.
type PathKind int

const (
	KindUnknown PathKind = iota
	KindWindows
	KindUnix
)

func (k PathKind) String() string {
	switch k {
	case KindWindows:
		return "windows"
	case KindUnix:
		return "unix"
	default:
		return "unknown"
	}
}

// HostEnvironment is the operating system family the tool itself runs on.
type HostEnvironment int

const (
	HostUnixLike HostEnvironment = iota
	HostNativeWindows
)

func (h HostEnvironment) String() string {
	if h == HostNativeWindows {
		return "windows"
	}
	return "unix"
}

// HostFromGOOS maps a runtime.GOOS value to a HostEnvironment.
func HostFromGOOS(goos string) HostEnvironment {
	if goos == "windows" {
		return HostNativeWindows
	}
	return HostUnixLike
}

// ParseHost parses a host name as accepted on the command line.
// "auto" and "" resolve through HostFromGOOS(goos).
func ParseHost(name, goos string) (HostEnvironment, error) {
	switch strings.ToLower(name) {
	case "", "auto":
		return HostFromGOOS(goos), nil
	case "windows", "win", "win32":
		return HostNativeWindows, nil
	case "unix", "linux", "darwin":
		return HostUnixLike, nil
	}
	return HostUnixLike, fmt.Errorf("unknown host %q (want auto, windows or unix)", name)
}

// Sentinel errors for path resolution
var (
	ErrUnknownPathKind    = errors.New("could not detect path kind")
	ErrUnconvertiblePath  = errors.New("path cannot be converted in this environment")
	ErrContextUnavailable = errors.New("environment context unavailable")
)

// HelpUnconvertible is shown when a path has no mapping for the current environment.
const HelpUnconvertible = "Please provide a Windows path or enable WSL mode (--wsl or MQLPATH_WSL=1)."

// PathError represents a path resolution error with context
type PathError struct {
	Op   string
	Path string
	Err  error
	Help string
}

func (e *PathError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %q: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// IsUnknownPathKind checks if the error indicates an unclassifiable path
func IsUnknownPathKind(err error) bool {
	return errors.Is(err, ErrUnknownPathKind)
}

// IsUnconvertible checks if the error indicates a path with no mapping
func IsUnconvertible(err error) bool {
	return errors.Is(err, ErrUnconvertiblePath)
}

// IsContextUnavailable checks if the error comes from a failed context query
func IsContextUnavailable(err error) bool {
	return errors.Is(err, ErrContextUnavailable)
}

// NewPathError creates a new PathError
func NewPathError(op, path string, err error, help string) *PathError {
	return &PathError{Op: op, Path: path, Err: err, Help: help}
}
