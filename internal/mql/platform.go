// Package mql picks the MetaTrader platform a source file belongs to and the
// Wine launcher that runs its compiler.
package mql

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/rjdinis/mqlpath/internal/types"
)

var (
	ErrUnsupportedFile     = errors.New("unsupported source file")
	ErrUnsupportedPlatform = errors.New("unsupported platform version")
	ErrWineNotInstalled    = errors.New("wine is not installed")
)

// Platform versions.
const (
	MQL4 = 4
	MQL5 = 5
)

// WineProbe reports which Wine launchers are installed.
type WineProbe interface {
	HasWine() bool
	HasWine64() bool
}

// DetectPlatformVersion returns 4 or 5 for an MQL source file. Headers
// belong to MQL4 only when the workspace name says so.
func DetectPlatformVersion(file, workspace string) (int, error) {
	switch strings.ToLower(filepath.Ext(strings.ReplaceAll(file, `\`, "/"))) {
	case ".mq4":
		return MQL4, nil
	case ".mq5":
		return MQL5, nil
	case ".mqh":
		if strings.Contains(workspace, "MQL4") {
			return MQL4, nil
		}
		return MQL5, nil
	}
	return 0, fmt.Errorf("%w: %q (want .mq4, .mq5 or .mqh)", ErrUnsupportedFile, file)
}

// MetaEditorExecutable returns the compiler binary name for a platform version.
func MetaEditorExecutable(version int) (string, error) {
	switch version {
	case MQL4:
		return "metaeditor.exe", nil
	case MQL5:
		return "metaeditor64.exe", nil
	}
	return "", fmt.Errorf("%w: %d", ErrUnsupportedPlatform, version)
}

// WineExecutable returns the launcher for a platform version: wine for the
// 32-bit MetaTrader 4, wine64 for MetaTrader 5.
func WineExecutable(version int, probe WineProbe) (string, error) {
	switch version {
	case MQL4:
		if probe.HasWine() {
			return "wine", nil
		}
		return "", fmt.Errorf("%w: 32-bit platform needs wine", ErrWineNotInstalled)
	case MQL5:
		if probe.HasWine64() {
			return "wine64", nil
		}
		return "", fmt.Errorf("%w: 64-bit platform needs wine64", ErrWineNotInstalled)
	}
	return "", fmt.Errorf("%w: %d", ErrUnsupportedPlatform, version)
}

// NeedsWine reports whether the compiler runs under Wine: always on a Unix
// host, and on Windows only when commands pass through WSL.
func NeedsWine(host types.HostEnvironment, wsl bool) bool {
	return host != types.HostNativeWindows || wsl
}

// CompilerCommand prefixes the compiler command line with the Wine launcher
// when a Windows host passes commands through WSL. Elsewhere the command is
// returned unchanged.
func CompilerCommand(version int, probe WineProbe, host types.HostEnvironment, wsl bool, command []string) ([]string, error) {
	if host != types.HostNativeWindows || !wsl {
		return command, nil
	}
	exe, err := WineExecutable(version, probe)
	if err != nil {
		return nil, err
	}
	return append([]string{exe}, command...), nil
}
