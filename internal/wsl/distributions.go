package wsl

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"
)

// ListDistributions returns the installed WSL distributions, default first.
// wsl.exe is always run on the host; it is reachable from inside WSL
// through interop as well.
func (c *Client) ListDistributions() ([]string, error) {
	out, err := c.RunHost(WSLExecutable, "--list", "--quiet")
	if err != nil {
		return nil, fmt.Errorf("failed to list WSL distributions: %w", err)
	}

	names := parseDistributionNames(out)
	c.logger.Debug("Found %d WSL distributions", len(names))
	return names, nil
}

// parseDistributionNames extracts distribution names from `wsl.exe -l -q`
// output, one per line.
func parseDistributionNames(output string) []string {
	var names []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(strings.Trim(line, "\x00\r"))
		// Older builds ignore --quiet and print a header and "(Default)".
		if line == "" || strings.HasPrefix(line, "Windows Subsystem for Linux") {
			continue
		}
		line = strings.TrimSpace(strings.TrimSuffix(line, "(Default)"))
		names = append(names, line)
	}
	return names
}

// decodeOutput converts command output to a string. wsl.exe writes
// UTF-16LE; everything else is taken as UTF-8.
func decodeOutput(b []byte) string {
	if !isUTF16LE(b) {
		return string(b)
	}

	decoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(decoded)
}

func isUTF16LE(b []byte) bool {
	if len(b) >= 2 && b[0] == 0xFF && b[1] == 0xFE {
		return true
	}
	if len(b) < 2 || len(b)%2 != 0 {
		return false
	}
	// ASCII text encoded as UTF-16LE has a zero in every odd byte.
	for i := 1; i < len(b); i += 2 {
		if b[i] != 0 {
			return false
		}
	}
	return true
}
