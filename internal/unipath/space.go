package unipath

import "github.com/rjdinis/mqlpath/internal/types"

// Space is the cross product of kind, Wine flag, host and WSL mode folded
// into the combinations the conversions distinguish.
type Space int

const (
	SpaceEmpty Space = iota
	SpaceUnknown
	SpaceWineNative    // Wine path, Windows host, WSL off
	SpaceWineViaWSL    // Wine path, Windows host, WSL on
	SpaceWineUnix      // Wine path, Unix host
	SpaceWindowsNative // Windows path, Windows host, WSL off
	SpaceWindowsViaWSL // Windows path, Windows host, WSL on
	SpaceWindowsInWSL  // Windows path, Unix host, WSL on
	SpaceWindowsUnix   // Windows path, Unix host, WSL off
	SpaceUnixOnWindows // Unix path, Windows host, WSL off
	SpaceUnixViaWSL    // Unix path, Windows host, WSL on
	SpaceUnixInWSL     // Unix path, Unix host, WSL on
	SpaceUnixHost      // Unix path, Unix host, WSL off
)

var spaceNames = map[Space]string{
	SpaceEmpty:         "empty",
	SpaceUnknown:       "unknown",
	SpaceWineNative:    "wine/windows-host",
	SpaceWineViaWSL:    "wine/windows-host/wsl",
	SpaceWineUnix:      "wine/unix-host",
	SpaceWindowsNative: "windows/windows-host",
	SpaceWindowsViaWSL: "windows/windows-host/wsl",
	SpaceWindowsInWSL:  "windows/unix-host/wsl",
	SpaceWindowsUnix:   "windows/unix-host",
	SpaceUnixOnWindows: "unix/windows-host",
	SpaceUnixViaWSL:    "unix/windows-host/wsl",
	SpaceUnixInWSL:     "unix/unix-host/wsl",
	SpaceUnixHost:      "unix/unix-host",
}

func (s Space) String() string {
	if name, ok := spaceNames[s]; ok {
		return name
	}
	return "invalid"
}

// Space reports which combination p belongs to.
func (p Path) Space() Space {
	if p.raw == "" {
		return SpaceEmpty
	}

	windowsHost := p.host == types.HostNativeWindows

	switch p.kind {
	case types.KindWindows:
		switch {
		case p.wine && windowsHost && p.wsl:
			return SpaceWineViaWSL
		case p.wine && windowsHost:
			return SpaceWineNative
		case p.wine:
			return SpaceWineUnix
		case windowsHost && p.wsl:
			return SpaceWindowsViaWSL
		case windowsHost:
			return SpaceWindowsNative
		case p.wsl:
			return SpaceWindowsInWSL
		default:
			return SpaceWindowsUnix
		}
	case types.KindUnix:
		switch {
		case windowsHost && p.wsl:
			return SpaceUnixViaWSL
		case windowsHost:
			return SpaceUnixOnWindows
		case p.wsl:
			return SpaceUnixInWSL
		default:
			return SpaceUnixHost
		}
	}
	return SpaceUnknown
}
