package unipath

import (
	"fmt"
	"strings"

	"github.com/rjdinis/mqlpath/internal/types"
	"github.com/rjdinis/mqlpath/pkg/utils"
)

const (
	opInvocation = "invocation path"
	opLocal      = "local path"
)

// InvocationPath returns the Windows-style path the compiler accepts on its
// command line, addressed the way Wine sees it when Wine is involved.
func (p Path) InvocationPath() (string, error) {
	switch s := p.Space(); s {
	case SpaceEmpty:
		return "", nil

	case SpaceUnknown:
		return "", p.unknownKind(opInvocation)

	case SpaceWineNative, SpaceWineViaWSL, SpaceWineUnix:
		// Already inside Wine.
		return p.raw, nil

	case SpaceWindowsNative:
		return p.raw, nil

	case SpaceWindowsViaWSL, SpaceWindowsInWSL, SpaceWindowsUnix:
		// The host drive is reachable from Wine through Z:\mnt\<letter>.
		if m, ok := MatchDriveLetter(p.raw); ok {
			return m.VirtualMount(), nil
		}
		return p.raw, nil

	case SpaceUnixViaWSL, SpaceUnixInWSL:
		return p.wineView(), nil

	case SpaceUnixHost:
		if m, ok := MatchDosDevices(p.raw); ok {
			return m.Upper(), nil
		}
		if m, ok := MatchWSLMount(p.raw); ok {
			return m.VirtualMount(), nil
		}
		return p.raw, nil

	case SpaceUnixOnWindows:
		// A /mnt/<letter> path left over from WSL mode still names a host drive.
		if m, ok := MatchWSLMount(p.raw); ok {
			return m.Upper(), nil
		}
		return "", p.unconvertible(opInvocation)

	default:
		return "", fmt.Errorf("%s: unhandled path space %v", opInvocation, s)
	}
}

// LocalPath returns the path the calling process uses for its own file I/O.
func (p Path) LocalPath() (string, error) {
	switch s := p.Space(); s {
	case SpaceEmpty:
		return "", nil

	case SpaceUnknown:
		return "", p.unknownKind(opLocal)

	case SpaceWindowsNative, SpaceWineNative:
		return p.raw, nil

	case SpaceWindowsViaWSL:
		// WSL mounts the host file system transparently.
		return utils.Backslashize(p.raw), nil

	case SpaceWineViaWSL:
		m, ok := MatchDriveLetter(p.raw)
		if !ok {
			return "", p.unconvertible(opLocal)
		}
		distro, err := p.distro()
		if err != nil {
			return "", err
		}
		user, err := p.wineUser()
		if err != nil {
			return "", err
		}
		unix := p.dosDevicesPath(user, m)
		return `\\` + SubsystemMarker + `\` + distro + utils.Backslashize(unix), nil

	case SpaceWineUnix:
		m, ok := MatchDriveLetter(p.raw)
		if !ok {
			return "", p.unconvertible(opLocal)
		}
		user, err := p.prefixOwner()
		if err != nil {
			return "", err
		}
		return p.dosDevicesPath(user, m), nil

	case SpaceWindowsInWSL:
		return utils.ConvertWindowsToWSLPath(p.raw), nil

	case SpaceWindowsUnix:
		// Best effort: read the path as Wine's view of the host, so Z: is
		// the Unix root and other drives sit under /mnt.
		if m, ok := MatchDriveLetter(p.raw); ok && strings.EqualFold(m.Letter, "z") {
			return "/" + utils.Slashize(m.Rest), nil
		}
		return utils.ConvertWindowsToWSLPath(p.raw), nil

	case SpaceUnixOnWindows:
		if m, ok := MatchWSLMount(p.raw); ok {
			return m.Upper(), nil
		}
		return "", p.unconvertible(opLocal)

	case SpaceUnixViaWSL:
		if _, ok := MatchWSLMount(p.raw); ok {
			return p.raw, nil
		}
		distro, err := p.distro()
		if err != nil {
			return "", err
		}
		return `\\` + SubsystemMarker + `\` + distro + utils.Backslashize(p.raw), nil

	case SpaceUnixInWSL, SpaceUnixHost:
		return p.raw, nil

	default:
		return "", fmt.Errorf("%s: unhandled path space %v", opLocal, s)
	}
}

// wineView maps a Unix path seen from WSL or a Unix host to Wine's drives.
func (p Path) wineView() string {
	if m, ok := MatchDosDevices(p.raw); ok {
		return m.Upper()
	}
	if m, ok := MatchWSLMount(p.raw); ok {
		return m.VirtualMount()
	}
	return "Z:" + utils.Backslashize(p.raw)
}

// dosDevicesPath builds /home/<user>/<prefix>/dosdevices/<letter>:/<rest>.
func (p Path) dosDevicesPath(user string, m DriveMatch) string {
	return "/home/" + user + "/" + p.prefix + "/dosdevices/" +
		strings.ToLower(m.Letter) + ":/" + utils.Slashize(m.Rest)
}

func (p Path) wineUser() (string, error) {
	if user, ok := wineUser(p.raw); ok {
		return user, nil
	}
	if p.ctx == nil {
		return "", p.contextError("user name", types.ErrContextUnavailable)
	}
	user, err := p.ctx.UserName()
	if err != nil {
		return "", p.contextError("user name", err)
	}
	return user, nil
}

// prefixOwner asks the Context for the prefix owner. The C:\users\<name>
// segment only stands in when the lookup cannot run.
func (p Path) prefixOwner() (string, error) {
	err := types.ErrContextUnavailable
	if p.ctx != nil {
		var user string
		if user, err = p.ctx.UserName(); err == nil {
			return user, nil
		}
	}
	if user, ok := wineUser(p.raw); ok {
		return user, nil
	}
	return "", p.contextError("user name", err)
}

func (p Path) distro() (string, error) {
	if p.ctx == nil {
		return "", p.contextError("WSL distribution", types.ErrContextUnavailable)
	}
	distro, err := p.ctx.DistroName()
	if err != nil {
		return "", p.contextError("WSL distribution", err)
	}
	return distro, nil
}

func (p Path) contextError(what string, err error) error {
	if !types.IsContextUnavailable(err) {
		err = fmt.Errorf("%w: %v", types.ErrContextUnavailable, err)
	}
	return &types.PathError{
		Op:   opLocal,
		Path: p.raw,
		Err:  fmt.Errorf("%s: %w", what, err),
		Help: "Set --user/--distro (MQLPATH_WINE_USER, MQLPATH_WSL_DISTRO) if the lookup cannot run here.",
	}
}

func (p Path) unknownKind(op string) error {
	return &types.PathError{Op: op, Path: p.raw, Err: types.ErrUnknownPathKind}
}

func (p Path) unconvertible(op string) error {
	return &types.PathError{
		Op:   op,
		Path: p.raw,
		Err:  types.ErrUnconvertiblePath,
		Help: types.HelpUnconvertible,
	}
}
