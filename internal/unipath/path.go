// Package unipath resolves a file path across native Windows, a Unix host
// running the compiler under Wine, and a Windows host delegating to WSL.
//
// A Path records the raw string together with its detected kind and the
// environment it was observed in. InvocationPath gives the string to pass on
// the compiler's command line; LocalPath gives the string the calling process
// uses to open the same file. Call IsValid before using either result for
// file or process operations.
package unipath

import (
	"fmt"
	"strings"

	"github.com/rjdinis/mqlpath/internal/types"
	"github.com/rjdinis/mqlpath/pkg/utils"
)

const (
	// DefaultWinePrefix is the Wine prefix directory under the user's home.
	DefaultWinePrefix = ".wine"
	// SubsystemMarker is the UNC host name WSL distributions are served under.
	SubsystemMarker = "wsl$"
)

// Options describe the environment a path is observed in.
type Options struct {
	// WinePath marks the path as addressing Wine's own file system view.
	WinePath bool
	Host     types.HostEnvironment
	// WSL is true when execution is delegated into WSL.
	WSL     bool
	Context Context
	// WinePrefix defaults to DefaultWinePrefix.
	WinePrefix string
}

// Path is an immutable path value. The zero value is the empty path.
type Path struct {
	raw    string
	kind   types.PathKind
	wine   bool
	host   types.HostEnvironment
	wsl    bool
	ctx    Context
	prefix string
}

// Detect classifies raw. Empty input is always KindUnknown.
func Detect(raw string, wine bool) types.PathKind {
	if raw == "" {
		return types.KindUnknown
	}
	if wine || driveLetterPattern.MatchString(raw) {
		return types.KindWindows
	}
	if strings.HasPrefix(raw, "/") {
		return types.KindUnix
	}
	return types.KindUnknown
}

// New builds a Path without failing. Unclassifiable input yields a Path
// whose IsValid reports false.
func New(raw string, opts Options) Path {
	kind := Detect(raw, opts.WinePath)

	switch kind {
	case types.KindWindows:
		raw = utils.Backslashize(raw)
	case types.KindUnix:
		raw = utils.Slashize(raw)
	}

	prefix := opts.WinePrefix
	if prefix == "" {
		prefix = DefaultWinePrefix
	}

	return Path{
		raw:    raw,
		kind:   kind,
		wine:   opts.WinePath && kind == types.KindWindows,
		host:   opts.Host,
		wsl:    opts.WSL,
		ctx:    opts.Context,
		prefix: prefix,
	}
}

// Parse is New with stricter input handling: a WSL UNC path is read as the
// Unix path inside its distribution, and unclassifiable input is an error.
func Parse(raw string, opts Options) (Path, error) {
	if m, ok := MatchWSLUNC(raw); ok {
		opts.WinePath = false
		return New(m.Unix, opts), nil
	}

	p := New(raw, opts)
	if p.kind == types.KindUnknown && p.raw != "" {
		return p, &types.PathError{
			Op:   "parse",
			Path: raw,
			Err:  types.ErrUnknownPathKind,
			Help: `Use an absolute path such as C:\MQL5\Experts\ea.mq5 or /home/user/ea.mq5.`,
		}
	}
	return p, nil
}

func (p Path) Raw() string                 { return p.raw }
func (p Path) Kind() types.PathKind        { return p.kind }
func (p Path) IsWinePath() bool            { return p.wine }
func (p Path) Host() types.HostEnvironment { return p.host }
func (p Path) IsWSL() bool                 { return p.wsl }
func (p Path) WinePrefix() string          { return p.prefix }

// IsValid reports whether the path can be resolved in its environment.
func (p Path) IsValid() bool {
	if p.raw == "" {
		return true
	}

	if p.kind == types.KindUnknown {
		return false
	}

	// On Unix, a Windows path only makes sense inside Wine or under WSL.
	if p.kind == types.KindWindows && p.host == types.HostUnixLike && !p.wine && !p.wsl {
		return false
	}

	// A Wine prefix path cannot be reached from Windows without WSL.
	if p.kind == types.KindUnix && p.host == types.HostNativeWindows && !p.wsl {
		if _, ok := MatchDosDevices(p.raw); ok {
			return false
		}
	}

	return true
}

// WithExtension returns a copy whose file name has its final extension
// replaced by ext. Directory segments are left alone, and a path with no
// file name is returned as is.
func (p Path) WithExtension(ext string) Path {
	if p.raw == "" {
		return p
	}

	dir, name := "", p.raw
	if i := strings.LastIndexAny(p.raw, `/\`); i >= 0 {
		dir, name = p.raw[:i+1], p.raw[i+1:]
	}

	if name == "" {
		return p
	}

	if dot := strings.LastIndex(name, "."); dot > 0 {
		name = name[:dot]
	}
	if ext = strings.TrimPrefix(ext, "."); ext != "" {
		name += "." + ext
	}

	q := p
	q.raw = dir + name
	return q
}

// LogPath is the compiler log file that accompanies a source file.
func LogPath(p Path) Path {
	return p.WithExtension("log")
}

// MatchesDocument reports whether the local path of p names doc. Windows
// style paths compare case-insensitively.
func (p Path) MatchesDocument(doc string) (bool, error) {
	local, err := p.LocalPath()
	if err != nil {
		return false, err
	}
	caseInsensitive := driveLetterPattern.MatchString(local) || wslUNCPattern.MatchString(local)
	return utils.SameFile(local, doc, caseInsensitive), nil
}

func (p Path) String() string {
	var b strings.Builder
	if p.wsl {
		b.WriteString("[WSL-Mode] ")
	}
	fmt.Fprintf(&b, "[%s-path] [%s-host] ", p.kind, p.host)
	if p.wine {
		b.WriteString("[Inside-Wine] ")
	} else {
		b.WriteString("[Outside-Wine] ")
	}
	fmt.Fprintf(&b, "%q", p.raw)
	return b.String()
}
