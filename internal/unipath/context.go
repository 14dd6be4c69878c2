package unipath

import (
	"github.com/rjdinis/mqlpath/internal/types"
)

// Context supplies the externally queried facts some conversions need.
// Implementations must be safe for concurrent use.
type Context interface {
	// UserName is the Unix user owning the Wine prefix.
	UserName() (string, error)
	// DistroName is the default WSL distribution.
	DistroName() (string, error)
}

// StaticContext is a Context with fixed values. An empty field reports
// ErrContextUnavailable.
type StaticContext struct {
	User   string
	Distro string
}

func (c StaticContext) UserName() (string, error) {
	if c.User == "" {
		return "", types.ErrContextUnavailable
	}
	return c.User, nil
}

func (c StaticContext) DistroName() (string, error) {
	if c.Distro == "" {
		return "", types.ErrContextUnavailable
	}
	return c.Distro, nil
}
