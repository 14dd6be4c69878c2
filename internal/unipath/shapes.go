package unipath

import (
	"regexp"
	"strings"

	"github.com/rjdinis/mqlpath/pkg/utils"
)

var (
	// C:\... or C:/...
	driveLetterPattern = regexp.MustCompile(`^([A-Za-z]):[\\/]`)
	// /mnt/c/...
	wslMountPattern = regexp.MustCompile(`^/mnt/([A-Za-z])/`)
	// /home/<user>/.<layer>/dosdevices/c:/...
	dosDevicesPattern = regexp.MustCompile(`^/home/([^/]+)/(\.[^/]+)/dosdevices/([A-Za-z]):/`)
	// \\wsl$\<distro>\... or \\wsl.localhost\<distro>\...
	wslUNCPattern = regexp.MustCompile(`(?i)^\\\\(wsl\$|wsl\.localhost)\\([^\\]+)(\\.*)?$`)
	// C:\users\<name>\... inside a Wine prefix
	wineUserPattern = regexp.MustCompile(`(?i)^[A-Z]:\\users\\([^\\]+)\\`)
)

// DriveMatch is a path split into its drive letter and the remainder after
// the first separator.
type DriveMatch struct {
	Letter string
	Rest   string
}

// Upper returns the drive-letter form with an upper-case letter: C:\rest.
func (m DriveMatch) Upper() string {
	return strings.ToUpper(m.Letter) + `:\` + utils.Backslashize(m.Rest)
}

// VirtualMount returns the Wine virtual-root form: Z:\mnt\c\rest.
func (m DriveMatch) VirtualMount() string {
	return `Z:\mnt\` + strings.ToLower(m.Letter) + `\` + utils.Backslashize(m.Rest)
}

// WSLMount returns the subsystem mount form: /mnt/c/rest.
func (m DriveMatch) WSLMount() string {
	return "/mnt/" + strings.ToLower(m.Letter) + "/" + utils.Slashize(m.Rest)
}

// DosDevicesMatch is a Wine-exposed path split into its parts.
type DosDevicesMatch struct {
	User   string
	Prefix string
	DriveMatch
}

// UNCMatch is a subsystem UNC path split into distribution and the Unix
// path inside it.
type UNCMatch struct {
	Marker string
	Distro string
	Unix   string
}

// MatchDriveLetter recognizes C:\... and C:/... paths.
func MatchDriveLetter(path string) (DriveMatch, bool) {
	m := driveLetterPattern.FindStringSubmatch(path)
	if m == nil {
		return DriveMatch{}, false
	}
	return DriveMatch{Letter: m[1], Rest: path[len(m[0]):]}, true
}

// MatchWSLMount recognizes /mnt/<letter>/... paths.
func MatchWSLMount(path string) (DriveMatch, bool) {
	m := wslMountPattern.FindStringSubmatch(path)
	if m == nil {
		return DriveMatch{}, false
	}
	return DriveMatch{Letter: m[1], Rest: path[len(m[0]):]}, true
}

// MatchDosDevices recognizes /home/<user>/.<layer>/dosdevices/<letter>:/... paths.
func MatchDosDevices(path string) (DosDevicesMatch, bool) {
	m := dosDevicesPattern.FindStringSubmatch(path)
	if m == nil {
		return DosDevicesMatch{}, false
	}
	return DosDevicesMatch{
		User:       m[1],
		Prefix:     m[2],
		DriveMatch: DriveMatch{Letter: m[3], Rest: path[len(m[0]):]},
	}, true
}

// MatchWSLUNC recognizes \\wsl$\<distro>\... paths.
func MatchWSLUNC(path string) (UNCMatch, bool) {
	m := wslUNCPattern.FindStringSubmatch(path)
	if m == nil {
		return UNCMatch{}, false
	}
	unix := utils.Slashize(m[3])
	if unix == "" {
		unix = "/"
	}
	return UNCMatch{Marker: m[1], Distro: m[2], Unix: unix}, true
}

// IsWSLUNCHomePath reports whether path is a subsystem UNC path below
// \home\<user>\, the shape produced for files inside a distribution.
func IsWSLUNCHomePath(path string) bool {
	m, ok := MatchWSLUNC(path)
	if !ok {
		return false
	}
	parts := strings.SplitN(strings.TrimPrefix(m.Unix, "/"), "/", 3)
	return len(parts) >= 3 && parts[0] == "home" && parts[1] != ""
}

// wineUser returns the user segment of a Wine C:\users\<name>\ path.
func wineUser(path string) (string, bool) {
	m := wineUserPattern.FindStringSubmatch(path)
	if m == nil || strings.EqualFold(m[1], "public") {
		return "", false
	}
	return m[1], true
}

// Shape names the recognized shape of a raw path, for display.
func Shape(path string) string {
	switch {
	case path == "":
		return "empty"
	case driveLetterPattern.MatchString(path):
		return "drive-letter"
	case IsWSLUNCHomePath(path):
		return "wsl-unc"
	case wslUNCPattern.MatchString(path):
		return "unc"
	}
	unix := utils.Slashize(path)
	switch {
	case wslMountPattern.MatchString(unix):
		return "wsl-mount"
	case dosDevicesPattern.MatchString(unix):
		return "wine-dosdevices"
	case strings.HasPrefix(unix, "/"):
		return "unix"
	}
	return "unknown"
}
