package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateRawPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		// Valid paths
		{"windows backslash", `C:\Users\trader\Experts\EA.mq5`, nil},
		{"windows forward slash", "C:/Users/trader/Experts/EA.mq5", nil},
		{"unix", "/home/trader/mql/EA.mq5", nil},
		{"wsl mount", "/mnt/c/projects/EA.mq5", nil},
		{"dosdevices", "/home/trader/.wine/dosdevices/c:/EA.mq5", nil},
		{"wsl unc with dollar", `\\wsl$\Ubuntu\home\trader\EA.mq5`, nil},
		{"program files x86", `C:\Program Files (x86)\MetaTrader 5\MQL5\EA.mq5`, nil},
		{"relative", "EA.mq5", nil},
		{"unicode", "/home/trader/Désktop/EA.mq5", nil},

		// Invalid paths
		{"empty", "", ErrEmptyInput},
		{"newline", "C:\\EA\n.mq5", ErrControlChars},
		{"nul", "/home/a\x00b", ErrControlChars},
		{"delete", "/home/a\x7fb", ErrControlChars},
		{"too long", "/" + strings.Repeat("a", MaxPathLength), ErrPathTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRawPath(tt.path)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateRawPath(%q) error = %v, want %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestValidateExtension(t *testing.T) {
	tests := []struct {
		name    string
		ext     string
		wantErr bool
	}{
		{"with dot", ".log", false},
		{"without dot", "log", false},
		{"ex5", ".ex5", false},
		{"underscore", "bak_1", false},

		{"empty", "", true},
		{"only dot", ".", true},
		{"two dots", "..log", true},
		{"separator", "a/b", true},
		{"backslash", `a\b`, true},
		{"too long", strings.Repeat("x", 17), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExtension(tt.ext)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateExtension(%q) error = %v, wantErr %v", tt.ext, err, tt.wantErr)
			}
		})
	}
}

func TestValidateDistroName(t *testing.T) {
	tests := []struct {
		name    string
		distro  string
		wantErr bool
	}{
		{"ubuntu", "Ubuntu", false},
		{"versioned", "Ubuntu-22.04", false},
		{"underscore", "my_distro", false},

		{"empty", "", true},
		{"space", "Ubuntu 22", true},
		{"backslash", `Ubuntu\x`, true},
		{"leading dash", "-Ubuntu", true},
		{"dollar", "wsl$", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDistroName(tt.distro)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDistroName(%q) error = %v, wantErr %v", tt.distro, err, tt.wantErr)
			}
		})
	}
}

func TestValidateUserName(t *testing.T) {
	tests := []struct {
		name    string
		user    string
		wantErr bool
	}{
		{"simple", "trader", false},
		{"with digits", "user01", false},
		{"dotted", "john.doe", false},
		{"machine account", "host$", false},

		{"empty", "", true},
		{"leading digit", "1user", true},
		{"slash", "a/b", true},
		{"space", "john doe", true},
		{"too long", strings.Repeat("a", 33), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUserName(tt.user)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUserName(%q) error = %v, wantErr %v", tt.user, err, tt.wantErr)
			}
		})
	}
}

func TestValidateWinePrefix(t *testing.T) {
	tests := []struct {
		name    string
		prefix  string
		wantErr bool
	}{
		{"default", ".wine", false},
		{"custom", ".wine-mt5", false},
		{"visible", "wineprefix", false},

		{"empty", "", true},
		{"dot", ".", true},
		{"parent", "..", true},
		{"nested", ".wine/mt5", true},
		{"absolute", "/opt/wine", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateWinePrefix(tt.prefix)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateWinePrefix(%q) error = %v, wantErr %v", tt.prefix, err, tt.wantErr)
			}
		})
	}
}

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"table", false},
		{"json", false},
		{"YAML", false},
		{"toml", false},
		{"", true},
		{"xml", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestValidateHost(t *testing.T) {
	tests := []struct {
		host    string
		wantErr bool
	}{
		{"auto", false},
		{"windows", false},
		{"Linux", false},
		{"darwin", false},
		{"", true},
		{"amiga", true},
	}

	for _, tt := range tests {
		t.Run(tt.host, func(t *testing.T) {
			err := ValidateHost(tt.host)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateHost(%q) error = %v, wantErr %v", tt.host, err, tt.wantErr)
			}
		})
	}
}

func TestSanitizeString(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean", `C:\EA.mq5`, `C:\EA.mq5`},
		{"newline", "a\nb", "ab"},
		{"tab and bell", "a\tb\a", "ab"},
		{"delete", "a\x7fb", "ab"},
		{"unicode kept", "Désktop", "Désktop"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeString(tt.input); got != tt.want {
				t.Errorf("SanitizeString(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
