package utils

import "testing"

func TestSlashize(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"empty", "", ""},
		{"backslashes", `C:\devel\test.mq5`, "C:/devel/test.mq5"},
		{"already slashed", "/home/devel/test.mq5", "/home/devel/test.mq5"},
		{"mixed", `C:/devel\sub/test.mq5`, "C:/devel/sub/test.mq5"},
		{"unc", `\\wsl$\Ubuntu\home`, "//wsl$/Ubuntu/home"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slashize(tt.path); got != tt.want {
				t.Errorf("Slashize(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestBackslashize(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"empty", "", ""},
		{"slashes", "C:/devel/test.mq5", `C:\devel\test.mq5`},
		{"already backslashed", `C:\devel\test.mq5`, `C:\devel\test.mq5`},
		{"mixed", `C:/devel\sub/test.mq5`, `C:\devel\sub\test.mq5`},
		{"unix", "/mnt/c/devel", `\mnt\c\devel`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Backslashize(tt.path); got != tt.want {
				t.Errorf("Backslashize(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestConvertWindowsToWSLPath(t *testing.T) {
	tests := []struct {
		name    string
		winPath string
		want    string
	}{
		{"empty", "", ""},
		{"simple C drive", "C:/devel/test.mq5", "/mnt/c/devel/test.mq5"},
		{"lowercase c", "c:/devel/test.mq5", "/mnt/c/devel/test.mq5"},
		{"D drive", "D:/MQL5/Experts/ea.mq5", "/mnt/d/MQL5/Experts/ea.mq5"},
		{"backslashes", "C:\\devel\\test.mq5", "/mnt/c/devel/test.mq5"},
		{"mixed slashes", "C:/devel\\sub/test.mq5", "/mnt/c/devel/sub/test.mq5"},
		{"with spaces", "C:/Program Files/MetaTrader 5/test.mq5", "/mnt/c/Program Files/MetaTrader 5/test.mq5"},
		{"drive root", "C:\\", "/mnt/c/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConvertWindowsToWSLPath(tt.winPath)
			if got != tt.want {
				t.Errorf("ConvertWindowsToWSLPath(%q) = %q, want %q", tt.winPath, got, tt.want)
			}
		})
	}
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"empty", "", ""},
		{"already normalized", "c:/devel/test.mq5", "c:/devel/test.mq5"},
		{"uppercase", "C:/DEVEL/TEST.MQ5", "c:/devel/test.mq5"},
		{"backslashes", "C:\\devel\\test.mq5", "c:/devel/test.mq5"},
		{"mixed", "C:/Devel\\Test/File.MQH", "c:/devel/test/file.mqh"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizePath(tt.path)
			if got != tt.want {
				t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestSameFile(t *testing.T) {
	tests := []struct {
		name            string
		a, b            string
		caseInsensitive bool
		want            bool
	}{
		{"identical", `C:\devel\test.mq5`, `C:\devel\test.mq5`, true, true},
		{"drive case", `c:\devel\test.mq5`, `C:\devel\test.mq5`, true, true},
		{"separators", `C:/devel/test.mq5`, `C:\devel\test.mq5`, true, true},
		{"different file", `C:\devel\a.mq5`, `C:\devel\b.mq5`, true, false},
		{"unix case sensitive", "/home/devel/Test.mq5", "/home/devel/test.mq5", false, false},
		{"unix identical", "/home/devel/test.mq5", "/home/devel/test.mq5", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SameFile(tt.a, tt.b, tt.caseInsensitive); got != tt.want {
				t.Errorf("SameFile(%q, %q, %v) = %v, want %v", tt.a, tt.b, tt.caseInsensitive, got, tt.want)
			}
		})
	}
}
