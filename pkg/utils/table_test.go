package utils

import (
	"bytes"
	"strings"
	"testing"
)

func TestKeyValueTable(t *testing.T) {
	var buf bytes.Buffer
	pairs := [][2]string{
		{"Kind", "windows"},
		{"Invocation", `Z:\mnt\c\Users\trader\Experts\EA.mq5`},
	}
	KeyValueTable(&buf, "Path", pairs, 12, 0)

	out := buf.String()
	if !strings.Contains(out, "Path") {
		t.Errorf("missing title:\n%s", out)
	}
	if !strings.Contains(out, "  Kind        : windows\n") {
		t.Errorf("key not padded:\n%s", out)
	}
	if !strings.Contains(out, `Z:\mnt\c\Users\trader\Experts\EA.mq5`) {
		t.Errorf("value truncated with valWidth 0:\n%s", out)
	}
}

func TestKeyValueTableTruncates(t *testing.T) {
	var buf bytes.Buffer
	KeyValueTable(&buf, "", [][2]string{{"k", "abcdefghij"}}, 1, 6)

	if got, want := buf.String(), "  k: abcd..\n"; got != want {
		t.Errorf("KeyValueTable() = %q, want %q", got, want)
	}
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	widths := []int{6, 4}
	PrintTableHeader(&buf, widths, []string{"NAME", "DEF"})
	PrintTableRow(&buf, widths, "Ubuntu", "*")
	PrintTableRow(&buf, widths, "Debian-12", "")
	PrintTableFooter(&buf, widths)

	want := strings.Join([]string{
		"+--------+------+",
		"| NAME   | DEF  |",
		"+--------+------+",
		"| Ubuntu | *    |",
		"| Debi.. |      |",
		"+--------+------+",
		"",
	}, "\n")
	if got := buf.String(); got != want {
		t.Errorf("table mismatch\ngot:\n%s\nwant:\n%s", got, want)
	}
}
