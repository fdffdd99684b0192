package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nozzle/mt19937"
	"github.com/nozzle/mt19937/quality"
)

func TestWriteDraws(t *testing.T) {
	tests := []struct {
		format string
		want   []string
	}{
		{"uint32", []string{"3499211612", "581869302", "3890346734"}},
		{"uint31", []string{"1749605806", "290934651", "1945173367"}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := writeDraws(&buf, mt19937.New(5489), tt.format, len(tt.want)); err != nil {
				t.Fatal(err)
			}
			got := strings.Fields(buf.String())
			if strings.Join(got, " ") != strings.Join(tt.want, " ") {
				t.Errorf("got %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestWriteDrawsFloat(t *testing.T) {
	var buf bytes.Buffer
	if err := writeDraws(&buf, mt19937.New(1234), "halfopen", 1); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(buf.String()); got != "0.19151945016346872" {
		t.Errorf("got %s, expected 0.19151945016346872", got)
	}

	for _, format := range []string{"closed", "open", "res53"} {
		buf.Reset()
		if err := writeDraws(&buf, mt19937.New(1), format, 4); err != nil {
			t.Errorf("%s: %v", format, err)
		}
		if n := len(strings.Fields(buf.String())); n != 4 {
			t.Errorf("%s: got %d lines, expected 4", format, n)
		}
	}

	if err := writeDraws(&buf, mt19937.New(1), "normal", 1); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestParseKeys(t *testing.T) {
	keys, err := parseKeys([]string{"0x123", "564", "0x345", "1110"})
	if err != nil {
		t.Fatal(err)
	}
	want := []uint32{0x123, 0x234, 0x345, 0x456}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("key %d: got %#x, expected %#x", i, keys[i], want[i])
		}
	}

	for _, bad := range []string{"", "x", "4294967296", "-1"} {
		if _, err := parseKeys([]string{bad}); err == nil {
			t.Errorf("parseKeys(%q): expected error", bad)
		}
	}
}

func TestDrawStateRoundTrip(t *testing.T) {
	dir := t.TempDir()
	state := filepath.Join(dir, "mt.state")

	var first bytes.Buffer
	rootCmd.SetOut(&first)
	rootCmd.SetArgs([]string{"draw", "--seed=5489", "--count=3", "--state-out=" + state})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if got := strings.Fields(first.String()); len(got) != 3 || got[0] != "3499211612" {
		t.Fatalf("first run: got %v", got)
	}

	data, err := os.ReadFile(state)
	if err != nil {
		t.Fatal(err)
	}
	g := mt19937.NewUnseeded()
	if err := g.UnmarshalBinary(data); err != nil {
		t.Fatal(err)
	}
	if g.Cursor() != 3 {
		t.Errorf("saved cursor: got %d, expected 3", g.Cursor())
	}

	var second bytes.Buffer
	rootCmd.SetOut(&second)
	rootCmd.SetArgs([]string{"draw", "--state-in=" + state, "--count=2"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(strings.Fields(second.String()), " "); got != "3586334585 545404204" {
		t.Errorf("resumed run: got %q, expected %q", got, "3586334585 545404204")
	}
}

func TestWriteReports(t *testing.T) {
	reports, err := quality.Battery([]uint32{1, 2}, quality.Config{Draws: 2000, Bins: 8, Significance: 0.001}, 1)
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := writeReports(&buf, reports); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, expected 3:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[1], "1 ") || !strings.HasPrefix(lines[2], "2 ") {
		t.Errorf("unexpected rows:\n%s", buf.String())
	}
}
