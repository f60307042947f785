package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestGetInfo(t *testing.T) {
	origVersion, origCommit, origDate := Version, Commit, Date
	Version, Commit, Date = "1.2.0", "abc123def456", "2026-01-01T12:00:00Z"
	defer func() {
		Version, Commit, Date = origVersion, origCommit, origDate
	}()

	info := GetInfo()

	if info.Version != "1.2.0" {
		t.Errorf("Version = %q, want 1.2.0", info.Version)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q, want %q", info.GoVersion, runtime.Version())
	}
	if !strings.Contains(info.Platform, "/") {
		t.Errorf("Platform = %q, want os/arch", info.Platform)
	}
}

func TestStringShortensCommit(t *testing.T) {
	info := Info{
		Version:   "1.2.0",
		Commit:    "abc123def456789",
		Date:      "2026-01-01",
		GoVersion: "go1.24",
		Platform:  "linux/amd64",
	}

	s := info.String()
	if !strings.Contains(s, "abc123de") {
		t.Errorf("String() = %q, want shortened commit", s)
	}
	if strings.Contains(s, "abc123def456789") {
		t.Errorf("String() = %q, commit not shortened", s)
	}
	if !strings.HasPrefix(s, "dataroom ") {
		t.Errorf("String() = %q, want dataroom prefix", s)
	}
}

func TestShort(t *testing.T) {
	if got := (Info{Version: "2.0.0"}).Short(); got != "2.0.0" {
		t.Errorf("Short() = %q, want 2.0.0", got)
	}
}
