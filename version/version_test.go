package version

import (
	"runtime/debug"
	"strings"
	"testing"
)

func stubBuild(t *testing.T, version, commit, branch, buildTime string, bi *debug.BuildInfo) {
	t.Helper()
	origVersion, origCommit, origBranch, origBuildTime, origRead :=
		Version, GitCommit, GitBranch, BuildTime, readBuildInfo
	t.Cleanup(func() {
		Version, GitCommit, GitBranch, BuildTime, readBuildInfo =
			origVersion, origCommit, origBranch, origBuildTime, origRead
	})
	Version, GitCommit, GitBranch, BuildTime = version, commit, branch, buildTime
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, bi != nil }
}

func TestGetDefaults(t *testing.T) {
	stubBuild(t, "dev", "", "", "", nil)

	info := Get()
	if info.Version != "dev" {
		t.Errorf("expected version 'dev', got %q", info.Version)
	}
	if info.IsRelease {
		t.Error("dev should not be a release")
	}
	if !info.BuildDate.IsZero() {
		t.Error("BuildDate should be zero without build metadata")
	}
}

func TestGetWithLdflags(t *testing.T) {
	stubBuild(t, "1.0.0", "abc1234def", "main", "2024-01-15T10:30:00Z",
		&debug.BuildInfo{GoVersion: "go1.26.0"})

	info := Get()
	if !info.IsRelease {
		t.Error("1.0.0 should be a release")
	}
	if info.GitCommit != "abc1234" {
		t.Errorf("expected truncated commit 'abc1234', got %q", info.GitCommit)
	}
	if info.GoVersion != "go1.26.0" {
		t.Errorf("expected 'go1.26.0', got %q", info.GoVersion)
	}
	if info.BuildDate.Year() != 2024 {
		t.Errorf("expected build year 2024, got %d", info.BuildDate.Year())
	}
}

func TestGetFromBuildInfo(t *testing.T) {
	stubBuild(t, "dev", "", "", "", &debug.BuildInfo{
		GoVersion: "go1.26.0",
		Main:      debug.Module{Version: "v0.3.1"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef"},
			{Key: "vcs.modified", Value: "true"},
			{Key: "vcs.time", Value: "2025-06-01T12:00:00Z"},
		},
	})

	info := Get()
	if info.Version != "v0.3.1" {
		t.Errorf("expected module version, got %q", info.Version)
	}
	if info.GitCommit != "0123456" || !info.IsDirty {
		t.Errorf("unexpected vcs info: %+v", info)
	}
	if info.IsRelease {
		t.Error("dirty build should not be a release")
	}
	if info.BuildTime != "2025-06-01T12:00:00Z" {
		t.Errorf("expected vcs time, got %q", info.BuildTime)
	}
}

func TestGetIgnoresDevelModule(t *testing.T) {
	stubBuild(t, "dev", "", "", "", &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	if v := Get().Version; v != "dev" {
		t.Errorf("expected 'dev', got %q", v)
	}
}

func TestPrereleaseIsNotRelease(t *testing.T) {
	stubBuild(t, "1.0.0-rc.1", "", "", "", nil)
	if Get().IsRelease {
		t.Error("prerelease should not be a release")
	}
}

func TestResolve(t *testing.T) {
	stubBuild(t, "dev", "", "", "", nil)
	if got := Resolve("0.9.0"); got != "0.9.0" {
		t.Errorf("expected configured version, got %q", got)
	}
	if got := Resolve(""); got != "dev" {
		t.Errorf("expected 'dev', got %q", got)
	}

	stubBuild(t, "2.0.0", "", "", "", nil)
	if got := Resolve("0.9.0"); got != "2.0.0" {
		t.Errorf("build version should win, got %q", got)
	}
}

func TestShort(t *testing.T) {
	tests := []struct {
		info Info
		want string
	}{
		{Info{Version: "dev"}, "dev"},
		{Info{Version: "1.0.0", GitCommit: "abc1234"}, "1.0.0-abc1234"},
		{Info{Version: "1.0.0", GitCommit: "abc1234", IsDirty: true}, "1.0.0-abc1234-dirty"},
	}
	for _, tc := range tests {
		if got := tc.info.Short(); got != tc.want {
			t.Errorf("Short() = %q, want %q", got, tc.want)
		}
	}
}

func TestFull(t *testing.T) {
	stubBuild(t, "1.0.0", "abc1234", "main", "2024-01-15T10:30:00Z", nil)
	fv := Get().Full()
	if fv != "1.0.0-abc1234 (built 2024-01-15T10:30:00Z)" {
		t.Errorf("unexpected full version %q", fv)
	}

	stubBuild(t, "1.0.0", "abc1234", "feature/new-thing", "", nil)
	if fv := Get().Full(); !strings.Contains(fv, "feature/new-thing") {
		t.Errorf("expected full version to contain feature branch, got %q", fv)
	}
}

func TestFields(t *testing.T) {
	stubBuild(t, "1.0.0", "abc1234", "", "", nil)
	f := Get().Fields()
	if f["version"] != "1.0.0" || f["commit"] != "abc1234" || f["release"] != true {
		t.Errorf("unexpected fields %v", f)
	}
}
