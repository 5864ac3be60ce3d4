package builder

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/backmassage/pathforge/internal/collide"
	"github.com/backmassage/pathforge/internal/config"
	"github.com/backmassage/pathforge/internal/probe"
)

// countingProvider records consultations so tests can assert the force
// shortcut at the orchestrator level.
type countingProvider struct {
	decision collide.Decision
	calls    int
}

func (p *countingProvider) Decide(string, config.ObjectKind) (collide.Decision, string) {
	p.calls++
	return p.decision, ""
}

func folderRequest(parent string) Request {
	return Request{Kind: config.KindFolder, ParentPath: parent, Prefix: "Messages"}
}

func TestBuild_ScenarioPaths(t *testing.T) {
	stamp := time.Date(2016, 11, 12, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     Request
		wantEnd string
	}{
		{
			"folder prefix and mid",
			Request{Kind: config.KindFolder, Prefix: "Messages", MidPart: "HOST1"},
			"Messages-HOST1",
		},
		{
			"folder with timestamp and suffix",
			Request{
				Kind: config.KindFolder, Prefix: "Messages", MidPart: "HOST1",
				IncludeTimestamp: true, TimestampValue: stamp, TimestampFormat: "20060102",
				Suffix: "failed",
			},
			"Messages-HOST1-20161112-failed",
		},
		{
			"file with suffix and extension",
			Request{Kind: config.KindFile, Prefix: "Messages", Suffix: "failed", Extension: "csv"},
			"Messages-failed.csv",
		},
		{
			"file defaults to txt extension",
			Request{Kind: config.KindFile, Prefix: "Messages"},
			"Messages.txt",
		},
		{
			"folder default timestamp layout is date-only",
			Request{
				Kind: config.KindFolder, Prefix: "Messages",
				IncludeTimestamp: true, TimestampValue: stamp,
			},
			"Messages-20161112",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.req.ParentPath = t.TempDir()
			res, err := New(nil).Build(tt.req)
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if res.ExitCode != ExitOK {
				t.Fatalf("Build() code = %v (%s), want 0", res.ExitCode, res.ExitDescription)
			}
			if !strings.HasSuffix(res.Path, string(filepath.Separator)+tt.wantEnd) {
				t.Errorf("Build() path = %q, want suffix %q", res.Path, tt.wantEnd)
			}
		})
	}
}

func TestBuild_NormalizesJoinedPath(t *testing.T) {
	dir := t.TempDir()
	req := folderRequest(dir + "/") // trailing slash doubles the join separator

	res, err := New(nil).Build(req)
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dir, "Messages")
	if res.Path != want {
		t.Errorf("Build() path = %q, want %q", res.Path, want)
	}
}

func TestBuild_ParentMissing(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent")
	res, err := New(nil).Build(folderRequest(missing))
	if err != nil {
		t.Fatal(err)
	}
	if res.ExitCode != ExitParentMissing {
		t.Errorf("Build() code = %v, want 1", res.ExitCode)
	}
	if !strings.Contains(res.ExitDescription, missing) {
		t.Errorf("description %q does not name the parent path", res.ExitDescription)
	}
	if !strings.HasSuffix(res.Path, "Messages") {
		t.Errorf("path %q should still be computed alongside code 1", res.Path)
	}
}

func TestBuild_ParentMissing_Strict(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "absent")
	req := folderRequest(missing)
	req.BreakOnError = true

	_, err := New(nil).Build(req)
	if !errors.Is(err, probe.ErrParentMissing) {
		t.Errorf("Build() error = %v, want ErrParentMissing", err)
	}
}

func TestBuild_ParentNotWritable(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("running as root; permission bits are not enforced")
	}

	dir := t.TempDir()
	if err := os.Chmod(dir, 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	res, err := New(nil).Build(folderRequest(dir))
	if err != nil {
		t.Fatal(err)
	}
	if res.ExitCode != ExitNotWritable {
		t.Errorf("Build() code = %v, want 3", res.ExitCode)
	}
	if res.Path == "" {
		t.Error("path should still be computed alongside code 3")
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("probe left residue: %v", entries)
	}
}

func TestBuild_ForbiddenName(t *testing.T) {
	req := Request{Kind: config.KindFile, ParentPath: t.TempDir(), Prefix: "a/b"}

	res, err := New(nil).Build(req)
	if err != nil {
		t.Fatal(err)
	}
	if res.ExitCode != ExitBadName {
		t.Errorf("Build() code = %v, want 2", res.ExitCode)
	}
	if res.Path != "" {
		t.Errorf("path = %q, want empty for code 2", res.Path)
	}
}

func TestBuild_ForbiddenName_Strict(t *testing.T) {
	req := Request{Kind: config.KindFile, ParentPath: t.TempDir(), Prefix: "a/b", BreakOnError: true}

	if _, err := New(nil).Build(req); err == nil {
		t.Error("Build() should abort on forbidden name under BreakOnError")
	}
}

func TestBuild_ExistingTarget(t *testing.T) {
	makeTarget := func(t *testing.T, parent string) {
		t.Helper()
		if err := os.Mkdir(filepath.Join(parent, "Messages"), 0o755); err != nil {
			t.Fatal(err)
		}
	}

	t.Run("force short-circuits provider", func(t *testing.T) {
		dir := t.TempDir()
		makeTarget(t, dir)
		p := &countingProvider{decision: collide.DoNotOverwrite}
		req := folderRequest(dir)
		req.Force = true

		res, err := New(p).Build(req)
		if err != nil {
			t.Fatal(err)
		}
		if res.ExitCode != ExitOverwriteAllowed {
			t.Errorf("Build() code = %v, want 4", res.ExitCode)
		}
		if p.calls != 0 {
			t.Errorf("provider consulted %d times under force, want 0", p.calls)
		}
	})

	t.Run("provider allows", func(t *testing.T) {
		dir := t.TempDir()
		makeTarget(t, dir)

		res, err := New(collide.Always{}).Build(folderRequest(dir))
		if err != nil {
			t.Fatal(err)
		}
		if res.ExitCode != ExitOverwriteAllowed {
			t.Errorf("Build() code = %v, want 4", res.ExitCode)
		}
		if !strings.Contains(res.ExitDescription, res.Path) {
			t.Errorf("description %q does not name the path", res.ExitDescription)
		}
	})

	t.Run("provider declines", func(t *testing.T) {
		dir := t.TempDir()
		makeTarget(t, dir)

		res, err := New(collide.Never{}).Build(folderRequest(dir))
		if err != nil {
			t.Fatal(err)
		}
		if res.ExitCode != ExitOverwriteDenied {
			t.Errorf("Build() code = %v, want 5", res.ExitCode)
		}
	})

	t.Run("provider aborts regardless of strict mode", func(t *testing.T) {
		dir := t.TempDir()
		makeTarget(t, dir)

		_, err := New(collide.AbortPolicy{}).Build(folderRequest(dir))
		if !errors.Is(err, collide.ErrAborted) {
			t.Errorf("Build() error = %v, want ErrAborted", err)
		}
	})

	t.Run("different kind is not a collision", func(t *testing.T) {
		dir := t.TempDir()
		if err := os.WriteFile(filepath.Join(dir, "Messages"), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
		p := &countingProvider{decision: collide.DoNotOverwrite}

		res, err := New(p).Build(folderRequest(dir))
		if err != nil {
			t.Fatal(err)
		}
		if res.ExitCode != ExitOK {
			t.Errorf("Build() code = %v, want 0 for a different-kind entry", res.ExitCode)
		}
		if p.calls != 0 {
			t.Errorf("provider consulted %d times, want 0", p.calls)
		}
	})
}

func TestResult_KindAliases(t *testing.T) {
	r := Result{Path: "/out/Messages.txt"}
	if r.FilePath() != r.Path || r.FolderPath() != r.Path {
		t.Errorf("aliases differ from Path: file %q folder %q", r.FilePath(), r.FolderPath())
	}
}

func TestNewRequest_CopiesConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Kind = config.KindFolder
	cfg.ParentPath = "/var/reports"
	cfg.Prefix = "Messages"
	cfg.MidPart = "HOST1"
	cfg.Suffix = "failed"
	cfg.Force = true
	cfg.StrictMode = true

	req := NewRequest(&cfg)
	if req.Kind != config.KindFolder || req.ParentPath != "/var/reports" ||
		req.Prefix != "Messages" || req.MidPart != "HOST1" || req.Suffix != "failed" {
		t.Errorf("NewRequest() dropped fields: %+v", req)
	}
	if !req.Force || !req.BreakOnError {
		t.Errorf("NewRequest() flags: force %v, breakOnError %v", req.Force, req.BreakOnError)
	}
}
