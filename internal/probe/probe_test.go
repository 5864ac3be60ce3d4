package probe

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/backmassage/pathforge/internal/config"
)

func TestWritable_MissingParent(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope")
	for _, kind := range []config.ObjectKind{config.KindFile, config.KindFolder} {
		t.Run(string(kind), func(t *testing.T) {
			err := Writable(missing, kind)
			if !errors.Is(err, ErrParentMissing) {
				t.Errorf("Writable() = %v, want ErrParentMissing", err)
			}
		})
	}
}

func TestWritable_ParentIsAFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "plain")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := Writable(file, config.KindFile)
	if !errors.Is(err, ErrParentMissing) {
		t.Errorf("Writable() = %v, want ErrParentMissing for non-directory parent", err)
	}
}

func TestWritable_WritableDirLeavesNoResidue(t *testing.T) {
	for _, kind := range []config.ObjectKind{config.KindFile, config.KindFolder} {
		t.Run(string(kind), func(t *testing.T) {
			dir := t.TempDir()
			if err := Writable(dir, kind); err != nil {
				t.Fatalf("Writable() = %v, want nil", err)
			}
			entries, err := os.ReadDir(dir)
			if err != nil {
				t.Fatal(err)
			}
			if len(entries) != 0 {
				t.Errorf("probe left residue: %v", entries)
			}
		})
	}
}

func TestWritable_ReadOnlyDir(t *testing.T) {
	if os.Getuid() == 0 {
		t.Skip("running as root; permission bits are not enforced")
	}

	dir := t.TempDir()
	if err := os.Chmod(dir, 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	for _, kind := range []config.ObjectKind{config.KindFile, config.KindFolder} {
		t.Run(string(kind), func(t *testing.T) {
			err := Writable(dir, kind)
			if !errors.Is(err, ErrNotWritable) {
				t.Errorf("Writable() = %v, want ErrNotWritable", err)
			}
			entries, readErr := os.ReadDir(dir)
			if readErr != nil {
				t.Fatal(readErr)
			}
			if len(entries) != 0 {
				t.Errorf("probe left residue in read-only dir: %v", entries)
			}
		})
	}
}
