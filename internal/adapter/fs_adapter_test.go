package adapter

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	m "zipup.dev/pkg/zipup/internal/model"
)

func TestLocalFSAdapter_WriteFileCreatesParents(t *testing.T) {
	adapter := NewLocalFSAdapter()
	path := filepath.Join(t.TempDir(), "dist", "nested", "index.js.map")

	if err := adapter.WriteFile(m.Path(path), []byte("{}"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	got, err := adapter.ReadFile(m.Path(path))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	if string(got) != "{}" {
		t.Fatalf("ReadFile() = %q, want %q", got, "{}")
	}
}

func TestLocalFSAdapter_FindUp(t *testing.T) {
	adapter := NewLocalFSAdapter()

	t.Run("finds directory in an ancestor", func(t *testing.T) {
		root := t.TempDir()
		modules := filepath.Join(root, "node_modules")
		mustMkdir(t, modules)
		deep := filepath.Join(root, "src", "lib", "deep")
		mustMkdir(t, deep)

		got, err := adapter.FindUp(m.Path(deep), "node_modules")
		if err != nil {
			t.Fatalf("FindUp() error = %v", err)
		}

		if string(got) != modules {
			t.Fatalf("FindUp() = %s, want %s", got, modules)
		}
	})

	t.Run("prefers the nearest ancestor", func(t *testing.T) {
		root := t.TempDir()
		mustMkdir(t, filepath.Join(root, "node_modules"))
		nearest := filepath.Join(root, "pkg", "node_modules")
		mustMkdir(t, nearest)
		start := filepath.Join(root, "pkg", "src")
		mustMkdir(t, start)

		got, err := adapter.FindUp(m.Path(start), "node_modules")
		if err != nil {
			t.Fatalf("FindUp() error = %v", err)
		}

		if string(got) != nearest {
			t.Fatalf("FindUp() = %s, want %s", got, nearest)
		}
	})

	t.Run("ignores files with the same name", func(t *testing.T) {
		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "marker-dir-not-here"), "x")

		got, err := adapter.FindUp(m.Path(root), "marker-dir-not-here")
		if err != nil {
			t.Fatalf("FindUp() error = %v", err)
		}

		if got != "" {
			t.Fatalf("FindUp() = %s, want empty", got)
		}
	})
}

func TestLocalFSAdapter_DirSize(t *testing.T) {
	adapter := NewLocalFSAdapter()

	t.Run("missing directory is zero", func(t *testing.T) {
		size, err := adapter.DirSize(m.Path(filepath.Join(t.TempDir(), "missing")))
		if err != nil {
			t.Fatalf("DirSize() error = %v", err)
		}

		if size != 0 {
			t.Fatalf("DirSize() = %d, want 0", size)
		}
	})

	t.Run("sums nested files", func(t *testing.T) {
		root := t.TempDir()
		writeTestFile(t, filepath.Join(root, "a.bin"), "12345")
		mustMkdir(t, filepath.Join(root, "sub"))
		writeTestFile(t, filepath.Join(root, "sub", "b.bin"), "123")

		size, err := adapter.DirSize(m.Path(root))
		if err != nil {
			t.Fatalf("DirSize() error = %v", err)
		}

		if size != 8 {
			t.Fatalf("DirSize() = %d, want 8", size)
		}
	})
}

func TestLocalFSAdapter_HashFile(t *testing.T) {
	adapter := NewLocalFSAdapter()
	path := filepath.Join(t.TempDir(), "index.js")
	content := "console.log('hi')\n"
	writeTestFile(t, path, content)

	hash, err := adapter.HashFile(m.Path(path))
	if err != nil {
		t.Fatalf("HashFile() error = %v", err)
	}

	want := fmt.Sprintf("%x", sha256.Sum256([]byte(content)))
	if hash != want {
		t.Fatalf("HashFile() = %s, want %s", hash, want)
	}
}

func TestLocalFSAdapter_SymlinkAndRemoveAll(t *testing.T) {
	adapter := NewLocalFSAdapter()
	root := t.TempDir()
	target := filepath.Join(root, "node_modules")
	mustMkdir(t, target)
	link := filepath.Join(root, "workspace", "node_modules")

	if err := adapter.Symlink(m.Path(target), m.Path(link)); err != nil {
		t.Fatalf("Symlink() error = %v", err)
	}

	resolved, err := os.Readlink(link)
	if err != nil {
		t.Fatalf("Readlink() error = %v", err)
	}

	if resolved != target {
		t.Fatalf("Readlink() = %s, want %s", resolved, target)
	}

	if err := adapter.RemoveAll(m.Path(filepath.Join(root, "workspace"))); err != nil {
		t.Fatalf("RemoveAll() error = %v", err)
	}

	if _, err := os.Stat(target); err != nil {
		t.Fatalf("RemoveAll() followed the symlink: %v", err)
	}
}

func TestLocalFSAdapter_Abs(t *testing.T) {
	adapter := NewLocalFSAdapter()

	if got := adapter.Abs("/work", "src/index.js"); got != m.Path(filepath.Join("/work", "src/index.js")) {
		t.Fatalf("Abs() = %s", got)
	}

	if got := adapter.Abs("/work", "/elsewhere/./index.js"); got != m.Path("/elsewhere/index.js") {
		t.Fatalf("Abs() = %s", got)
	}
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()

	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}
