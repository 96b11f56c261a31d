package localfiles

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRead(t *testing.T) {
	dir := t.TempDir()

	writeFile(t, dir, "b.py", "print(2)\n")
	writeFile(t, dir, "a.py", "print(1)\n")
	writeFile(t, dir, "README", "hello")
	writeFile(t, dir, ".hidden", "ignored")
	if err := os.Mkdir(filepath.Join(dir, "sub"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeFile(t, filepath.Join(dir, "sub"), "nested.py", "ignored")

	files, err := Read(dir)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if len(files) != 3 {
		t.Fatalf("got %d files, want 3", len(files))
	}

	// Sorted by name, hidden files and subdirectories skipped.
	wantNames := []string{"README", "a.py", "b.py"}
	for i, want := range wantNames {
		if files[i].Name != want {
			t.Errorf("files[%d].Name = %s, want %s", i, files[i].Name, want)
		}
	}

	if files[1].Extension != "py" {
		t.Errorf("a.py extension = %q, want py", files[1].Extension)
	}
	if files[0].Extension != "" {
		t.Errorf("README extension = %q, want empty", files[0].Extension)
	}
	if files[1].Code != "print(1)\n" {
		t.Errorf("a.py code = %q", files[1].Code)
	}
}

func TestRead_EmptyDir(t *testing.T) {
	if _, err := Read(t.TempDir()); err == nil {
		t.Fatal("expected error for empty directory, got none")
	}
}

func TestRead_MissingDir(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected error for missing directory, got none")
	}
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()

	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
