package local

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveCreatesDirectoryAndWritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store := New(dir)

	name, size, mimeType, err := store.Save(context.Background(), "hello.txt", strings.NewReader("hello world"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if name != "hello.txt" {
		t.Fatalf("expected stored name hello.txt, got %q", name)
	}
	if size != int64(len("hello world")) {
		t.Fatalf("expected size %d, got %d", len("hello world"), size)
	}
	if !strings.HasPrefix(mimeType, "text/plain") {
		t.Fatalf("expected text/plain mime, got %q", mimeType)
	}

	data, err := os.ReadFile(filepath.Join(dir, "hello.txt"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "hello world" {
		t.Fatalf("unexpected content: %q", data)
	}
}

func TestSaveOverwritesExistingFile(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)

	if _, _, _, err := store.Save(context.Background(), "report.pdf", strings.NewReader("first version")); err != nil {
		t.Fatalf("first save: %v", err)
	}
	if _, _, _, err := store.Save(context.Background(), "report.pdf", strings.NewReader("second")); err != nil {
		t.Fatalf("second save: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "report.pdf"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "second" {
		t.Fatalf("expected last write to win, got %q", data)
	}
}

func TestSaveReducesTraversalToBaseName(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)

	name, _, _, err := store.Save(context.Background(), "../../etc/passwd", strings.NewReader("x"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if name != "passwd" {
		t.Fatalf("expected base name passwd, got %q", name)
	}
	if _, err := os.Stat(filepath.Join(dir, "passwd")); err != nil {
		t.Fatalf("expected file inside upload dir: %v", err)
	}
}

func TestSaveRejectsEmptyName(t *testing.T) {
	store := New(t.TempDir())
	if _, _, _, err := store.Save(context.Background(), "..", strings.NewReader("x")); err == nil {
		t.Fatalf("expected error for empty resolved name")
	}
}

func TestOpenRejectsTraversal(t *testing.T) {
	store := New(t.TempDir())
	for _, name := range []string{"../secret", "/etc/passwd", "a/b"} {
		if _, err := store.Open(context.Background(), name); err == nil {
			t.Fatalf("expected traversal rejection for %q", name)
		}
	}
}

func TestOpenReadsBackSavedFile(t *testing.T) {
	store := New(t.TempDir())
	if _, _, _, err := store.Save(context.Background(), "note.txt", strings.NewReader("contents")); err != nil {
		t.Fatalf("save: %v", err)
	}

	rc, err := store.Open(context.Background(), "note.txt")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "contents" {
		t.Fatalf("unexpected content: %q", data)
	}
}
