package fd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"offlinejudge/internal/fd"
)

func TestOpenWriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")

	w, err := fd.Open(path, fd.Out)
	if err != nil {
		t.Fatalf("Open(write) error: %v", err)
	}
	if err := w.Write(strings.NewReader("hello judge")); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error: %v", err)
	}

	r, err := fd.Open(path, fd.In)
	if err != nil {
		t.Fatalf("Open(read) error: %v", err)
	}
	defer r.Close()

	var buf bytes.Buffer
	if err := r.Read(&buf); err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if buf.String() != "hello judge" {
		t.Errorf("Read() = %q, want %q", buf.String(), "hello judge")
	}
}

func TestBorrowDoesNotOwn(t *testing.T) {
	b := fd.Borrow(int(os.Stdin.Fd()))
	if err := b.Close(); err != nil {
		t.Errorf("Close() on borrowed fd returned error: %v", err)
	}
	if !b.IsOpened() {
		t.Errorf("IsOpened() = false after closing a borrowed fd, want true")
	}
}

func TestReadableWritableFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rw.txt")
	f, err := fd.Open(path, fd.InOut)
	if err != nil {
		t.Fatalf("Open(InOut) error: %v", err)
	}
	defer f.Close()

	if !f.IsReadable() {
		t.Errorf("IsReadable() = false for InOut fd, want true")
	}
	if !f.IsWritable() {
		t.Errorf("IsWritable() = false for InOut fd, want true")
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "close.txt")
	f, err := fd.Open(path, fd.Out)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("first Close() error: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Errorf("second Close() error: %v, want nil (no-op)", err)
	}
	if f.IsOpened() {
		t.Errorf("IsOpened() = true after Close(), want false")
	}
}
