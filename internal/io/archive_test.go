package ioutils

import (
	"archive/zip"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestCreateZip(t *testing.T) {
	src := t.TempDir()
	files := map[string]string{
		"libfoo-2.3.1.jar": "jar bytes",
		"libfoo-2.3.1.pom": "<project/>",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(src, name), []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	dst := filepath.Join(t.TempDir(), "libfoo-2.3.1.zip")
	names := []string{"libfoo-2.3.1.jar", "libfoo-2.3.1.pom"}
	if err := CreateZip(context.Background(), dst, src, names); err != nil {
		t.Fatalf("CreateZip() error = %v", err)
	}

	r, err := zip.OpenReader(dst)
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer r.Close()

	if len(r.File) != len(names) {
		t.Fatalf("archive has %d entries, want %d", len(r.File), len(names))
	}
	for i, f := range r.File {
		if f.Name != names[i] {
			t.Errorf("entry %d name = %q, want %q", i, f.Name, names[i])
		}
		if f.Method != zip.Deflate {
			t.Errorf("entry %q method = %d, want Deflate", f.Name, f.Method)
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != files[f.Name] {
			t.Errorf("entry %q content = %q, want %q", f.Name, data, files[f.Name])
		}
	}
}

func TestCreateZip_MissingSourceRemovesArchive(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "out.zip")

	err := CreateZip(context.Background(), dst, t.TempDir(), []string{"missing.jar"})
	if err == nil {
		t.Fatal("CreateZip() error = nil, want error for missing source")
	}
	if _, statErr := os.Stat(dst); !os.IsNotExist(statErr) {
		t.Errorf("partial archive left behind: %v", statErr)
	}
}

func TestCreateZip_Cancelled(t *testing.T) {
	src := t.TempDir()
	if err := os.WriteFile(filepath.Join(src, "a.jar"), []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dst := filepath.Join(t.TempDir(), "out.zip")
	if err := CreateZip(ctx, dst, src, []string{"a.jar"}); err == nil {
		t.Fatal("CreateZip() error = nil, want context error")
	}
	if _, err := os.Stat(dst); !os.IsNotExist(err) {
		t.Errorf("partial archive left behind: %v", err)
	}
}
