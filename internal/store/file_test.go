package store

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entries.json")
	original := New().
		Update("first", Entry{Name: "First", Username: "First Username", Password: "First Password", Notes: "First Notes"}).
		Update("second", Entry{Name: "Second", Username: "Second Username", Password: "Second Password", Notes: "Second Notes"})

	if err := original.Save(path); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !loaded.Equal(original) {
		t.Fatalf("loaded store differs from saved store")
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm&0o077 != 0 {
		t.Fatalf("expected store file to be private, got %v", perm)
	}
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entries.json")

	if err := storeOf("a", "b", "c").Save(path); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if err := New().Save(path); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "{}" {
		t.Fatalf("expected file to hold {}, got %q", data)
	}
}

func TestSaveInvalidTextKeepsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entries.json")
	if err := storeOf("a").Save(path); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	err := storeOf("a").Update("x\xffy", Entry{Name: "x\xffy"}).Save(path)
	if !errors.Is(err, ErrInvalidText) {
		t.Fatalf("expected ErrInvalidText, got %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !loaded.Equal(storeOf("a")) {
		t.Fatalf("expected the previous contents to survive a refused save")
	}
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	_, err := Load(path)
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected *IOError, got %T: %v", err, err)
	}
	if ioErr.Path != path {
		t.Fatalf("expected path %q, got %q", path, ioErr.Path)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected error to wrap fs.ErrNotExist")
	}
	if Exists(path) {
		t.Fatalf("Load must not create the file")
	}
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	cases := map[string][]byte{
		"notjson.json": []byte("not json"),
		"binary.json":  {'{', '"', 0xff, 0xfe, '"', '}'},
	}

	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := os.WriteFile(path, data, 0o600); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			_, err := Load(path)
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("expected *ParseError, got %T: %v", err, err)
			}
		})
	}
}

func TestSaveToMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "entries.json")

	err := New().Save(path)
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected *IOError, got %T: %v", err, err)
	}
	if ioErr.Op != "write" {
		t.Fatalf("expected write op, got %q", ioErr.Op)
	}
}
