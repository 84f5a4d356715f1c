package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveAndRemove(t *testing.T) {
	d := NewDisk(t.TempDir())

	path, err := d.Save("menu", "margherita.png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if !strings.HasPrefix(path, "/storage/menu/") {
		t.Errorf("asset path = %q, want /storage/menu/ prefix", path)
	}

	if err := d.Remove(path); err != nil {
		t.Errorf("Remove() error: %v", err)
	}
	// second removal of the same path must not fail
	if err := d.Remove(path); err != nil {
		t.Errorf("Remove() twice error: %v", err)
	}
}

func TestRemoveIgnoresForeignPaths(t *testing.T) {
	root := t.TempDir()
	d := NewDisk(root)

	marker := filepath.Join(root, "keep.txt")
	if err := os.WriteFile(marker, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := d.Remove("/etc/passwd"); err != nil {
		t.Errorf("Remove(foreign) error: %v", err)
	}
	if err := d.Remove("/storage/../keep.txt"); err != nil {
		t.Errorf("Remove(traversal) error: %v", err)
	}
	if _, err := os.Stat(marker); err != nil {
		t.Errorf("file outside asset tree was touched: %v", err)
	}
}
