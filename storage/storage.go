// Package storage holds uploaded assets, keyed by opaque
// /storage/<category>/<filename> paths.
package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"
)

type Storage interface {
	Save(category, filename string, src io.Reader) (string, error)
	Remove(assetPath string) error
}

// Disk stores assets on the local filesystem under root.
type Disk struct {
	root string
}

func NewDisk(root string) *Disk {
	return &Disk{root: root}
}

// Save writes the upload under a timestamped name and returns its public
// asset path.
func (d *Disk) Save(category, filename string, src io.Reader) (string, error) {
	dir := filepath.Join(d.root, category)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create asset directory: %w", err)
	}
	name := fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(filename))
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", fmt.Errorf("create asset file: %w", err)
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write asset file: %w", err)
	}
	return path.Join("/storage", category, name), nil
}

// Remove deletes a previously saved asset. Unknown paths and already-gone
// files are not errors.
func (d *Disk) Remove(assetPath string) error {
	rel, ok := strings.CutPrefix(assetPath, "/storage/")
	if !ok || rel == "" || strings.Contains(rel, "..") {
		return nil
	}
	err := os.Remove(filepath.Join(d.root, filepath.FromSlash(rel)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
