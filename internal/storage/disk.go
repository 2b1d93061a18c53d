package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/2beens/gymroutines/pkg"
)

var _ KV = (*DiskKV)(nil)

var ErrInvalidKey = errors.New("invalid key")

// DiskKV stores each key as <root>/<key>.json.
type DiskKV struct {
	rootPath string
}

func NewDiskKV(rootPath string) (*DiskKV, error) {
	if rootPath == "" {
		return nil, errors.New("disk root path empty")
	}
	if err := pkg.EnsureDir(rootPath); err != nil {
		return nil, fmt.Errorf("disk root [%s]: %w", rootPath, err)
	}
	return &DiskKV{
		rootPath: rootPath,
	}, nil
}

func (d *DiskKV) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.HasPrefix(key, ".") {
		return "", fmt.Errorf("%w: [%s]", ErrInvalidKey, key)
	}
	return filepath.Join(d.rootPath, key+".json"), nil
}

func (d *DiskKV) Get(_ context.Context, key string) ([]byte, error) {
	path, err := d.path(key)
	if err != nil {
		return nil, err
	}

	value, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("disk read [%s]: %w", key, err)
	}
	return value, nil
}

// Set writes to a temp file in the same dir and renames it over the old value,
// so a crash mid-write never leaves a half written collection behind.
func (d *DiskKV) Set(_ context.Context, key string, value []byte) (err error) {
	path, err := d.path(key)
	if err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(d.rootPath, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("disk create temp [%s]: %w", key, err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmpFile.Name())
		}
	}()

	if _, err := tmpFile.Write(value); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("disk write [%s]: %w", key, err)
	}
	if err := tmpFile.Sync(); err != nil {
		_ = tmpFile.Close()
		return fmt.Errorf("disk sync [%s]: %w", key, err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("disk close [%s]: %w", key, err)
	}

	if err := os.Rename(tmpFile.Name(), path); err != nil {
		return fmt.Errorf("disk rename [%s]: %w", key, err)
	}
	return nil
}

func (d *DiskKV) Close() error {
	return nil
}
