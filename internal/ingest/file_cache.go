// Package ingest extracts card drafts from PDF documents through the
// backend ingest endpoint.
package ingest

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileCache stores raw ingest responses on disk. Extraction runs a
// language model on the backend, so repeating it for an unchanged
// document is wasteful.
type FileCache struct {
	rootDir string
}

func NewFileCache(cacheDirectory string) *FileCache {
	return &FileCache{
		rootDir: cacheDirectory,
	}
}

func (f *FileCache) filePath(key string) string {
	return filepath.Join(f.rootDir, key+".json")
}

func (cache *FileCache) cache(key string, f func() ([]byte, error)) ([]byte, error) {
	localFilePath := cache.filePath(key)
	if _, err := os.Stat(localFilePath); err == nil {
		contents, err := cache.read(key)
		if err != nil {
			return nil, fmt.Errorf("cache.read > %w", err)
		}
		return contents, nil
	}

	contents, err := f()
	if err != nil {
		return nil, fmt.Errorf("fetch > %w", err)
	}

	if err := os.MkdirAll(cache.rootDir, 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll > %w", err)
	}
	file, err := os.Create(localFilePath)
	if err != nil {
		return nil, fmt.Errorf("os.Create > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()
	if _, err := file.Write(contents); err != nil {
		return contents, fmt.Errorf("file.Write > %w", err)
	}
	return contents, nil
}

func (cache *FileCache) read(key string) ([]byte, error) {
	file, err := os.Open(cache.filePath(key))
	if err != nil {
		return nil, fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	contents, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll > %w", err)
	}
	return contents, nil
}
