package ingest

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/at-ishikawa/studybuddy/internal/api"
)

// Extractor turns a PDF document into question and answer pairs.
// Responses are cached keyed by document content, so editing the
// document invalidates its cache entry.
type Extractor struct {
	client api.IngestAPI
	cache  *FileCache
}

func NewExtractor(client api.IngestAPI, cacheDirectory string) *Extractor {
	return &Extractor{
		client: client,
		cache:  NewFileCache(cacheDirectory),
	}
}

func (extractor *Extractor) ExtractQA(ctx context.Context, pdfPath string) ([]api.QAPair, error) {
	contents, err := os.ReadFile(pdfPath)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile(%s) > %w", pdfPath, err)
	}

	raw, err := extractor.cache.cache(contentKey(contents), func() ([]byte, error) {
		result, err := extractor.client.IngestPDF(ctx, filepath.Base(pdfPath), bytes.NewReader(contents))
		if err != nil {
			return nil, fmt.Errorf("client.IngestPDF > %w", err)
		}
		data, err := json.Marshal(result)
		if err != nil {
			return nil, fmt.Errorf("json.Marshal > %w", err)
		}
		return data, nil
	})
	if err != nil {
		return nil, fmt.Errorf("cache.cache > %w", err)
	}

	var result api.IngestResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("json.Unmarshal > %w", err)
	}
	return result.QA, nil
}

func contentKey(contents []byte) string {
	sum := sha256.Sum256(contents)
	return hex.EncodeToString(sum[:])
}
