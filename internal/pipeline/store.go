package processor

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tkarvonen/huoltokirja/internal/entity"
)

// ArtifactStore lays out per-document artifacts under OutDir:
//
//	<OutDir>/<stem>/data.json   extraction result
//	<OutDir>/<stem>/ocr.txt     raw OCR text
//
// where <stem> is the source filename without extension. Writes are atomic
// (tmp file + rename) so a crashed run never leaves a half-written artifact.
type ArtifactStore struct {
	OutDir string
}

func NewArtifactStore(outDir string) *ArtifactStore {
	return &ArtifactStore{OutDir: outDir}
}

// DocDir returns the artifact directory for a source filename.
func (s *ArtifactStore) DocDir(filename string) string {
	stem := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	return filepath.Join(s.OutDir, stem)
}

// Exists reports whether a finished artifact is already present.
func (s *ArtifactStore) Exists(filename string) bool {
	_, err := os.Stat(filepath.Join(s.DocDir(filename), "data.json"))
	return err == nil
}

func (s *ArtifactStore) SaveResult(filename string, res *entity.ExtractionResult) error {
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return s.writeAtomic(filename, "data.json", append(b, '\n'))
}

func (s *ArtifactStore) SaveOCRText(filename, text string) error {
	return s.writeAtomic(filename, "ocr.txt", []byte(text))
}

func (s *ArtifactStore) LoadResult(filename string) (*entity.ExtractionResult, error) {
	b, err := os.ReadFile(filepath.Join(s.DocDir(filename), "data.json"))
	if err != nil {
		return nil, err
	}
	var res entity.ExtractionResult
	if err := json.Unmarshal(b, &res); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filename, err)
	}
	return &res, nil
}

func (s *ArtifactStore) writeAtomic(filename, name string, data []byte) error {
	dir := s.DocDir(filename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, name+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, filepath.Join(dir, name))
}
