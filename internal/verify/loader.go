package verify

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/tkarvonen/huoltokirja/internal/entity"
)

// Records live under <verifiedDir>/<stem>/, mirroring the artifact layout:
//
//	verified.json   required, human-authored ground truth
//	override.json   optional, sparse corrections

// ListRecords returns the stems that carry a verified.json, sorted.
func ListRecords(verifiedDir string) ([]string, error) {
	entries, err := os.ReadDir(verifiedDir)
	if err != nil {
		return nil, err
	}
	var stems []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(verifiedDir, e.Name(), "verified.json")); err == nil {
			stems = append(stems, e.Name())
		}
	}
	sort.Strings(stems)
	return stems, nil
}

// LoadVerified reads and schema-checks one verified.json.
func LoadVerified(verifiedDir, stem string) (*entity.VerifiedRecord, error) {
	path := filepath.Join(verifiedDir, stem, "verified.json")
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := ValidateVerifiedJSON(raw); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	var rec entity.VerifiedRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &rec, nil
}

// LoadOverride reads an override.json if present; a missing file is not an
// error, it just means no corrections.
func LoadOverride(verifiedDir, stem string) (*entity.OverrideRecord, error) {
	path := filepath.Join(verifiedDir, stem, "override.json")
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var rec entity.OverrideRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return &rec, nil
}

// LoadReconciled loads ground truth plus any override for one stem and
// reconciles them.
func LoadReconciled(verifiedDir, stem string) (entity.ReconciledRecord, error) {
	verified, err := LoadVerified(verifiedDir, stem)
	if err != nil {
		return entity.ReconciledRecord{}, err
	}
	override, err := LoadOverride(verifiedDir, stem)
	if err != nil {
		return entity.ReconciledRecord{}, err
	}
	return Reconcile(verified.GroundTruth, override), nil
}

// LoadAllReconciled reconciles every record under verifiedDir, keyed by stem.
func LoadAllReconciled(verifiedDir string) (map[string]entity.ReconciledRecord, error) {
	stems, err := ListRecords(verifiedDir)
	if err != nil {
		return nil, err
	}
	out := make(map[string]entity.ReconciledRecord, len(stems))
	for _, stem := range stems {
		rec, err := LoadReconciled(verifiedDir, stem)
		if err != nil {
			return nil, err
		}
		out[stem] = rec
	}
	return out, nil
}
