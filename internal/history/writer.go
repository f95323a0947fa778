package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/tkarvonen/huoltokirja/internal/common"
	"github.com/tkarvonen/huoltokirja/internal/entity"
)

// ServiceDataModel is the persisted history artifact
// (service_data_model.json): the assembled records plus derived analytics.
type ServiceDataModel struct {
	GeneratedAt string                 `json:"generated_at"`
	Vehicle     common.VehicleProfile  `json:"vehicle"`
	Records     []entity.ServiceRecord `json:"records"`
	Statistics  Statistics             `json:"statistics"`
	Fuel        FuelEstimate           `json:"fuel_estimate"`
}

// BuildServiceDataModel derives the full history artifact from reconciled
// records and the vehicle profile.
func BuildServiceDataModel(reconciled map[string]entity.ReconciledRecord, profile *common.Profile) ServiceDataModel {
	records := BuildServiceRecords(reconciled, nil)
	return ServiceDataModel{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Vehicle:     profile.Vehicle,
		Records:     records,
		Statistics:  ComputeStatistics(records),
		Fuel:        EstimateFuelCosts(records, profile, nil),
	}
}

// WriteServiceDataModel writes the artifact atomically next to the other
// pipeline outputs.
func WriteServiceDataModel(path string, model ServiceDataModel) error {
	b, err := json.MarshalIndent(model, "", "  ")
	if err != nil {
		return fmt.Errorf("encode service data model: %w", err)
	}
	b = append(b, '\n')

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return os.Rename(tmpName, path)
}
