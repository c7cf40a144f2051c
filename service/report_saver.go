package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ludo-technologies/archscan/domain"
)

// LatestReportName is the file that always holds the most recent report
const LatestReportName = "latest.json"

// ReportStoreImpl persists validation reports as JSON files in a directory
type ReportStoreImpl struct{}

// NewReportStore creates a new report store
func NewReportStore() *ReportStoreImpl {
	return &ReportStoreImpl{}
}

// ReportFileName returns the timestamped file name of result, e.g.
// architecture-2024-05-01T10-20-30-123Z.json
func ReportFileName(result *domain.ValidationResult) string {
	stamp := result.Timestamp.UTC().Format("2006-01-02T15:04:05.000Z")
	stamp = strings.NewReplacer(":", "-", ".", "-").Replace(stamp)
	return "architecture-" + stamp + ".json"
}

// Save validates result against the report schema and writes it to
// dir/latest.json and to a timestamped file, returning the latter's path
func (s *ReportStoreImpl) Save(dir string, result *domain.ValidationResult) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", domain.NewOutputError("failed to marshal report", err)
	}
	if err := ValidateReportJSON(data); err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", domain.NewOutputError(fmt.Sprintf("failed to create report directory %s", dir), err)
	}

	stamped := filepath.Join(dir, ReportFileName(result))
	for _, path := range []string{filepath.Join(dir, LatestReportName), stamped} {
		if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
			return "", domain.NewOutputError(fmt.Sprintf("failed to write report %s", path), err)
		}
	}
	return stamped, nil
}

// LoadLatest reads and validates dir/latest.json
func (s *ReportStoreImpl) LoadLatest(dir string) (*domain.ValidationResult, error) {
	path := filepath.Join(dir, LatestReportName)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, domain.NewFileNotFoundError(path, err)
	}
	if err != nil {
		return nil, domain.NewOutputError(fmt.Sprintf("failed to read report %s", path), err)
	}

	if err := ValidateReportJSON(data); err != nil {
		return nil, err
	}

	var result domain.ValidationResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, domain.NewSchemaError("failed to decode report", err)
	}
	return &result, nil
}
