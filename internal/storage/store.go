package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/bactogrowth/internal/export"
	"github.com/san-kum/bactogrowth/internal/growth"
)

const (
	metadataFile = "metadata.json"
	seriesFile   = "series.csv"
)

var ErrInvalidRunID = errors.New("invalid run id")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID          string                  `json:"id"`
	Timestamp   time.Time               `json:"timestamp"`
	Preset      string                  `json:"preset,omitempty"`
	Parameters  growth.Parameters       `json:"parameters"`
	UnitMassKg  float64                 `json:"unit_mass_kg"`
	Result      growth.Result           `json:"result"`
	Comparisons []growth.BodyComparison `json:"comparisons"`
	Samples     int                     `json:"samples"`
}

// Run is everything Save persists for one simulation.
type Run struct {
	Preset      string
	Parameters  growth.Parameters
	UnitMassKg  float64
	Result      growth.Result
	Comparisons []growth.BodyComparison
	Series      []growth.Sample
}

func (s *Store) Save(run Run) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("%s_%s", now.Format("20060102-150405"), uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Timestamp:   now,
		Preset:      run.Preset,
		Parameters:  run.Parameters,
		UnitMassKg:  run.UnitMassKg,
		Result:      run.Result,
		Comparisons: run.Comparisons,
		Samples:     len(run.Series),
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, seriesFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := export.WriteCSV(csvFile, run.Series); err != nil {
		return "", err
	}

	return runID, nil
}

// List returns saved runs, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

// checkRunID keeps run IDs to a single directory name under baseDir.
func checkRunID(runID string) error {
	if runID == "" || runID == "." || runID == ".." || strings.ContainsAny(runID, `/\`) || filepath.Base(runID) != runID {
		return fmt.Errorf("%w: %q", ErrInvalidRunID, runID)
	}
	return nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	if err := checkRunID(runID); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadSeries(runID string) ([]growth.Sample, error) {
	if err := checkRunID(runID); err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, seriesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return export.ReadCSV(file)
}
