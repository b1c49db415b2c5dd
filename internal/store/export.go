package store

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/oscsim/internal/driver"
)

type ExportData struct {
	Label      string             `json:"label"`
	Signal     string             `json:"signal"`
	Dt         float64            `json:"dt"`
	Duration   float64            `json:"duration"`
	Steps      int                `json:"steps"`
	Times      []float64          `json:"times"`
	Values     []float64          `json:"values"`
	Velocities []float64          `json:"velocities"`
	Forcings   []float64          `json:"forcings"`
	Metrics    map[string]float64 `json:"metrics"`
}

func buildExport(meta *RunMetadata, result *driver.Result) ExportData {
	return ExportData{
		Label:      meta.Label,
		Signal:     meta.Signal,
		Dt:         meta.Dt,
		Duration:   meta.Duration,
		Steps:      len(result.Times),
		Times:      result.Times,
		Values:     result.Values,
		Velocities: result.Velocities,
		Forcings:   result.Forcings,
		Metrics:    meta.Metrics,
	}
}

// ExportJSON writes an indented JSON dump of a stored run to w.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.LoadMetadata(runID)
	if err != nil {
		return err
	}
	result, err := s.LoadTrajectory(runID)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildExport(meta, result))
}

// ExportJSONFile writes the JSON dump to a file path.
func (s *Store) ExportJSONFile(path, runID string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return s.ExportJSON(f, runID)
}
