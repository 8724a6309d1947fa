package storage

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"strconv"

	"github.com/computational-ecology-lab/single-population-workshop/internal/popdyn"
)

type ExportData struct {
	Law        string             `json:"law"`
	N0         float64            `json:"n0"`
	Steps      int                `json:"steps"`
	R          float64            `json:"r"`
	K          float64            `json:"k"`
	Trajectory []float64          `json:"trajectory"`
	Metrics    map[string]float64 `json:"metrics"`
}

// ExportJSON writes a full run, including the trajectory, to a single
// JSON file for use outside the workshop tools.
func ExportJSON(path string, meta *RunMetadata, traj popdyn.Trajectory) error {
	data := ExportData{
		Law:        meta.Law,
		N0:         meta.N0,
		Steps:      meta.Steps,
		R:          meta.R,
		K:          meta.K,
		Trajectory: traj,
		Metrics:    meta.Metrics,
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportCSV writes a trajectory to a standalone CSV file, one row per
// time step.
func ExportCSV(path string, traj popdyn.Trajectory) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"step", "population"}); err != nil {
		return err
	}
	for i, n := range traj {
		row := []string{
			strconv.Itoa(i),
			strconv.FormatFloat(n, 'g', -1, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
