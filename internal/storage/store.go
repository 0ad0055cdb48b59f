// Package storage persists completed runs as a directory per run with a
// JSON metadata file and a CSV frame log.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/bounce/internal/sim"
	"github.com/san-kum/bounce/internal/world"
)

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
	ID        string             `json:"id"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Frames    int                `json:"frames"`
	Width     int                `json:"width"`
	Height    int                `json:"height"`
	Gravity   bool               `json:"gravity"`
	Metrics   map[string]float64 `json:"metrics"`
}

// Save writes a run directory and returns its id.
func (s *Store) Save(seed int64, width, height int, gravity bool, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("run_%d", time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Seed:      seed,
		Frames:    len(result.Frames),
		Width:     width,
		Height:    height,
		Gravity:   gravity,
		Metrics:   result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "frames.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"frame"}
	for i := 0; i < world.BodyCount; i++ {
		header = append(header,
			fmt.Sprintf("x%d", i), fmt.Sprintf("y%d", i),
			fmt.Sprintf("vx%d", i), fmt.Sprintf("vy%d", i))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for _, f := range result.Frames {
		row := []string{strconv.Itoa(f.Index)}
		for _, b := range f.Bodies {
			row = append(row,
				strconv.FormatFloat(b.X, 'f', 6, 64),
				strconv.FormatFloat(b.Y, 'f', 6, 64),
				strconv.FormatFloat(b.VX, 'f', 6, 64),
				strconv.FormatFloat(b.VY, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

// List returns metadata for every stored run, newest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var runs []RunMetadata
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		meta, err := s.Load(e.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

// Load reads one run's metadata.
func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, fmt.Errorf("load run %s: %w", runID, err)
	}
	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("parse run %s: %w", runID, err)
	}
	return &meta, nil
}

// LoadFrames reads one run's frame log back into snapshots.
func (s *Store) LoadFrames(runID string) ([]sim.Frame, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "frames.csv"))
	if err != nil {
		return nil, fmt.Errorf("load frames for %s: %w", runID, err)
	}
	defer file.Close()

	r := csv.NewReader(file)
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, nil
	}

	frames := make([]sim.Frame, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) != 1+4*world.BodyCount {
			return nil, fmt.Errorf("run %s: malformed frame row with %d columns", runID, len(row))
		}
		idx, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, err
		}
		f := sim.Frame{Index: idx, Bodies: make([]sim.BodyState, world.BodyCount)}
		for i := 0; i < world.BodyCount; i++ {
			var vals [4]float64
			for j := 0; j < 4; j++ {
				vals[j], err = strconv.ParseFloat(row[1+i*4+j], 64)
				if err != nil {
					return nil, err
				}
			}
			f.Bodies[i] = sim.BodyState{X: vals[0], Y: vals[1], VX: vals[2], VY: vals[3]}
		}
		frames = append(frames, f)
	}
	return frames, nil
}

// ExportJSON writes a run (metadata plus per-frame body states) as one
// JSON document to enc.
func ExportJSON(enc *json.Encoder, meta *RunMetadata, frames []sim.Frame) error {
	doc := struct {
		RunMetadata
		Bodies [][]sim.BodyState `json:"bodies"`
	}{RunMetadata: *meta}

	doc.Bodies = make([][]sim.BodyState, len(frames))
	for i, f := range frames {
		doc.Bodies[i] = f.Bodies
	}
	return enc.Encode(doc)
}
