package replay

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/vaultcore/internal/application/input"
)

// ErrEmpty is returned when saving a recording without frames
var ErrEmpty = errors.New("no frames to save")

// Recorder handles input recording
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder for a fixed tick length
func NewRecorder(arena string, dt float64) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   Version,
			Arena:     arena,
			StartTime: time.Now().Format(time.RFC3339),
			DT:        dt,
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame records a single tick's intent
func (r *Recorder) RecordFrame(in input.State) {
	if !r.recording {
		return
	}
	r.data.Frames = append(r.data.Frames, toFrame(r.frame, in))
	r.frame++
}

// Data returns the recording so far
func (r *Recorder) Data() ReplayData {
	return r.data
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return ErrEmpty
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
