package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/labrun/internal/application/system"
)

// Replayer handles input playback from recorded data
type Replayer struct {
	data   ReplayData
	frame  int
	next   int // index of the next entry in data.Frames
	intent system.Intent
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if err := validate(&data); err != nil {
		return nil, fmt.Errorf("invalid replay %s: %w", filename, err)
	}

	return &data, nil
}

func validate(data *ReplayData) error {
	if data.Version != FormatVersion {
		return fmt.Errorf("unsupported version %q", data.Version)
	}
	prev := -1
	for _, f := range data.Frames {
		if f.F <= prev || f.F >= data.Length {
			return fmt.Errorf("frame %d out of order", f.F)
		}
		prev = f.F
	}
	return nil
}

// GetInput returns the input for the current frame and advances
func (r *Replayer) GetInput() (system.InputState, bool) {
	if r.frame >= r.data.Length {
		return system.InputState{}, false
	}

	for r.next < len(r.data.Frames) && r.data.Frames[r.next].F <= r.frame {
		r.intent = system.Intent(r.data.Frames[r.next].I)
		r.next++
	}
	r.frame++

	return r.intent.State(), true
}

// Done reports whether every frame was played
func (r *Replayer) Done() bool {
	return r.frame >= r.data.Length
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return r.data.Length
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Stage returns the recorded stage name
func (r *Replayer) Stage() string {
	return r.data.Stage
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
	r.next = 0
	r.intent = 0
}

// CreateTestReplayData creates replay data holding the same intent every frame
func CreateTestReplayData(frames int, intent system.Intent) ReplayData {
	data := ReplayData{
		Version:   FormatVersion,
		Seed:      12345,
		Stage:     "test",
		StartTime: time.Now().Format(time.RFC3339),
		Length:    frames,
	}
	if frames > 0 {
		data.Frames = []FrameInput{{F: 0, I: uint16(intent)}}
	}

	return data
}
