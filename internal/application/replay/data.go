// Package replay stores and plays back recorded input sessions.
package replay

// FormatVersion is written into every recording
const FormatVersion = "2.0"

// FrameInput is the intent from frame F on, until the next entry
type FrameInput struct {
	F int    `json:"f"`           // Frame number
	I uint16 `json:"i,omitempty"` // system.Intent bits
}

// ReplayData contains all data needed to replay a game session.
// The seed drives every random choice in the level (boss spawns), so a
// recording replays the same session. Frames only holds the frames where the
// intent changed; Length is the number of recorded frames.
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Stage     string       `json:"stage"`
	StartTime string       `json:"startTime"`
	Length    int          `json:"length"`
	Frames    []FrameInput `json:"frames"`
}
