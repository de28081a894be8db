package replay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/labrun/internal/application/system"
)

func TestFrameInput_OmitsEmptyIntent(t *testing.T) {
	data, err := json.Marshal(FrameInput{F: 3})
	require.NoError(t, err)
	assert.JSONEq(t, `{"f":3}`, string(data))
}

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version: FormatVersion,
		Seed:    42,
		Stage:   "test",
		Length:  3,
		Frames: []FrameInput{
			{F: 0, I: uint16(system.IntentLeft)},
			{F: 1, I: uint16(system.IntentRight | system.IntentJump | system.IntentJumpPressed)},
			{F: 2},
		},
	}

	replayer := NewReplayer(data)

	// Frame 0
	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Left)
	assert.False(t, input.Right)

	// Frame 1
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.False(t, input.Left)
	assert.True(t, input.Right)
	assert.True(t, input.Jump)
	assert.True(t, input.JumpPressed)

	// Frame 2
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, system.InputState{}, input)
	assert.True(t, replayer.Done())

	// End of frames
	_, ok = replayer.GetInput()
	assert.False(t, ok)
}

func TestReplayer_HoldsIntentBetweenEntries(t *testing.T) {
	replayer := NewReplayer(ReplayData{
		Version: FormatVersion,
		Length:  5,
		Frames: []FrameInput{
			{F: 0, I: uint16(system.IntentLeft)},
			{F: 3, I: uint16(system.IntentRight)},
		},
	})

	var got []system.InputState
	for {
		input, ok := replayer.GetInput()
		if !ok {
			break
		}
		got = append(got, input)
	}

	left := system.InputState{Left: true}
	right := system.InputState{Right: true}
	assert.Equal(t, []system.InputState{left, left, left, right, right}, got)
}

func TestReplayer_CurrentFrame(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(5, 0))

	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.GetInput()
	assert.Equal(t, 1, replayer.CurrentFrame())

	replayer.GetInput()
	replayer.GetInput()
	assert.Equal(t, 3, replayer.CurrentFrame())
}

func TestReplayer_TotalFrames(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(10, 0))

	assert.Equal(t, 10, replayer.TotalFrames())
	assert.Equal(t, int64(12345), replayer.Seed())
	assert.Equal(t, "test", replayer.Stage())
}

func TestReplayer_Reset(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(3, system.IntentSpray))
	for !replayer.Done() {
		input, _ := replayer.GetInput()
		assert.True(t, input.Spray)
	}

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())
	assert.False(t, replayer.Done())
}

func TestLoadReplay(t *testing.T) {
	dir := t.TempDir()

	t.Run("reads a saved session", func(t *testing.T) {
		path := filepath.Join(dir, "ok.json")
		raw, err := json.Marshal(CreateTestReplayData(4, system.IntentRight))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(path, raw, 0o644))

		data, err := LoadReplay(path)
		require.NoError(t, err)
		assert.Equal(t, 4, data.Length)
		assert.Equal(t, uint16(system.IntentRight), data.Frames[0].I)
	})

	t.Run("rejects frames out of order", func(t *testing.T) {
		path := filepath.Join(dir, "order.json")
		raw := `{"version":"2.0","length":5,"frames":[{"f":2},{"f":1}]}`
		require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

		_, err := LoadReplay(path)
		assert.Error(t, err)
	})

	t.Run("rejects frames past the end", func(t *testing.T) {
		path := filepath.Join(dir, "past.json")
		raw := `{"version":"2.0","length":2,"frames":[{"f":0},{"f":2}]}`
		require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

		_, err := LoadReplay(path)
		assert.Error(t, err)
	})

	t.Run("rejects other versions", func(t *testing.T) {
		path := filepath.Join(dir, "old.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"version":"1.0","frames":[]}`), 0o644))

		_, err := LoadReplay(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadReplay(filepath.Join(dir, "nope.json"))
		assert.Error(t, err)
	})
}
