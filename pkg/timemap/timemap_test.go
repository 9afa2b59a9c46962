package timemap

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/cutlineapp/cutline/pkg/models"
)

func TestSourceTimeForward(t *testing.T) {
	clip := models.NewClip(uuid.New(), 2, 6)
	clip.InPoint = 3
	clip.OutPoint = 9

	assert.InDelta(t, 3.0, SourceTime(clip, 2), 1e-9)
	assert.InDelta(t, 4.0, SourceTime(clip, 3), 1e-9)
	assert.InDelta(t, 9.0, SourceTime(clip, 8), 1e-9)
}

func TestSourceTimeClampsOutsideSpan(t *testing.T) {
	clip := models.NewClip(uuid.New(), 2, 6)
	clip.InPoint = 3
	clip.OutPoint = 9

	assert.InDelta(t, 3.0, SourceTime(clip, -5), 1e-9)
	assert.InDelta(t, 9.0, SourceTime(clip, 100), 1e-9)
}

func TestSourceTimeSpeed(t *testing.T) {
	clip := models.NewClip(uuid.New(), 0, 8)
	clip.OutPoint = 8
	clip.PlaybackSpeed = 2

	// effective duration is 4; one timeline second covers two source
	// seconds
	assert.InDelta(t, 2.0, SourceTime(clip, 1), 1e-9)
	assert.InDelta(t, 8.0, SourceTime(clip, 4), 1e-9)
	assert.InDelta(t, 8.0, SourceTime(clip, 6), 1e-9)
}

func TestSourceTimeReversed(t *testing.T) {
	clip := models.NewClip(uuid.New(), 0, 10)
	clip.InPoint = 2
	clip.OutPoint = 12
	clip.Reversed = true

	assert.InDelta(t, 12.0, SourceTime(clip, 0), 1e-9)
	assert.InDelta(t, 7.0, SourceTime(clip, 5), 1e-9)
	assert.InDelta(t, 2.0, SourceTime(clip, 10), 1e-9)
}

// Reversing twice restores the mapping for every sampled time.
func TestDoubleReverseRestoresMapping(t *testing.T) {
	clip := models.NewClip(uuid.New(), 1, 7)
	clip.InPoint = 0.5
	clip.OutPoint = 7.5
	clip.PlaybackSpeed = 1

	var before []float64
	for tt := 0.0; tt <= 9; tt += 0.25 {
		before = append(before, SourceTime(clip, tt))
	}

	clip.Reversed = !clip.Reversed
	clip.Reversed = !clip.Reversed

	i := 0
	for tt := 0.0; tt <= 9; tt += 0.25 {
		assert.Equal(t, before[i], SourceTime(clip, tt), "t=%v", tt)
		i++
	}
}
