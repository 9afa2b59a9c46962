package arrange

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/cutlineapp/cutline/pkg/models"
)

// one pixel == 0.05s at this scale, so capture = 0.5s, release = 1s
const testScale = 0.05

func snapProject() (*models.Project, *models.Track) {
	p := models.NewProject()
	other := p.Tracks[1]
	neighbor := models.NewClip(uuid.New(), 4, 2) // edges at 4 and 6
	other.Clips = append(other.Clips, neighbor)
	return p, p.Tracks[0]
}

func TestSnapMoveCapturesNeighborEnd(t *testing.T) {
	p, track := snapProject()
	s := NewSnapper()

	// raw start 6.3 is within 0.5s of the neighbor's end at 6
	got := s.SnapMove(p, track.ID, 6.3, 2, 0, testScale)
	assert.Equal(t, 6.0, got)
	assert.True(t, s.Snapped())
}

func TestSnapMoveEndEdge(t *testing.T) {
	p, track := snapProject()
	s := NewSnapper()

	// raw span [1.8, 3.8); its end is within threshold of the
	// neighbor's start at 4, so the clip lands at 4 - 2 = 2
	got := s.SnapMove(p, track.ID, 1.8, 2, 0, testScale)
	assert.Equal(t, 2.0, got)
}

func TestSnapMoveOutOfRange(t *testing.T) {
	p, track := snapProject()
	s := NewSnapper()

	got := s.SnapMove(p, track.ID, 8.7, 2, 0, testScale)
	assert.Equal(t, 8.7, got)
	assert.False(t, s.Snapped())
}

func TestSnapMoveHysteresis(t *testing.T) {
	p, track := snapProject()
	s := NewSnapper()

	got := s.SnapMove(p, track.ID, 6.2, 2, 0, testScale)
	assert.Equal(t, 6.0, got)

	// moving past the capture threshold but inside the release
	// threshold keeps the snap held
	got = s.SnapMove(p, track.ID, 6.8, 2, 0, testScale)
	assert.Equal(t, 6.0, got)

	// past the release threshold the raw position comes back
	got = s.SnapMove(p, track.ID, 7.4, 2, 0, testScale)
	assert.Equal(t, 7.4, got)
	assert.False(t, s.Snapped())
}

func TestSnapToPlayhead(t *testing.T) {
	p, track := snapProject()
	s := NewSnapper()

	got := s.SnapMove(p, track.ID, 12.1, 2, 12, testScale)
	assert.Equal(t, 12.0, got)
}

func TestSnapIgnoresOwnTrack(t *testing.T) {
	p := models.NewProject()
	track := p.Tracks[0]
	track.Clips = append(track.Clips, models.NewClip(uuid.New(), 4, 2))
	s := NewSnapper()

	// the only nearby edge is on the moving clip's own track; no snap
	// (playhead far away)
	got := s.SnapMove(p, track.ID, 6.2, 2, 100, testScale)
	assert.Equal(t, 6.2, got)
}

func TestSnapEdgeForTrim(t *testing.T) {
	p, track := snapProject()
	s := NewSnapper()

	got := s.SnapEdge(p, track.ID, 4.3, 0, testScale)
	assert.Equal(t, 4.0, got)

	s.Reset()
	got = s.SnapEdge(p, track.ID, 2.9, 0, testScale)
	assert.Equal(t, 2.9, got)
}
