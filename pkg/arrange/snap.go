package arrange

import (
	"math"

	"github.com/google/uuid"

	"github.com/cutlineapp/cutline/pkg/models"
)

// Default magnetic snapping thresholds, in pixels. The presentation
// layer supplies the seconds-per-pixel scale to convert them to time.
const (
	DefaultCapturePx = 10
	DefaultReleasePx = 20
)

// Snapper performs magnetic snapping of clip edges to the edges of
// clips on other tracks and to the playhead. Once snapped, the
// proposal must move past the larger release threshold before the
// snap lets go (hysteresis, avoids jitter while hovering near a
// target).
type Snapper struct {
	CapturePx float64
	ReleasePx float64

	snapped bool
	held    float64 // snapped start (or edge) position while held
}

func NewSnapper() *Snapper {
	return &Snapper{
		CapturePx: DefaultCapturePx,
		ReleasePx: DefaultReleasePx,
	}
}

// Reset clears any held snap. Call when a gesture ends.
func (s *Snapper) Reset() {
	s.snapped = false
	s.held = 0
}

// Snapped reports whether a snap is currently held.
func (s *Snapper) Snapped() bool {
	return s.snapped
}

// targets are the snap candidates: start/end of every clip on tracks
// other than the moving clip's own, plus the playhead.
func targets(p *models.Project, trackID uuid.UUID, playhead float64) []float64 {
	out := []float64{playhead}
	for _, t := range p.Tracks {
		if t.ID == trackID {
			continue
		}
		for _, c := range t.Clips {
			out = append(out, c.Start, c.End())
		}
	}
	return out
}

// SnapMove returns the start position for a moving clip after
// magnetic snapping. Both edges of the moving span are candidates.
func (s *Snapper) SnapMove(p *models.Project, trackID uuid.UUID, rawStart, duration, playhead, secondsPerPixel float64) float64 {
	capture := s.CapturePx * secondsPerPixel
	release := s.ReleasePx * secondsPerPixel

	if s.snapped {
		if math.Abs(rawStart-s.held) <= release {
			return s.held
		}
		s.snapped = false
	}

	best := rawStart
	bestDist := math.Inf(1)
	for _, target := range targets(p, trackID, playhead) {
		// start edge on target
		if d := math.Abs(rawStart - target); d < bestDist {
			best, bestDist = target, d
		}
		// end edge on target
		if d := math.Abs(rawStart + duration - target); d < bestDist {
			best, bestDist = target-duration, d
		}
	}

	if bestDist <= capture {
		s.snapped = true
		s.held = best
		return best
	}
	return rawStart
}

// SnapEdge returns the position for a single moving edge (trim) after
// magnetic snapping.
func (s *Snapper) SnapEdge(p *models.Project, trackID uuid.UUID, rawEdge, playhead, secondsPerPixel float64) float64 {
	capture := s.CapturePx * secondsPerPixel
	release := s.ReleasePx * secondsPerPixel

	if s.snapped {
		if math.Abs(rawEdge-s.held) <= release {
			return s.held
		}
		s.snapped = false
	}

	best := rawEdge
	bestDist := math.Inf(1)
	for _, target := range targets(p, trackID, playhead) {
		if d := math.Abs(rawEdge - target); d < bestDist {
			best, bestDist = target, d
		}
	}

	if bestDist <= capture {
		s.snapped = true
		s.held = best
		return best
	}
	return rawEdge
}
