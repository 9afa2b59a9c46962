// Package timeline is the engine facade: it owns the working project
// graph and exposes the two edit surfaces (transient previews and
// committed edits), the history entry points, and the resolve/map
// queries consumed by the rendering and media collaborators.
package timeline

import (
	"github.com/google/uuid"

	"github.com/cutlineapp/cutline/pkg/arrange"
	"github.com/cutlineapp/cutline/pkg/history"
	"github.com/cutlineapp/cutline/pkg/models"
	"github.com/cutlineapp/cutline/pkg/timemap"
	"github.com/cutlineapp/cutline/pkg/transform"
)

// Service is the engine object. It is passed explicitly to every
// collaborator; there is no ambient singleton.
type Service struct {
	project *models.Project
	history *history.Manager
	snapper *arrange.Snapper

	selection models.Selection
	playhead  float64

	// secondsPerPixel is the time-to-pixel scale supplied by the
	// presentation layer, used to convert snap thresholds.
	secondsPerPixel float64
}

func NewService(project *models.Project, maxHistory int) *Service {
	if project == nil {
		project = models.NewProject()
	}
	s := &Service{
		project:         project,
		history:         history.NewManager(maxHistory),
		snapper:         arrange.NewSnapper(),
		secondsPerPixel: 0.05,
	}
	// Seed history so the first committed edit can be undone back to
	// the pristine graph.
	_ = s.history.Commit("Create project", s.project, s.selection)
	return s
}

// Project returns the working graph.
func (s *Service) Project() *models.Project {
	return s.project
}

// SetSecondsPerPixel updates the snap conversion scale. Values <= 0
// are ignored.
func (s *Service) SetSecondsPerPixel(v float64) {
	if v > 0 {
		s.secondsPerPixel = v
	}
}

// SetSnapThresholds overrides the pixel-space capture and release
// distances. Non-positive or inverted values are ignored.
func (s *Service) SetSnapThresholds(capturePx, releasePx float64) {
	if capturePx > 0 && releasePx >= capturePx {
		s.snapper.CapturePx = capturePx
		s.snapper.ReleasePx = releasePx
	}
}

// Playhead returns the current time cursor.
func (s *Service) Playhead() float64 {
	return s.playhead
}

// SetPlayhead moves the time cursor, clamped to [0, duration].
func (s *Service) SetPlayhead(t float64) {
	if t < 0 {
		t = 0
	}
	if t > s.project.Settings.Duration {
		t = s.project.Settings.Duration
	}
	s.playhead = t
}

// Select replaces the current selection.
func (s *Service) Select(clipIDs ...uuid.UUID) {
	s.selection = models.Selection{ClipIDs: append([]uuid.UUID{}, clipIDs...)}
}

// Selection returns the current selection.
func (s *Service) Selection() models.Selection {
	return s.selection
}

// ResolveTransform computes the visual transform of a clip at
// absolute timeline time t. Returns nil when the clip is unknown; a
// clip whose asset has been removed resolves to the missing-media
// placeholder rather than failing.
func (s *Service) ResolveTransform(clipID uuid.UUID, t float64) *models.Transform {
	clip, _ := s.project.FindClip(clipID)
	if clip == nil {
		return nil
	}
	if s.project.Asset(clip.AssetID) == nil {
		out := models.MissingMediaTransform()
		return &out
	}
	out := transform.Resolve(clip, timemap.RelativeTime(clip, t))
	return &out
}

// ResolveVolume computes a clip's audio volume at absolute timeline
// time t.
func (s *Service) ResolveVolume(clipID uuid.UUID, t float64) (float64, bool) {
	clip, _ := s.project.FindClip(clipID)
	if clip == nil {
		return 0, false
	}
	return transform.ResolveVolume(clip, timemap.RelativeTime(clip, t)), true
}

// MapToSourceTime converts absolute timeline time to source-media
// time for a clip. A clip with a missing asset maps to its in point
// as a placeholder.
func (s *Service) MapToSourceTime(clipID uuid.UUID, t float64) (float64, bool) {
	clip, _ := s.project.FindClip(clipID)
	if clip == nil {
		return 0, false
	}
	if s.project.Asset(clip.AssetID) == nil {
		return clip.InPoint, true
	}
	return timemap.SourceTime(clip, t), true
}

// ClipAt returns the clip under timeline time t on the given track,
// or nil.
func (s *Service) ClipAt(trackID uuid.UUID, t float64) *models.Clip {
	track := s.project.TrackByID(trackID)
	if track == nil {
		return nil
	}
	return track.ClipAt(t)
}

// Commit writes one history entry for a completed gesture. Transient
// preview updates must not call this.
func (s *Service) Commit(label string) error {
	return s.history.Commit(label, s.project, s.selection)
}

// Undo restores the previous snapshot. The restored graph replaces
// the working graph; callers re-associate live decode handles by
// asset identity afterwards.
func (s *Service) Undo() bool {
	project, sel, ok := s.history.Undo()
	if !ok {
		return false
	}
	s.project = project
	s.selection = sel
	return true
}

// Redo restores the next snapshot.
func (s *Service) Redo() bool {
	project, sel, ok := s.history.Redo()
	if !ok {
		return false
	}
	s.project = project
	s.selection = sel
	return true
}

func (s *Service) CanUndo() bool {
	return s.history.CanUndo()
}

func (s *Service) CanRedo() bool {
	return s.history.CanRedo()
}

// HistoryLabels exposes the committed action labels, oldest first.
func (s *Service) HistoryLabels() []string {
	return s.history.Labels()
}
