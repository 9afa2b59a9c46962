package timeline

import (
	"github.com/google/uuid"

	"github.com/cutlineapp/cutline/pkg/arrange"
)

// Transient gesture surface. Preview calls mutate the working graph
// for live feedback but never touch history; the gesture's single
// Commit happens when it ends. Snapping applies here only - committed
// entry points take positions as given.

// PreviewMove updates a clip's position mid-drag: magnetic snapping
// against other tracks and the playhead, then collision constraint on
// its own track. Returns the corrected start.
func (s *Service) PreviewMove(clipID uuid.UUID, rawStart float64) (float64, bool) {
	clip, track := s.editable(clipID)
	if clip == nil {
		return 0, false
	}

	start := s.snapper.SnapMove(s.project, track.ID, rawStart, clip.EffectiveDuration(), s.playhead, s.secondsPerPixel)
	start = arrange.Constrain(track, clipID, start, clip.EffectiveDuration(), nil)
	clip.Start = start
	return start, true
}

// PreviewTrimStart updates the clip's start edge mid-trim. Snapping
// applies to the moving edge only. Returns the corrected edge.
func (s *Service) PreviewTrimStart(clipID uuid.UUID, rawStart float64) (float64, bool) {
	clip, track := s.editable(clipID)
	if clip == nil {
		return 0, false
	}

	end := clip.End()
	edge := s.snapper.SnapEdge(s.project, track.ID, rawStart, s.playhead, s.secondsPerPixel)
	start, duration := arrange.ConstrainTrim(track, clipID, clip.Start, clip.Duration, edge, (end-edge)*clip.Speed())
	clip.Start = start
	clip.Duration = duration
	return start, true
}

// PreviewTrimEnd updates the clip's end edge mid-trim.
func (s *Service) PreviewTrimEnd(clipID uuid.UUID, rawEnd float64) (float64, bool) {
	clip, track := s.editable(clipID)
	if clip == nil {
		return 0, false
	}

	edge := s.snapper.SnapEdge(s.project, track.ID, rawEnd, s.playhead, s.secondsPerPixel)
	start, duration := arrange.ConstrainTrim(track, clipID, clip.Start, clip.Duration, clip.Start, (edge-clip.Start)*clip.Speed())
	clip.Start = start
	clip.Duration = duration
	return clip.End(), true
}

// PreviewGroupMove updates a dragged group mid-drag, applying the
// smallest safe uniform delta. Returns the applied delta.
func (s *Service) PreviewGroupMove(clipIDs []uuid.UUID, proposedDelta float64) (float64, bool) {
	if len(clipIDs) == 0 {
		return 0, false
	}
	for _, id := range clipIDs {
		if clip, _ := s.editable(id); clip == nil {
			return 0, false
		}
	}

	delta := arrange.GroupDelta(s.project, clipIDs, proposedDelta)
	for _, id := range clipIDs {
		clip, track := s.project.FindClip(id)
		clip.Start += delta
		track.SortClips()
	}
	return delta, true
}

// EndGesture releases any held snap. Call when the pointer is
// released, before the gesture's Commit.
func (s *Service) EndGesture() {
	s.snapper.Reset()
}
