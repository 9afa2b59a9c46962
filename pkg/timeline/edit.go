package timeline

import (
	"github.com/google/uuid"

	"github.com/cutlineapp/cutline/pkg/arrange"
	"github.com/cutlineapp/cutline/pkg/edit"
	"github.com/cutlineapp/cutline/pkg/logger"
	"github.com/cutlineapp/cutline/pkg/models"
)

// Committed edit entry points. Each applies the arrangement solver,
// mutates the working graph and reports whether anything changed;
// failed preconditions are no-ops, never errors. History is written
// separately by Commit, exactly once per completed gesture.

// editable looks up a clip and refuses edits on locked tracks.
func (s *Service) editable(clipID uuid.UUID) (*models.Clip, *models.Track) {
	clip, track := s.project.FindClip(clipID)
	if clip == nil || track.Locked {
		return nil, nil
	}
	return clip, track
}

// AddClip places a new clip for an asset on a track, using first-fit
// placement when the preferred position is occupied.
func (s *Service) AddClip(trackID, assetID uuid.UUID, preferredStart float64) (*models.Clip, bool) {
	track := s.project.TrackByID(trackID)
	if track == nil || track.Locked {
		return nil, false
	}
	asset := s.project.Asset(assetID)
	if asset == nil {
		return nil, false
	}

	duration := asset.Duration
	if asset.Kind == models.AssetKindImage || duration <= 0 {
		duration = 5 // still images get a nominal length
	}

	clip := models.NewClip(assetID, 0, duration)
	clip.OutPoint = duration
	clip.Start = arrange.FindNextFit(track, preferredStart, clip.EffectiveDuration(), uuid.Nil, nil)
	track.Clips = append(track.Clips, clip)
	track.SortClips()
	return clip, true
}

// RemoveClip deletes a clip from its track.
func (s *Service) RemoveClip(clipID uuid.UUID) bool {
	clip, track := s.editable(clipID)
	if clip == nil {
		return false
	}
	return track.RemoveClip(clipID)
}

// MoveClip moves a clip to a new start position on its own track,
// constrained against its neighbors.
func (s *Service) MoveClip(clipID uuid.UUID, newStart float64) bool {
	clip, track := s.editable(clipID)
	if clip == nil {
		return false
	}
	clip.Start = arrange.Constrain(track, clipID, newStart, clip.EffectiveDuration(), nil)
	track.SortClips()
	return true
}

// MoveClipToTrack moves a clip to another track of the same kind,
// using first-fit placement near the preferred position.
func (s *Service) MoveClipToTrack(clipID, trackID uuid.UUID, preferredStart float64) bool {
	clip, src := s.editable(clipID)
	if clip == nil {
		return false
	}
	dst := s.project.TrackByID(trackID)
	if dst == nil || dst.Locked || dst.Kind != src.Kind {
		return false
	}

	clip.Start = arrange.FindNextFit(dst, preferredStart, clip.EffectiveDuration(), uuid.Nil, nil)
	src.RemoveClip(clipID)
	dst.Clips = append(dst.Clips, clip)
	dst.SortClips()
	return true
}

// MoveClips moves a group of clips by a uniform delta, preserving
// relative spacing. Returns the applied delta.
func (s *Service) MoveClips(clipIDs []uuid.UUID, proposedDelta float64) (float64, bool) {
	if len(clipIDs) == 0 {
		return 0, false
	}
	for _, id := range clipIDs {
		if clip, _ := s.editable(id); clip == nil {
			return 0, false
		}
	}

	delta := arrange.GroupDelta(s.project, clipIDs, proposedDelta)
	if delta == 0 {
		return 0, true
	}
	for _, id := range clipIDs {
		clip, track := s.project.FindClip(id)
		clip.Start += delta
		track.SortClips()
	}
	return delta, true
}

// TrimClip applies a trim gesture, constraining the moving edge
// against neighbors, the minimum duration floor and the source
// bounds, and adjusts the clip's in/out points to match.
func (s *Service) TrimClip(clipID uuid.UUID, newStart, newDuration float64) bool {
	clip, track := s.editable(clipID)
	if clip == nil {
		return false
	}

	start, duration := arrange.ConstrainTrim(track, clipID, clip.Start, clip.Duration, newStart, newDuration)

	// Shifting the start edge consumes or releases source media at
	// the in point; the source window may not leave the asset. A
	// timeline shift of the start edge maps to speed times as many
	// source seconds, and the window width always equals the nominal
	// duration.
	inDelta := (start - clip.Start) * clip.Speed()
	if clip.InPoint+inDelta < 0 {
		shift := -(clip.InPoint + inDelta)
		start += shift / clip.Speed()
		duration -= shift
		inDelta = -clip.InPoint
	}

	in := clip.InPoint + inDelta
	out := in + duration
	if asset := s.project.Asset(clip.AssetID); asset != nil && asset.Kind != models.AssetKindImage && out > asset.Duration {
		over := out - asset.Duration
		duration -= over
		out = asset.Duration
	}
	if duration < models.MinClipDuration {
		logger.Debugf("trim refused: clip %s has no source room left", clipID)
		return false
	}

	clip.Start = start
	clip.Duration = duration
	clip.InPoint = in
	clip.OutPoint = out
	track.SortClips()
	return true
}

// SplitClip cuts a clip at absolute timeline time t. Returns the new
// right-hand clip when the split is valid.
func (s *Service) SplitClip(clipID uuid.UUID, t float64) (*models.Clip, bool) {
	clip, track := s.editable(clipID)
	if clip == nil {
		return nil, false
	}

	left, right, ok := edit.Split(clip, t)
	if !ok {
		return nil, false
	}

	*clip = *left
	track.Clips = append(track.Clips, right)
	track.SortClips()
	return right, true
}

// ReverseClip toggles a clip's playback direction.
func (s *Service) ReverseClip(clipID uuid.UUID) bool {
	clip, _ := s.editable(clipID)
	if clip == nil {
		return false
	}
	return edit.Reverse(clip)
}

// SlipClip shifts a clip's source window by delta without moving it
// on the timeline. Returns the applied delta.
func (s *Service) SlipClip(clipID uuid.UUID, delta float64) (float64, bool) {
	clip, _ := s.editable(clipID)
	if clip == nil {
		return 0, false
	}

	asset := s.project.Asset(clip.AssetID)
	if asset == nil {
		// Missing media: the source window is unverifiable, slip
		// against the window itself so the gesture stays a no-op-safe
		// adjustment.
		return 0, false
	}
	return edit.Slip(clip, asset.Duration, delta), true
}
