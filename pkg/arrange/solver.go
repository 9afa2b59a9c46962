// Package arrange computes corrected, non-overlapping clip placements
// for editing gestures. It is purely geometric: spans are timeline
// seconds, obstacles are the other clips on the destination track.
package arrange

import (
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/cutlineapp/cutline/pkg/models"
)

// obstacles collects the spans on the track that the moving clip must
// not overlap, sorted by start.
func obstacles(track *models.Track, movingID uuid.UUID, exclude []uuid.UUID) []*models.Clip {
	skip := make(map[uuid.UUID]bool, len(exclude)+1)
	skip[movingID] = true
	for _, id := range exclude {
		skip[id] = true
	}

	var out []*models.Clip
	for _, c := range track.Clips {
		if !skip[c.ID] {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start < out[j].Start
	})
	return out
}

func overlaps(start, end float64, c *models.Clip) bool {
	return start < c.End() && end > c.Start
}

// Constrain corrects a proposed start position for a single-clip
// move. If the proposed span collides with another clip the start is
// clamped to the nearest free edge in the direction of travel: moving
// right stops at the obstacle's left edge minus duration, moving left
// stops at the obstacle's right edge. Clips in exclude (a co-dragged
// set) are not treated as obstacles.
func Constrain(track *models.Track, movingID uuid.UUID, proposedStart, duration float64, exclude []uuid.UUID) float64 {
	start := math.Max(0, proposedStart)

	moving := track.ClipByID(movingID)
	movingRight := moving == nil || start >= moving.Start

	obs := obstacles(track, movingID, exclude)

	// Each pass resolves at most one collision; pushing out of one
	// obstacle can land inside the next, so iterate.
	for i := 0; i <= len(obs); i++ {
		collided := false
		for _, o := range obs {
			if !overlaps(start, start+duration, o) {
				continue
			}
			if movingRight {
				start = o.Start - duration
			} else {
				start = o.End()
			}
			collided = true
			break
		}
		if !collided {
			break
		}
	}

	if start < 0 {
		// No room in the direction of travel; fall back to the first
		// position at or after zero that fits.
		start = FindNextFit(track, 0, duration, movingID, exclude)
	}
	return start
}

// ConstrainTrim corrects a proposed trim. Durations are nominal; the
// collision tests run on the clip's timeline span (duration divided
// by playback speed) so a slowed clip keeps its full footprint. The
// collision rule applies to whichever edge is moving; the result
// never shrinks below models.MinClipDuration.
func ConstrainTrim(track *models.Track, clipID uuid.UUID, oldStart, oldDuration, newStart, newDuration float64) (float64, float64) {
	speed := 1.0
	if c := track.ClipByID(clipID); c != nil {
		speed = c.Speed()
	}
	obs := obstacles(track, clipID, nil)

	oldEnd := oldStart + oldDuration/speed
	newEnd := newStart + newDuration/speed

	leftMoving := newStart != oldStart

	if leftMoving {
		// End edge is anchored; clamp the start edge.
		start := math.Max(0, newStart)
		for _, o := range obs {
			if overlaps(start, oldEnd, o) && o.Start < oldEnd {
				start = math.Max(start, o.End())
			}
		}
		start = math.Min(start, oldEnd-models.MinClipDuration/speed)
		return start, (oldEnd - start) * speed
	}

	// Start edge is anchored; clamp the end edge.
	end := newEnd
	for _, o := range obs {
		if overlaps(oldStart, end, o) && o.End() > oldStart {
			end = math.Min(end, o.Start)
		}
	}
	end = math.Max(end, oldStart+models.MinClipDuration/speed)
	return oldStart, (end - oldStart) * speed
}

// FindNextFit finds a start position for a clip arriving on a track,
// first-fit: the preferred position if free, else the first gap wide
// enough, else appended after the last clip. movingID and exclude are
// ignored as obstacles (zero values scan every clip).
func FindNextFit(track *models.Track, preferredStart, duration float64, movingID uuid.UUID, exclude []uuid.UUID) float64 {
	preferred := math.Max(0, preferredStart)
	obs := obstacles(track, movingID, exclude)

	free := true
	for _, o := range obs {
		if overlaps(preferred, preferred+duration, o) {
			free = false
			break
		}
	}
	if free {
		return preferred
	}

	// Scan gaps between sorted clips, including the gap before the
	// first clip.
	cursor := 0.0
	for _, o := range obs {
		if o.Start-cursor >= duration {
			return cursor
		}
		cursor = math.Max(cursor, o.End())
	}
	return cursor
}

// GroupDelta computes the uniform signed delta to apply to a dragged
// group of clips given a proposed delta. Each dragged clip's maximum
// safe delta is computed independently via Constrain; the delta with
// the smallest magnitude wins, preserving the group's relative
// spacing with no member colliding with a non-dragged clip.
func GroupDelta(p *models.Project, dragged []uuid.UUID, proposedDelta float64) float64 {
	if proposedDelta == 0 {
		return 0
	}

	result := proposedDelta
	for _, id := range dragged {
		clip, track := p.FindClip(id)
		if clip == nil {
			continue
		}
		safe := Constrain(track, id, clip.Start+proposedDelta, clip.EffectiveDuration(), dragged) - clip.Start
		if proposedDelta > 0 {
			result = math.Min(result, math.Max(0, safe))
		} else {
			result = math.Max(result, math.Min(0, safe))
		}
	}
	return result
}
