package models

import (
	"sort"

	"github.com/google/uuid"
)

// TrackKind is the media type of a track.
type TrackKind string

const (
	TrackKindVideo TrackKind = "video"
	TrackKindAudio TrackKind = "audio"
)

// Track is an ordered list of clips. Invariant: clip spans on one
// track never overlap.
type Track struct {
	ID      uuid.UUID `json:"id"`
	Kind    TrackKind `json:"kind"`
	Name    string    `json:"name"`
	Visible bool      `json:"visible"`
	Locked  bool      `json:"locked"`
	Clips   []*Clip   `json:"clips"`
}

func NewTrack(kind TrackKind, name string) *Track {
	return &Track{
		ID:      uuid.New(),
		Kind:    kind,
		Name:    name,
		Visible: true,
	}
}

// ClipByID returns the clip with the given ID, or nil.
func (t *Track) ClipByID(id uuid.UUID) *Clip {
	for _, c := range t.Clips {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// ClipAt returns the clip whose span contains timeline time tt, or
// nil.
func (t *Track) ClipAt(tt float64) *Clip {
	for _, c := range t.Clips {
		if c.Contains(tt) {
			return c
		}
	}
	return nil
}

// RemoveClip removes the clip with the given ID, reporting whether it
// was present.
func (t *Track) RemoveClip(id uuid.UUID) bool {
	for i, c := range t.Clips {
		if c.ID == id {
			t.Clips = append(t.Clips[:i], t.Clips[i+1:]...)
			return true
		}
	}
	return false
}

// SortClips orders the track's clips by start time.
func (t *Track) SortClips() {
	sort.SliceStable(t.Clips, func(i, j int) bool {
		return t.Clips[i].Start < t.Clips[j].Start
	})
}
