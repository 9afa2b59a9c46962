// Package playback drives interactive preview. Unlike export, the
// player tolerates a small drift before re-seeking the underlying
// media: every tick would otherwise trigger a seek and stutter
// playback.
package playback

import (
	"github.com/google/uuid"

	"github.com/cutlineapp/cutline/pkg/logger"
	"github.com/cutlineapp/cutline/pkg/models"
	"github.com/cutlineapp/cutline/pkg/timeline"
)

// DefaultSeekTolerance is the drift, in source seconds, tolerated
// before the player re-seeks.
const DefaultSeekTolerance = 0.25

// MediaSeeker positions the live decode object for an asset. It is
// expected to be cheap to call and to complete asynchronously.
type MediaSeeker interface {
	Seek(assetID uuid.UUID, sourceTime float64)
}

// FrameFunc receives the resolved state of the visible clips each
// tick, in track order.
type FrameFunc func(time float64, clips []ClipState)

// ClipState is one visible clip's resolved state at the playhead.
type ClipState struct {
	ClipID     uuid.UUID
	AssetID    uuid.UUID
	SourceTime float64
	Transform  models.Transform
	Volume     float64
	Missing    bool
}

// Player advances the playhead on a cooperative tick and tells the
// media collaborator where to be.
type Player struct {
	engine *timeline.Service
	seeker MediaSeeker
	onTick FrameFunc

	// SeekTolerance is the source-time drift allowed before
	// re-seeking. Zero means DefaultSeekTolerance.
	SeekTolerance float64

	// Loop wraps playback at the project duration instead of
	// stopping.
	Loop bool

	playing    bool
	lastSource map[uuid.UUID]float64
}

func NewPlayer(engine *timeline.Service, seeker MediaSeeker, onTick FrameFunc) *Player {
	return &Player{
		engine:     engine,
		seeker:     seeker,
		onTick:     onTick,
		lastSource: make(map[uuid.UUID]float64),
	}
}

func (p *Player) Playing() bool {
	return p.playing
}

func (p *Player) Play() {
	p.playing = true
}

func (p *Player) Pause() {
	p.playing = false
}

// Stop pauses and rewinds.
func (p *Player) Stop() {
	p.playing = false
	p.engine.SetPlayhead(0)
	p.invalidate()
}

// Seek moves the playhead directly and forces fresh media seeks on
// the next tick.
func (p *Player) Seek(t float64) {
	p.engine.SetPlayhead(t)
	p.invalidate()
}

func (p *Player) invalidate() {
	p.lastSource = make(map[uuid.UUID]float64)
}

func (p *Player) tolerance() float64 {
	if p.SeekTolerance > 0 {
		return p.SeekTolerance
	}
	return DefaultSeekTolerance
}

// Tick advances the playhead by dt seconds and resolves the visible
// clips, issuing media seeks only when a clip's mapped source time
// has drifted past the tolerance. A paused player still resolves (the
// playhead may have been moved by an edit) but does not advance.
func (p *Player) Tick(dt float64) {
	project := p.engine.Project()

	if p.playing {
		t := p.engine.Playhead() + dt
		if t >= project.Settings.Duration {
			if p.Loop {
				t = 0
				p.invalidate()
			} else {
				t = project.Settings.Duration
				p.playing = false
				logger.Debugf("[playback] reached end at %gs", t)
			}
		}
		p.engine.SetPlayhead(t)
	}

	now := p.engine.Playhead()
	var states []ClipState

	for _, track := range project.Tracks {
		if !track.Visible {
			continue
		}
		clip := track.ClipAt(now)
		if clip == nil {
			continue
		}

		tr := p.engine.ResolveTransform(clip.ID, now)
		if tr == nil {
			continue
		}
		src, _ := p.engine.MapToSourceTime(clip.ID, now)
		vol, _ := p.engine.ResolveVolume(clip.ID, now)

		missing := project.Asset(clip.AssetID) == nil
		if missing {
			// match the export placeholder: missing media is silent
			vol = 0
		} else {
			last, seen := p.lastSource[clip.ID]
			drift := src - last
			if drift < 0 {
				drift = -drift
			}
			if !seen || drift > p.tolerance() {
				p.seeker.Seek(clip.AssetID, src)
				p.lastSource[clip.ID] = src
			}
		}

		states = append(states, ClipState{
			ClipID:     clip.ID,
			AssetID:    clip.AssetID,
			SourceTime: src,
			Transform:  *tr,
			Volume:     vol,
			Missing:    missing,
		})
	}

	if p.onTick != nil {
		p.onTick(now, states)
	}
}
