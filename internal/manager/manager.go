package manager

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/cutlineapp/cutline/internal/manager/config"
	"github.com/cutlineapp/cutline/pkg/export"
	"github.com/cutlineapp/cutline/pkg/logger"
	"github.com/cutlineapp/cutline/pkg/models"
	"github.com/cutlineapp/cutline/pkg/playback"
	"github.com/cutlineapp/cutline/pkg/timeline"
)

// Manager owns one editing session: the engine, its configuration
// and the media collaborators. It is created once at startup and
// passed explicitly to the API layer; there is no package-level
// instance.
//
// The fields are read-only after initialization; the values they
// point to change, the pointers do not.
type Manager struct {
	Config *config.Config

	Engine *timeline.Service

	// Prober resolves media metadata when assets are registered. May
	// be nil when no probing collaborator is attached.
	Prober models.MediaInfoProber
}

// RegisterAsset probes a media file (when a prober is attached) and
// places the resulting asset in the project arena. A caller-supplied
// duration is used as-is when probing is unavailable.
func (s *Manager) RegisterAsset(name string, kind models.AssetKind, path string, duration float64) (*models.Asset, error) {
	if s.Prober != nil {
		info, err := s.Prober.Probe(path)
		if err != nil {
			return nil, fmt.Errorf("probing %s: %w", path, err)
		}
		asset := models.NewAsset(name, kind, path, info.Duration)
		asset.Width = info.Width
		asset.Height = info.Height
		s.Engine.Project().AddAsset(asset)
		return asset, nil
	}

	if duration <= 0 && kind != models.AssetKindImage {
		return nil, fmt.Errorf("asset %s: no prober attached and no duration given", name)
	}
	asset := models.NewAsset(name, kind, path, duration)
	s.Engine.Project().AddAsset(asset)
	return asset, nil
}

// RemoveAsset drops an asset from the arena. Clips referencing it
// stay on the timeline and degrade to missing media.
func (s *Manager) RemoveAsset(id uuid.UUID) bool {
	removed := s.Engine.Project().RemoveAsset(id)
	if removed {
		logger.Infof("removed asset %s; clips referencing it resolve as missing media", id)
	}
	return removed
}

// NewPlayer builds a playback driver over the session engine with
// the configured seek tolerance.
func (s *Manager) NewPlayer(seeker playback.MediaSeeker, onTick playback.FrameFunc) *playback.Player {
	player := playback.NewPlayer(s.Engine, seeker, onTick)
	player.SeekTolerance = s.Config.GetSeekTolerance()
	return player
}

// Export runs a frame-exact export of the current project. The run
// is synchronous; cancel the context to abort between frames.
func (s *Manager) Export(ctx context.Context, opts export.Options, seeker export.FrameSeeker, sink export.FrameSink) (int, error) {
	task := ExportTask{
		Project:  s.Engine.Project(),
		Options:  opts,
		Exporter: &export.Exporter{Seeker: seeker, Sink: sink},
	}
	return task.Run(ctx)
}

// Shutdown releases session resources.
func (s *Manager) Shutdown() {
	logger.Info("shutting down")
}
