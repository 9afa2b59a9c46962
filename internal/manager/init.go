package manager

import (
	"fmt"

	"github.com/cutlineapp/cutline/internal/manager/config"
	"github.com/cutlineapp/cutline/pkg/logger"
	"github.com/cutlineapp/cutline/pkg/models"
	"github.com/cutlineapp/cutline/pkg/timeline"
)

// Initialize wires a session from configuration. Only called once at
// startup.
func Initialize() (*Manager, error) {
	cfg, err := config.Initialize()
	if err != nil {
		return nil, fmt.Errorf("initializing configuration: %w", err)
	}

	return initialize(cfg)
}

// InitializeWithConfig wires a session from a prepared config. Used
// by tests.
func InitializeWithConfig(cfg *config.Config) (*Manager, error) {
	return initialize(cfg)
}

func initialize(cfg *config.Config) (*Manager, error) {
	logger.SetLogLevel(cfg.GetLogLevel())

	project := models.NewProject()
	project.Settings = models.Settings{
		FrameRate:    cfg.GetFrameRate(),
		CanvasWidth:  cfg.GetCanvasWidth(),
		CanvasHeight: cfg.GetCanvasHeight(),
		Duration:     cfg.GetDuration(),
	}

	engine := timeline.NewService(project, cfg.GetHistoryMaxEntries())
	engine.SetSnapThresholds(cfg.GetSnapCapturePx(), cfg.GetSnapReleasePx())

	mgr := &Manager{
		Config: cfg,
		Engine: engine,
	}

	logger.Infof("session initialized: %gfps, %dx%d, %gs",
		cfg.GetFrameRate(), cfg.GetCanvasWidth(), cfg.GetCanvasHeight(), cfg.GetDuration())
	return mgr, nil
}
