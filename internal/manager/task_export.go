package manager

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cutlineapp/cutline/pkg/export"
	"github.com/cutlineapp/cutline/pkg/logger"
	"github.com/cutlineapp/cutline/pkg/models"
)

// ExportTask renders a project span through the export driver.
type ExportTask struct {
	Project  *models.Project
	Options  export.Options
	Exporter *export.Exporter
}

func (t *ExportTask) GetDescription() string {
	return fmt.Sprintf("Exporting %g-%gs at %g fps", t.Options.Start, t.Options.End, t.Options.FrameRate)
}

// Run performs the export, logging duration and outcome. A context
// cancellation is reported as an abort, not a failure.
func (t *ExportTask) Run(ctx context.Context) (int, error) {
	started := time.Now()

	frames, err := t.Exporter.Export(ctx, t.Project, t.Options)
	switch {
	case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
		logger.Warnf("export aborted after %d frames (%s); partial output is the sink's to discard",
			frames, time.Since(started).Round(time.Millisecond))
		return frames, err
	case err != nil:
		logger.Errorf("export failed after %d frames: %v", frames, err)
		return frames, err
	}

	logger.Infof("export finished: %d frames in %s", frames, time.Since(started).Round(time.Millisecond))
	return frames, nil
}
