package export

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cutlineapp/cutline/pkg/models"
)

type seekCall struct {
	assetID    uuid.UUID
	sourceTime float64
}

type recordingSeeker struct {
	calls []seekCall
	err   error
}

func (r *recordingSeeker) Seek(_ context.Context, assetID uuid.UUID, sourceTime float64) error {
	if r.err != nil {
		return r.err
	}
	r.calls = append(r.calls, seekCall{assetID, sourceTime})
	return nil
}

type recordingSink struct {
	frames   []Frame
	failAt   int
	cancel   context.CancelFunc
	cancelAt int
}

func (r *recordingSink) WriteFrame(_ context.Context, f Frame) error {
	if r.failAt > 0 && f.Index == r.failAt {
		return errors.New("sink full")
	}
	r.frames = append(r.frames, f)
	if r.cancel != nil && f.Index == r.cancelAt {
		r.cancel()
	}
	return nil
}

func exportProject() (*models.Project, *models.Clip) {
	p := models.NewProject()
	p.Settings.FrameRate = 10
	p.Settings.Duration = 2

	asset := models.NewAsset("a.mp4", models.AssetKindVideo, "/media/a.mp4", 30)
	p.AddAsset(asset)

	clip := models.NewClip(asset.ID, 0, 2)
	clip.OutPoint = 2
	p.Tracks[0].Clips = append(p.Tracks[0].Clips, clip)
	return p, clip
}

func TestExportFrameExact(t *testing.T) {
	p, clip := exportProject()
	seeker := &recordingSeeker{}
	sink := &recordingSink{}
	e := &Exporter{Seeker: seeker, Sink: sink}

	n, err := e.Export(context.Background(), p, Options{})
	require.NoError(t, err)
	assert.Equal(t, 20, n)
	require.Len(t, sink.frames, 20)

	// frames arrive in order with exact times and one mapping
	// evaluation per frame
	require.Len(t, seeker.calls, 20)
	for i, f := range sink.frames {
		assert.Equal(t, i, f.Index)
		assert.InDelta(t, float64(i)/10, f.Time, 1e-9)
		require.Len(t, f.Samples, 1)
		assert.Equal(t, clip.ID, f.Samples[0].ClipID)
		assert.InDelta(t, float64(i)/10, f.Samples[0].SourceTime, 1e-9)
		assert.Equal(t, seeker.calls[i].sourceTime, f.Samples[0].SourceTime)
	}
}

func TestExportReversedClipMapsBackwards(t *testing.T) {
	p, clip := exportProject()
	clip.Reversed = true
	seeker := &recordingSeeker{}
	sink := &recordingSink{}
	e := &Exporter{Seeker: seeker, Sink: sink}

	_, err := e.Export(context.Background(), p, Options{})
	require.NoError(t, err)

	first := sink.frames[0].Samples[0].SourceTime
	last := sink.frames[len(sink.frames)-1].Samples[0].SourceTime
	assert.Greater(t, first, last)
	assert.InDelta(t, 2.0, first, 1e-9)
}

func TestExportSkipsHiddenTracksAndGaps(t *testing.T) {
	p, _ := exportProject()
	p.Tracks[0].Visible = false
	seeker := &recordingSeeker{}
	sink := &recordingSink{}
	e := &Exporter{Seeker: seeker, Sink: sink}

	n, err := e.Export(context.Background(), p, Options{})
	require.NoError(t, err)
	assert.Equal(t, 20, n)
	for _, f := range sink.frames {
		assert.Empty(t, f.Samples)
	}
	assert.Empty(t, seeker.calls)
}

func TestExportMissingAssetDegrades(t *testing.T) {
	p, clip := exportProject()
	delete(p.Assets, clip.AssetID)
	seeker := &recordingSeeker{}
	sink := &recordingSink{}
	e := &Exporter{Seeker: seeker, Sink: sink}

	_, err := e.Export(context.Background(), p, Options{})
	require.NoError(t, err)

	sample := sink.frames[0].Samples[0]
	assert.True(t, sample.Missing)
	assert.Equal(t, models.MissingMediaTransform(), sample.Transform)
	// no seeks are issued for missing media
	assert.Empty(t, seeker.calls)
}

func TestExportCancelledBetweenFrames(t *testing.T) {
	p, _ := exportProject()
	ctx, cancel := context.WithCancel(context.Background())
	seeker := &recordingSeeker{}
	sink := &recordingSink{cancel: cancel, cancelAt: 4}
	e := &Exporter{Seeker: seeker, Sink: sink}

	n, err := e.Export(ctx, p, Options{})
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 5, n)
	// the in-flight frame finished; nothing after it started
	assert.Len(t, sink.frames, 5)
}

func TestExportSinkError(t *testing.T) {
	p, _ := exportProject()
	seeker := &recordingSeeker{}
	sink := &recordingSink{failAt: 3}
	e := &Exporter{Seeker: seeker, Sink: sink}

	_, err := e.Export(context.Background(), p, Options{})
	require.Error(t, err)
	assert.Len(t, sink.frames, 3)
}

func TestExportWindow(t *testing.T) {
	p, _ := exportProject()
	seeker := &recordingSeeker{}
	sink := &recordingSink{}
	e := &Exporter{Seeker: seeker, Sink: sink}

	n, err := e.Export(context.Background(), p, Options{FrameRate: 10, Start: 0.5, End: 1.5})
	require.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.InDelta(t, 0.5, sink.frames[0].Time, 1e-9)
}
