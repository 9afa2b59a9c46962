package timeline

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cutlineapp/cutline/pkg/models"
)

func newTestService(t *testing.T) (*Service, *models.Asset, *models.Clip) {
	t.Helper()

	s := NewService(nil, 0)
	asset := models.NewAsset("a.mp4", models.AssetKindVideo, "/media/a.mp4", 30)
	s.Project().AddAsset(asset)

	clip, ok := s.AddClip(s.Project().Tracks[0].ID, asset.ID, 0)
	require.True(t, ok)
	return s, asset, clip
}

func TestAddClipUsesAssetDuration(t *testing.T) {
	s, asset, clip := newTestService(t)

	assert.Equal(t, asset.ID, clip.AssetID)
	assert.Equal(t, 0.0, clip.Start)
	assert.Equal(t, 30.0, clip.Duration)
	assert.Equal(t, 30.0, clip.OutPoint)

	// second clip lands after the first (first-fit)
	second, ok := s.AddClip(s.Project().Tracks[0].ID, asset.ID, 0)
	require.True(t, ok)
	assert.Equal(t, 30.0, second.Start)
}

func TestAddClipUnknownAsset(t *testing.T) {
	s, _, _ := newTestService(t)
	_, ok := s.AddClip(s.Project().Tracks[0].ID, uuid.New(), 0)
	assert.False(t, ok)
}

func TestMoveClipConstrained(t *testing.T) {
	s, asset, clip := newTestService(t)
	second, ok := s.AddClip(s.Project().Tracks[0].ID, asset.ID, 40)
	require.True(t, ok)

	// moving right into the second clip stops flush against it
	require.True(t, s.MoveClip(clip.ID, 35))
	assert.Equal(t, 10.0, clip.Start)
	assert.Equal(t, 40.0, second.Start)
}

func TestLockedTrackRefusesEdits(t *testing.T) {
	s, _, clip := newTestService(t)
	s.Project().Tracks[0].Locked = true

	assert.False(t, s.MoveClip(clip.ID, 5))
	assert.False(t, s.TrimClip(clip.ID, 0, 10))
	_, ok := s.SplitClip(clip.ID, 5)
	assert.False(t, ok)
	assert.False(t, s.ReverseClip(clip.ID))
	_, ok = s.SlipClip(clip.ID, 1)
	assert.False(t, ok)
	assert.False(t, s.RemoveClip(clip.ID))

	assert.Equal(t, 0.0, clip.Start, "graph untouched by refused edits")
}

func TestMoveNonexistentClip(t *testing.T) {
	s, _, _ := newTestService(t)
	assert.False(t, s.MoveClip(uuid.New(), 5))
}

func TestTrimAdjustsSourceWindow(t *testing.T) {
	s, _, clip := newTestService(t)

	// pull the start edge right by 5s
	require.True(t, s.TrimClip(clip.ID, 5, 25))
	assert.Equal(t, 5.0, clip.Start)
	assert.Equal(t, 25.0, clip.Duration)
	assert.Equal(t, 5.0, clip.InPoint)
	assert.Equal(t, 30.0, clip.OutPoint)

	// pull the end edge left by 10s
	require.True(t, s.TrimClip(clip.ID, 5, 15))
	assert.Equal(t, 15.0, clip.Duration)
	assert.Equal(t, 20.0, clip.OutPoint)
}

func TestTrimCannotExtendPastSource(t *testing.T) {
	s, _, clip := newTestService(t)

	// clip already exposes the full 30s asset; extending the end is
	// clamped back to the source
	require.True(t, s.TrimClip(clip.ID, 0, 45))
	assert.Equal(t, 30.0, clip.Duration)
	assert.Equal(t, 30.0, clip.OutPoint)
}

func TestSplitThenResolveSeam(t *testing.T) {
	s, _, clip := newTestService(t)

	right, ok := s.SplitClip(clip.ID, 12)
	require.True(t, ok)

	track := s.Project().Tracks[0]
	require.Len(t, track.Clips, 2)
	assert.Equal(t, 12.0, clip.Duration)
	assert.Equal(t, 12.0, clip.OutPoint)
	assert.Equal(t, 12.0, right.Start)
	assert.Equal(t, 18.0, right.Duration)
	assert.Equal(t, 12.0, right.InPoint)

	// source time is continuous across the cut
	before, ok := s.MapToSourceTime(clip.ID, 11.999)
	require.True(t, ok)
	after, ok := s.MapToSourceTime(right.ID, 12.001)
	require.True(t, ok)
	assert.InDelta(t, before, after, 0.01)
}

func TestReverseAndMap(t *testing.T) {
	s, _, clip := newTestService(t)

	require.True(t, s.ReverseClip(clip.ID))
	got, ok := s.MapToSourceTime(clip.ID, 0)
	require.True(t, ok)
	assert.InDelta(t, 30.0, got, 1e-9)

	require.True(t, s.ReverseClip(clip.ID))
	got, ok = s.MapToSourceTime(clip.ID, 0)
	require.True(t, ok)
	assert.InDelta(t, 0.0, got, 1e-9)
}

func TestSlipThroughService(t *testing.T) {
	s, _, clip := newTestService(t)
	require.True(t, s.TrimClip(clip.ID, 0, 10)) // window now [0, 10] of 30

	applied, ok := s.SlipClip(clip.ID, 12)
	require.True(t, ok)
	assert.Equal(t, 12.0, applied)
	assert.Equal(t, 12.0, clip.InPoint)
	assert.Equal(t, 22.0, clip.OutPoint)

	// clamped at the asset end
	applied, ok = s.SlipClip(clip.ID, 20)
	require.True(t, ok)
	assert.Equal(t, 8.0, applied)
	assert.Equal(t, 30.0, clip.OutPoint)
}

func TestSlipImageClipStaysInBounds(t *testing.T) {
	s, _, _ := newTestService(t)
	image := models.NewAsset("still.png", models.AssetKindImage, "/media/still.png", 0)
	s.Project().AddAsset(image)

	clip, ok := s.AddClip(s.Project().Tracks[0].ID, image.ID, 0)
	require.True(t, ok)

	// the nominal 5s window is wider than the zero-length asset, so
	// slipping in either direction is a no-op
	applied, ok := s.SlipClip(clip.ID, 1)
	require.True(t, ok)
	assert.Equal(t, 0.0, applied)
	assert.GreaterOrEqual(t, clip.InPoint, 0.0)

	applied, ok = s.SlipClip(clip.ID, -1)
	require.True(t, ok)
	assert.Equal(t, 0.0, applied)
	assert.GreaterOrEqual(t, clip.InPoint, 0.0)
	assert.Equal(t, 5.0, clip.OutPoint)
}

func TestTrimSlowClipAgainstNeighbor(t *testing.T) {
	s, asset, clip := newTestService(t)
	require.True(t, s.TrimClip(clip.ID, 0, 8))
	clip.PlaybackSpeed = 0.5 // [0, 16) on the timeline

	wall, ok := s.AddClip(s.Project().Tracks[0].ID, asset.ID, 18)
	require.True(t, ok)
	require.True(t, s.TrimClip(wall.ID, 18, 2))

	// extending to nominal 10 would span past the wall's start
	require.True(t, s.TrimClip(clip.ID, 0, 10))
	assert.Equal(t, 9.0, clip.Duration)
	assert.LessOrEqual(t, clip.End(), wall.Start)

	// the source window stays as wide as the nominal duration
	assert.Equal(t, clip.Duration, clip.OutPoint-clip.InPoint)
}

func TestResolveTransformMissingClip(t *testing.T) {
	s, _, _ := newTestService(t)
	assert.Nil(t, s.ResolveTransform(uuid.New(), 0))
}

func TestResolveTransformMissingAsset(t *testing.T) {
	s, asset, clip := newTestService(t)

	got := s.ResolveTransform(clip.ID, 1)
	require.NotNil(t, got)
	assert.Equal(t, models.IdentityTransform(), *got)

	// removing the asset degrades the clip, it does not break it
	require.True(t, s.Project().RemoveAsset(asset.ID))
	got = s.ResolveTransform(clip.ID, 1)
	require.NotNil(t, got)
	assert.Equal(t, models.MissingMediaTransform(), *got)

	src, ok := s.MapToSourceTime(clip.ID, 1)
	require.True(t, ok)
	assert.Equal(t, clip.InPoint, src)
}

func TestResolveTransformAnimated(t *testing.T) {
	s, _, clip := newTestService(t)
	clip.Transform = map[models.Property][]models.Keyframe{
		models.PropertyOpacity: {
			{Time: 0, Value: models.ScalarValue(0), Easing: models.EasingLinear},
			{Time: 10, Value: models.ScalarValue(1), Easing: models.EasingLinear},
		},
	}
	require.True(t, s.MoveClip(clip.ID, 0))

	got := s.ResolveTransform(clip.ID, 5)
	require.NotNil(t, got)
	assert.InDelta(t, 0.5, got.Opacity, 1e-9)
}

func TestCommitUndoRedoThroughService(t *testing.T) {
	s, _, clip := newTestService(t)
	require.NoError(t, s.Commit("Add clip"))

	require.True(t, s.MoveClip(clip.ID, 20))
	// the moved clip sits at 20 but nothing is committed yet
	require.NoError(t, s.Commit("Move clip"))

	require.True(t, s.CanUndo())
	require.True(t, s.Undo())
	c, _ := s.Project().FindClip(clip.ID)
	require.NotNil(t, c)
	assert.Equal(t, 0.0, c.Start)

	require.True(t, s.CanRedo())
	require.True(t, s.Redo())
	c, _ = s.Project().FindClip(clip.ID)
	assert.Equal(t, 20.0, c.Start)

	assert.Equal(t, []string{"Create project", "Add clip", "Move clip"}, s.HistoryLabels())
}

func TestPreviewDoesNotTouchHistory(t *testing.T) {
	s, _, clip := newTestService(t)
	require.NoError(t, s.Commit("Add clip"))
	entries := len(s.HistoryLabels())

	// a drag is many preview updates and one commit
	for _, raw := range []float64{1, 2.5, 4, 6, 8.25} {
		_, ok := s.PreviewMove(clip.ID, raw)
		require.True(t, ok)
	}
	assert.Len(t, s.HistoryLabels(), entries)

	s.EndGesture()
	require.NoError(t, s.Commit("Move clip"))
	assert.Len(t, s.HistoryLabels(), entries+1)
	assert.Equal(t, 8.25, clip.Start)
}

func TestPreviewMoveSnaps(t *testing.T) {
	s, asset, clip := newTestService(t)

	// a neighbor on the other video-capable position: use the audio
	// track for a snap target
	audio := s.Project().Tracks[1]
	neighbor, ok := s.AddClip(audio.ID, asset.ID, 40)
	require.True(t, ok)
	require.Equal(t, 40.0, neighbor.Start)

	// capture threshold is 10px * 0.05s/px = 0.5s
	got, ok := s.PreviewMove(clip.ID, 40.3)
	require.True(t, ok)
	assert.Equal(t, 40.0, got)

	// release threshold is 20px-equivalent = 1s
	got, ok = s.PreviewMove(clip.ID, 40.8)
	require.True(t, ok)
	assert.Equal(t, 40.0, got)

	got, ok = s.PreviewMove(clip.ID, 41.5)
	require.True(t, ok)
	assert.Equal(t, 41.5, got)
}

func TestMoveClipToTrack(t *testing.T) {
	s, asset, clip := newTestService(t)

	other := models.NewTrack(models.TrackKindVideo, "Video 2")
	s.Project().Tracks = append(s.Project().Tracks, other)

	require.True(t, s.MoveClipToTrack(clip.ID, other.ID, 3))
	assert.Empty(t, s.Project().Tracks[0].Clips)
	require.Len(t, other.Clips, 1)
	assert.Equal(t, 3.0, clip.Start)

	// kind mismatch is refused
	c2, ok := s.AddClip(other.ID, asset.ID, 50)
	require.True(t, ok)
	assert.False(t, s.MoveClipToTrack(c2.ID, s.Project().Tracks[1].ID, 0))
}

func TestMoveClipsGroup(t *testing.T) {
	s, asset, a := newTestService(t)
	require.True(t, s.TrimClip(a.ID, 0, 5))
	b, ok := s.AddClip(s.Project().Tracks[0].ID, asset.ID, 8)
	require.True(t, ok)
	require.True(t, s.TrimClip(b.ID, 8, 5))
	wall, ok := s.AddClip(s.Project().Tracks[0].ID, asset.ID, 20)
	require.True(t, ok)
	require.True(t, s.TrimClip(wall.ID, 20, 5))

	// b may move at most 7 before hitting the wall at 20
	delta, ok := s.MoveClips([]uuid.UUID{a.ID, b.ID}, 10)
	require.True(t, ok)
	assert.Equal(t, 7.0, delta)
	assert.Equal(t, 7.0, a.Start)
	assert.Equal(t, 15.0, b.Start)
}
