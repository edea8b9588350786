package segmenter

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nguyentantai21042004/voice-summarizer/internal/logger"
)

type extraction struct {
	output        string
	start, length float64
}

type fakeTool struct {
	duration    float64
	durationErr error
	extractErr  error
	extractions []extraction
}

func (f *fakeTool) CheckTools(ctx context.Context) error { return nil }

func (f *fakeTool) Duration(ctx context.Context, path string) (float64, error) {
	return f.duration, f.durationErr
}

func (f *fakeTool) Extract(ctx context.Context, input, output string, start, length float64) error {
	if f.extractErr != nil {
		return f.extractErr
	}
	f.extractions = append(f.extractions, extraction{output: output, start: start, length: length})
	return os.WriteFile(output, []byte("mp3"), 0644)
}

func TestPlan(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
		want     []Segment
	}{
		{
			name:     "remainder yields a short final segment",
			duration: 1200,
			want: []Segment{
				{Index: 1, Start: 0, Length: 570},
				{Index: 2, Start: 570, Length: 570},
				{Index: 3, Start: 1140, Length: 60},
			},
		},
		{
			name:     "exact multiple",
			duration: 1140,
			want: []Segment{
				{Index: 1, Start: 0, Length: 570},
				{Index: 2, Start: 570, Length: 570},
			},
		},
		{
			name:     "shorter than one segment",
			duration: 42.5,
			want:     []Segment{{Index: 1, Start: 0, Length: 42.5}},
		},
		{
			name:     "zero duration still has one segment",
			duration: 0,
			want:     []Segment{{Index: 1, Start: 0, Length: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Plan(tt.duration, 570))
		})
	}
}

func TestPlanPartitionsDuration(t *testing.T) {
	for _, d := range []float64{1, 569.9, 570, 570.1, 1139.75, 3600, 7777.7} {
		segs := Plan(d, 570)
		require.NotEmpty(t, segs)

		var covered float64
		for i, s := range segs {
			assert.Equal(t, covered, s.Start, "segment %d must start where the previous ended", i+1)
			assert.Greater(t, s.Length, 0.0)
			assert.LessOrEqual(t, s.Length, 570.0)
			covered = s.End()
		}
		assert.InDelta(t, d, covered, 1e-9)

		last := segs[len(segs)-1]
		assert.InDelta(t, d-float64(len(segs)-1)*570, last.Length, 1e-9)
	}
}

func TestPlanInvalidInput(t *testing.T) {
	assert.Nil(t, Plan(100, 0))
	assert.Nil(t, Plan(-1, 570))
}

func TestSegmentName(t *testing.T) {
	assert.Equal(t, "name_segment_001.mp3", SegmentName("name", 1))
	assert.Equal(t, "name_segment_120.mp3", SegmentName("name", 120))
	assert.Equal(t, "talk.final", Stem("input/talk.final.mp4"))
}

func realTempDir(t *testing.T) string {
	t.Helper()
	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

func TestSafePath(t *testing.T) {
	root := realTempDir(t)

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr bool
	}{
		{"relative child", "Media/talk.mp4", filepath.Join(root, "Media", "talk.mp4"), false},
		{"root itself", ".", root, false},
		{"absolute child", filepath.Join(root, "a"), filepath.Join(root, "a"), false},
		{"parent traversal", "../elsewhere", "", true},
		{"hidden traversal", "Output/../../etc", "", true},
		{"absolute outside", "/etc", "", true},
		{"dotdot-prefixed name stays inside", "..cache", filepath.Join(root, "..cache"), false},
		{"symlinked dir inside root", "inner/talk.mp4", filepath.Join(root, "real", "talk.mp4"), false},
		{"symlinked dir escaping root", "Output/talk.mp4", "", true},
		{"symlinked dir escaping root itself", "Output", "", true},
	}

	outside := realTempDir(t)
	require.NoError(t, os.Mkdir(filepath.Join(root, "real"), 0755))
	require.NoError(t, os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "inner")))
	require.NoError(t, os.Symlink(outside, filepath.Join(root, "Output")))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SafePath(root, tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsafePath)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSplitCreatesSegments(t *testing.T) {
	root := realTempDir(t)
	tool := &fakeTool{duration: 1200}
	seg := New(tool, 570, root, logger.Discard())

	paths, err := seg.Split(context.Background(), "input/name.mp4", "Output/name.mp4/segments")
	require.NoError(t, err)

	dir := filepath.Join(root, "Output", "name.mp4", "segments")
	assert.Equal(t, []string{
		filepath.Join(dir, "name_segment_001.mp3"),
		filepath.Join(dir, "name_segment_002.mp3"),
		filepath.Join(dir, "name_segment_003.mp3"),
	}, paths)

	require.Len(t, tool.extractions, 3)
	assert.Equal(t, extraction{paths[2], 1140, 60}, tool.extractions[2])
}

func TestSplitIsIdempotent(t *testing.T) {
	root := realTempDir(t)
	first := &fakeTool{duration: 1200}
	want, err := New(first, 570, root, logger.Discard()).Split(context.Background(), "name.mp4", "segments")
	require.NoError(t, err)

	second := &fakeTool{duration: 1200}
	got, err := New(second, 570, root, logger.Discard()).Split(context.Background(), "name.mp4", "segments")
	require.NoError(t, err)

	assert.Equal(t, want, got)
	assert.Empty(t, second.extractions, "no extraction when every segment exists")
}

func TestSplitReusesPartialRun(t *testing.T) {
	root := realTempDir(t)
	dir := filepath.Join(root, "segments")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "name_segment_002.mp3"), []byte("cached"), 0644))

	tool := &fakeTool{duration: 1200}
	paths, err := New(tool, 570, root, logger.Discard()).Split(context.Background(), "name.mp4", "segments")
	require.NoError(t, err)

	assert.Len(t, paths, 3)
	require.Len(t, tool.extractions, 2)
	assert.Equal(t, paths[0], tool.extractions[0].output)
	assert.Equal(t, paths[2], tool.extractions[1].output)

	data, err := os.ReadFile(paths[1])
	require.NoError(t, err)
	assert.Equal(t, "cached", string(data), "existing segment is left untouched")
}

func TestSplitRejectsUnsafeDir(t *testing.T) {
	root := realTempDir(t)
	tool := &fakeTool{duration: 1200}

	_, err := New(tool, 570, root, logger.Discard()).Split(context.Background(), "name.mp4", "../outside")
	assert.ErrorIs(t, err, ErrUnsafePath)
	assert.Empty(t, tool.extractions)
}

func TestSplitPropagatesToolErrors(t *testing.T) {
	root := realTempDir(t)

	_, err := New(&fakeTool{durationErr: errors.New("ffprobe failed")}, 570, root, logger.Discard()).
		Split(context.Background(), "name.mp4", "segments")
	assert.Error(t, err)

	_, err = New(&fakeTool{duration: 100, extractErr: errors.New("exit status 1")}, 570, root, logger.Discard()).
		Split(context.Background(), "name.mp4", "segments")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create segment 1")
}
