package library

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/shuffleset/pkg/errors"
)

func TestIsAudioFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"A - Song.mp3", true},
		{"A - Song.MP3", true},
		{"A - Song.flac", true},
		{"A - Song.aiff", true},
		{"A - Song.aif", true},
		{"A - Song.m4a", true},
		{"A - Song.wav", true},
		{"A - Song.ogg", false},
		{"cover.jpg", false},
		{"README", false},
		{"mp3", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAudioFile(tt.path, nil))
		})
	}

	assert.True(t, IsAudioFile("x.ogg", []string{"ogg"}))
	assert.False(t, IsAudioFile("x.mp3", []string{"ogg"}))
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"C - Three.mp3", "A - One.flac", "B - Two.WAV", "notes.txt", "cover.jpg"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(name), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "Nested.mp3"), 0755))

	items, err := Scan(dir, nil)
	require.NoError(t, err)

	var names []string
	for _, it := range items {
		names = append(names, it.Name())
	}
	assert.Equal(t, []string{"A - One.flac", "B - Two.WAV", "C - Three.mp3"}, names)
	assert.Equal(t, filepath.Join(dir, "A - One.flac"), items[0].Path)
}

func TestScanNoAudioFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), nil, 0644))

	_, err := Scan(dir, nil)
	assert.True(t, errors.Is(err, errors.ErrCodeNoAudioFiles), "got %v", err)
}

func TestScanMissingDir(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "missing"), nil)
	assert.True(t, errors.Is(err, errors.ErrCodeIO), "got %v", err)
}

func TestResolveDir(t *testing.T) {
	dir := t.TempDir()
	want, err := filepath.EvalSymlinks(dir)
	require.NoError(t, err)

	got, err := ResolveDir("  " + dir + "  ")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = ResolveDir("   ")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidPath))

	_, err = ResolveDir(filepath.Join(dir, "missing"))
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidPath))

	file := filepath.Join(dir, "track.mp3")
	require.NoError(t, os.WriteFile(file, nil, 0644))
	_, err = ResolveDir(file)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidPath))
}
