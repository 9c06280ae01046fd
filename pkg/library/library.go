// Package library finds the audio tracks a shuffle run works on.
//
// [Scan] lists the audio files directly inside a directory (no recursion)
// and returns them as a sorted, duplicate-free item set, so repeated runs
// over the same directory start from the same sequence.
package library

import (
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/matzehuels/shuffleset/pkg/errors"
	"github.com/matzehuels/shuffleset/pkg/shuffle"
)

// DefaultExtensions lists the audio file types picked up by default, without
// the leading dot.
var DefaultExtensions = []string{"aif", "aiff", "flac", "mp3", "m4a", "wav"}

// IsAudioFile reports whether path has one of the given extensions.
// Matching ignores case; a nil list means DefaultExtensions.
func IsAudioFile(path string, extensions []string) bool {
	if extensions == nil {
		extensions = DefaultExtensions
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return false
	}
	return slices.ContainsFunc(extensions, func(e string) bool {
		return strings.EqualFold(e, ext)
	})
}

// ResolveDir trims and canonicalizes an input directory path: the result is
// absolute with symlinks resolved. It fails for empty paths and for paths
// that are not accessible directories.
func ResolveDir(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", errors.New(errors.ErrCodeInvalidPath, "empty input path")
	}

	info, err := os.Stat(path)
	if err != nil || !info.IsDir() {
		return "", errors.New(errors.ErrCodeInvalidPath, "input directory does not exist or is not accessible: '%s'", path)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve input path")
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "resolve input path")
	}
	return resolved, nil
}

// Scan returns the audio files directly inside dir, sorted by path and
// without duplicates. Subdirectories and non-audio files are ignored.
// A directory without audio files is an [errors.ErrCodeNoAudioFiles] error.
func Scan(dir string, extensions []string) ([]shuffle.Item, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeIO, err, "read input directory")
	}

	var items []shuffle.Item
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if IsAudioFile(path, extensions) {
			items = append(items, shuffle.Item{Path: path})
		}
	}

	if len(items) == 0 {
		return nil, errors.New(errors.ErrCodeNoAudioFiles, "no audio files found in: '%s'", dir)
	}
	return shuffle.Normalize(items), nil
}
