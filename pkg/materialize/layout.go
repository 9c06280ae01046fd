package materialize

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/matzehuels/shuffleset/pkg/errors"
)

const (
	// DefaultFolderPrefix names output folders: "<prefix> <number>".
	DefaultFolderPrefix = "FDO Impro"

	// DefaultTrackLabel is inserted between position and original name.
	DefaultTrackLabel = "FDO impro"
)

// Layout describes where and under which names a run's orderings go.
type Layout struct {
	Root         string // output root directory
	FolderPrefix string // folder name prefix, DefaultFolderPrefix if empty
	TrackLabel   string // track name label, DefaultTrackLabel if empty
	Orderings    int    // number of orderings in the run, sets folder number width
	Tracks       int    // number of tracks per ordering, sets position width
}

// FolderName returns the folder name for the given ordering number.
func (l Layout) FolderName(number int) string {
	prefix := l.FolderPrefix
	if prefix == "" {
		prefix = DefaultFolderPrefix
	}
	return fmt.Sprintf("%s %0*d", prefix, digits(l.Orderings), number)
}

// FolderPath returns the absolute folder path for the given ordering number.
func (l Layout) FolderPath(number int) string {
	return filepath.Join(l.Root, l.FolderName(number))
}

// TrackName returns the file name for the track at the 1-based position.
func (l Layout) TrackName(position int, baseName string) string {
	label := l.TrackLabel
	if label == "" {
		label = DefaultTrackLabel
	}
	return fmt.Sprintf("%0*d %s - %s", digits(l.Tracks), position, label, baseName)
}

// digits returns the number of decimal digits of n, at least 1.
func digits(n int) int {
	if n < 1 {
		return 1
	}
	return len(strconv.Itoa(n))
}

// ResolveRoot returns the absolute output root for a run. An empty output
// selects the parent directory of inputDir; relative paths are resolved
// against the working directory.
func ResolveRoot(output, inputDir string) (string, error) {
	output = strings.TrimSpace(output)
	if output == "" {
		parent := filepath.Dir(inputDir)
		if parent == inputDir {
			return "", errors.New(errors.ErrCodeInvalidPath, "input path has no parent directory: '%s'", inputDir)
		}
		return parent, nil
	}
	if filepath.IsAbs(output) {
		return filepath.Clean(output), nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeInvalidPath, err, "get current directory")
	}
	return filepath.Join(wd, output), nil
}

// EnsureRoot creates the output root if needed and returns its canonical path.
func EnsureRoot(root string) (string, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, err, "create output root directory")
	}
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeIO, err, "resolve output root directory")
	}
	return resolved, nil
}
