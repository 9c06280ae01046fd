package materialize

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/matzehuels/shuffleset/pkg/errors"
	"github.com/matzehuels/shuffleset/pkg/shuffle"
)

// Status is the outcome of [Writer.Prepare].
type Status int

const (
	// StatusFresh means the folder did not exist.
	StatusFresh Status = iota
	// StatusReplaced means an existing folder was removed.
	StatusReplaced
	// StatusSkipped means an existing folder was kept and the ordering
	// number must be skipped.
	StatusSkipped
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusFresh:
		return "fresh"
	case StatusReplaced:
		return "replaced"
	case StatusSkipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Writer materializes orderings according to a Layout.
type Writer struct {
	Layout Layout

	// Force replaces existing output folders instead of skipping them.
	Force bool

	// DryRun reports what would happen without touching the file system.
	DryRun bool

	// OnCopy, if set, is called with the destination of every copied track.
	OnCopy func(dst string)
}

// Prepare checks the folder for ordering number and applies the overwrite
// policy. It returns the folder path and what was done.
func (w *Writer) Prepare(number int) (string, Status, error) {
	dir := w.Layout.FolderPath(number)
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return dir, StatusFresh, nil
		}
		return dir, StatusFresh, errors.Wrap(errors.ErrCodeIO, err, "check output directory '%s'", dir)
	}

	if !w.Force {
		return dir, StatusSkipped, nil
	}
	if !w.DryRun {
		if err := os.RemoveAll(dir); err != nil {
			return dir, StatusReplaced, errors.Wrap(errors.ErrCodeIO, err, "remove existing output directory '%s'", dir)
		}
	}
	return dir, StatusReplaced, nil
}

// Write copies items, in order, into the folder for ordering number. If a
// copy fails or ctx is cancelled, the partially written folder is removed.
func (w *Writer) Write(ctx context.Context, number int, items []shuffle.Item) (dir string, err error) {
	dir = w.Layout.FolderPath(number)
	if w.DryRun {
		for i, it := range items {
			w.notify(filepath.Join(dir, w.Layout.TrackName(i+1, it.Name())))
		}
		return dir, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return dir, errors.Wrap(errors.ErrCodeIO, err, "create output directory '%s'", dir)
	}
	defer func() {
		if err != nil {
			_ = os.RemoveAll(dir)
		}
	}()

	for i, it := range items {
		if err := ctx.Err(); err != nil {
			return dir, err
		}
		dst := filepath.Join(dir, w.Layout.TrackName(i+1, it.Name()))
		if err := copyFile(it.Path, dst); err != nil {
			return dir, errors.Wrap(errors.ErrCodeIO, err, "copy '%s'", it.Name())
		}
		w.notify(dst)
	}
	return dir, nil
}

func (w *Writer) notify(dst string) {
	if w.OnCopy != nil {
		w.OnCopy(dst)
	}
}

// copyFile copies src to dst, keeping the source's permission bits.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
