package cli

import (
	"context"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/shuffleset/pkg/pipeline"
)

// runDisplay turns pipeline progress into terminal output. In plain mode
// (verbose or dry run) every event becomes a log line; otherwise a spinner
// follows the copies of the current shuffle set.
type runDisplay struct {
	ctx     context.Context
	logger  *log.Logger
	plain   bool
	spinner *Spinner
	folder  string // folder the spinner reports on
}

func newRunDisplay(ctx context.Context, logger *log.Logger, plain bool) *runDisplay {
	return &runDisplay{ctx: ctx, logger: logger, plain: plain}
}

// handle receives pipeline.Options.OnProgress events.
func (d *runDisplay) handle(p pipeline.Progress) {
	folder := filepath.Base(p.Folder)

	switch p.Stage {
	case pipeline.StageCopy:
		track := filepath.Base(p.Track)
		if d.plain {
			d.logger.Debug("copy", "folder", folder, "track", track)
			return
		}
		if d.spinner == nil {
			d.folder = folder
			d.spinner = newSpinnerWithContext(d.ctx, folder)
			d.spinner.Start()
		}
		d.spinner.SetMessage(folder + " " + iconInfo + " " + track)
	case pipeline.StageWritten:
		if d.plain {
			d.logger.Debug("shuffle set complete", "folder", folder)
			return
		}
		if d.spinner != nil {
			d.spinner.StopWithSuccess(folder)
			d.spinner = nil
		}
	}
}

// finish stops a spinner left over by a failed run.
func (d *runDisplay) finish(err error) {
	if d.spinner == nil {
		return
	}
	if err != nil {
		d.spinner.StopWithError(d.folder + " incomplete")
	} else {
		d.spinner.Stop()
	}
	d.spinner = nil
}
