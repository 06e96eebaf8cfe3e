// internal/term/progress.go
//
// Terminal detection and the ranking progress bar.

package term

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// Interactive reports whether w writes to a terminal.
func Interactive(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// RankProgress returns a progress hook for solver.Options.Progress that draws
// a bar on w while a ranking pass runs. Each new pass (done == 1) resets the
// bar; it clears itself on completion.
func RankProgress(w io.Writer) func(done, total int) {
	var bar *progressbar.ProgressBar
	return func(done, total int) {
		if done == 1 {
			bar = progressbar.NewOptions(total,
				progressbar.OptionSetWriter(w),
				progressbar.OptionSetDescription("ranking"),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
		}
		if bar == nil {
			return
		}
		_ = bar.Set(done)
	}
}
