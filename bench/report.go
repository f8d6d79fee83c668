package bench

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/fxbench"
)

// FrameTimeStats summarizes frame times.
type FrameTimeStats struct {
	Mean time.Duration
	P50  time.Duration
	P95  time.Duration
	P99  time.Duration
	Max  time.Duration
}

// Report is the result of one benchmark run.
type Report struct {
	Mode     fxbench.Mode
	Adapter  string
	Width    int
	Height   int
	Frames   int
	Duration time.Duration

	// Samples is the number of smoothed FPS values emitted.
	Samples    int
	AverageFPS float64
	MinFPS     float64
	MaxFPS     float64

	FrameTime FrameTimeStats

	// Builds is the number of bundles created.
	Builds int

	// LiveTargets and LiveBytes are measured after the last frame, before
	// the pipeline is disposed.
	LiveTargets int
	LiveBytes   int64

	// Allocations counts every render-target allocation of the run.
	Allocations int

	// Leaked is the number of targets still allocated after disposal.
	Leaked int
}

// printer formats numbers with thousands separators.
var printer = message.NewPrinter(language.English)

// Summary returns a one-line description of r.
func (r Report) Summary() string {
	return printer.Sprintf("%s: %d frames in %s, avg %.2f fps (%d samples), %d builds, %d target allocations",
		r.Mode.String(), r.Frames, r.Duration.Round(time.Millisecond).String(),
		r.AverageFPS, r.Samples, r.Builds, r.Allocations)
}

// WriteReports renders reports as a table.
func WriteReports(w io.Writer, reports []Report) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{
		"Mode", "Frames", "Avg FPS", "Min FPS", "Max FPS",
		"p50", "p95", "p99", "Builds", "Allocations", "Live targets", "Live bytes",
	})
	for _, r := range reports {
		table.Append([]string{
			r.Mode.String(),
			printer.Sprintf("%d", r.Frames),
			fmt.Sprintf("%.2f", r.AverageFPS),
			fmt.Sprintf("%.2f", r.MinFPS),
			fmt.Sprintf("%.2f", r.MaxFPS),
			r.FrameTime.P50.String(),
			r.FrameTime.P95.String(),
			r.FrameTime.P99.String(),
			printer.Sprintf("%d", r.Builds),
			printer.Sprintf("%d", r.Allocations),
			printer.Sprintf("%d", r.LiveTargets),
			printer.Sprintf("%d", r.LiveBytes),
		})
	}
	if len(reports) == 2 && reports[1].AverageFPS > 0 {
		ratio := reports[0].AverageFPS / reports[1].AverageFPS
		table.SetFooter([]string{"", "", "", "", "", "", "", "", "", "", "RATIO", fmt.Sprintf("%.2fx", ratio)})
	}
	table.Render()
}
