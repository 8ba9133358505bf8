package render

import (
	"fmt"
	"io"

	"github.com/lexistat/lexistat/stat"
)

var (
	Yellow = "\033[0;33m"
	Teal   = "\033[1;36m"
	Gray   = "\033[0;37m"
	Off    = "\033[0m"
)

// Console prints single summary lines for interactive inspection.
type Console struct {
	W io.Writer

	HasColor bool
}

func NewConsole(w io.Writer) *Console {
	return &Console{W: w, HasColor: true}
}

// Summary prints one file's summary for a metric as a single line.
func (c *Console) Summary(file, label string, s stat.Summary) {
	fmt.Fprintf(c.W, "%s %s  n=%d mean=%s std=%s cv=%s\n",
		c.colored(Teal, file),
		c.colored(Yellow, label),
		s.Count,
		formatFloat(s.Mean),
		formatFloat(s.StdDev),
		stat.CVString(s.CV),
	)
}

func (c *Console) colored(color, s string) string {
	if !c.HasColor {
		return s
	}
	return color + s + Off
}
