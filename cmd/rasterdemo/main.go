// Command rasterdemo rasterizes one line or circle, prints the timing and
// saves the grid as a PNG.
//
// Usage:
//
//	rasterdemo -method bresenham -x1 0 -y1 0 -x2 10 -y2 5 -output line.png
//	rasterdemo -method circle -r 12 -scale 15 -lang ru
//	rasterdemo -bench 1000 -chart bench.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/gogpu/rasterlab"
	"github.com/gogpu/rasterlab/grid"
	"github.com/gogpu/rasterlab/internal/locale"
	"github.com/gogpu/rasterlab/internal/timing"
)

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

type config struct {
	method  string
	params  rasterlab.Params
	scale   int
	width   int
	height  int
	output  string
	lang    string
	dedup   bool
	clamp   bool
	bench   int
	chart   string
	verbose bool
}

func parseFlags(args []string, stderr io.Writer) (config, error) {
	def := rasterlab.DefaultParams()
	var c config
	fs := flag.NewFlagSet("rasterdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&c.method, "method", "bresenham", "algorithm: step, dda, bresenham or circle")
	fs.IntVar(&c.params.X1, "x1", def.X1, "start x, or circle centre x")
	fs.IntVar(&c.params.Y1, "y1", def.Y1, "start y, or circle centre y")
	fs.IntVar(&c.params.X2, "x2", def.X2, "end x")
	fs.IntVar(&c.params.Y2, "y2", def.Y2, "end y")
	fs.IntVar(&c.params.R, "r", def.R, "circle radius")
	fs.IntVar(&c.scale, "scale", grid.DefaultCellSize, "cell size in pixels")
	fs.IntVar(&c.width, "width", 600, "image width")
	fs.IntVar(&c.height, "height", 600, "image height")
	fs.StringVar(&c.output, "output", "raster.png", "output PNG file, empty to skip")
	fs.StringVar(&c.lang, "lang", "en", "output language (en, ru)")
	fs.BoolVar(&c.dedup, "dedup", false, "drop repeated cells before drawing")
	fs.BoolVar(&c.clamp, "clamp", false, "clamp out-of-range parameters instead of failing")
	fs.IntVar(&c.bench, "bench", 0, "time every algorithm N times and print a table")
	fs.StringVar(&c.chart, "chart", "", "with -bench, save a bar chart of mean times")
	fs.BoolVar(&c.verbose, "v", false, "debug logging")
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	if fs.NArg() > 0 {
		return c, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return c, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	c, err := parseFlags(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintln(stderr, "rasterdemo:", err)
		return exitUsage
	}

	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	rasterlab.SetLogger(logger)
	defer rasterlab.SetLogger(nil)

	a, err := rasterlab.ParseAlgorithm(c.method)
	if err != nil {
		logger.Error("invalid method", "err", err)
		return exitUsage
	}
	if c.clamp {
		c.params = c.params.Clamp()
	} else if err := c.params.Validate(a); err != nil {
		logger.Error("invalid parameters", "algorithm", a.String(), "err", err)
		return exitUsage
	}

	pr := locale.New(c.lang)
	if c.bench > 0 {
		return runBench(c, pr, stdout, logger)
	}
	return runOnce(a, c, pr, stdout, logger)
}

func runOnce(a rasterlab.Algorithm, c config, pr *locale.Printer, stdout io.Writer, logger *slog.Logger) int {
	r := timing.Measure(a, c.params)
	points := r.Points
	if c.dedup {
		points = rasterlab.Dedup(points)
	}

	title := pr.Algorithm(a)
	summary := pr.Elapsed(r.Elapsed) + "  " + pr.Points(len(points))
	fmt.Fprintln(stdout, title)
	fmt.Fprintln(stdout, summary)

	if c.output == "" {
		return exitOK
	}
	canvas := grid.New(c.width, c.height,
		grid.WithCellSize(c.scale),
		grid.WithCaption(title+"\n"+summary),
	)
	canvas.SetPoints(points)
	if n := canvas.Visible(); n < len(points) {
		logger.Warn("cells outside the image", "visible", n, "points", len(points))
	}
	if err := canvas.Render().SavePNG(c.output); err != nil {
		logger.Error("save failed", "path", c.output, "err", err)
		return exitError
	}
	logger.Info("saved", "path", c.output, "width", canvas.Width(), "height", canvas.Height())
	return exitOK
}

func runBench(c config, pr *locale.Printer, stdout io.Writer, logger *slog.Logger) int {
	stats, err := timing.Compare(c.params, c.bench)
	if err != nil {
		logger.Error("benchmark failed", "err", err)
		return exitError
	}

	tw := tabwriter.NewWriter(stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "algorithm\tpoints\tmean\tstddev\tmin\tmedian\tmax\t")
	for _, s := range stats {
		fmt.Fprintf(tw, "%s\t%d\t%v\t%v\t%v\t%v\t%v\t\n",
			pr.Algorithm(s.Algorithm), s.Points, s.Mean, s.StdDev, s.Min, s.Median, s.Max)
	}
	if err := tw.Flush(); err != nil {
		logger.Error("write table", "err", err)
		return exitError
	}

	if c.chart != "" {
		if err := timing.SaveChart(stats, c.params.String(), c.chart); err != nil {
			logger.Error("chart failed", "path", c.chart, "err", err)
			return exitError
		}
		logger.Info("saved chart", "path", c.chart)
	}
	return exitOK
}
