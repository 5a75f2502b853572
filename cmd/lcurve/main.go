// Command lcurve draws L-system curves to SVG or PNG files.
//
// A single curve can be described with flags:
//
//	lcurve -curve koch -n 4 -gradient rainbow -o koch.png
//
// or many with a stream of YAML documents, one per job:
//
//	lcurve -jobs jobs.yml
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/pkg/errors"

	"honnef.co/go/lcurve"
)

func main() {
	var (
		job        Job
		condense   = flag.Bool("condense", true, "remove redundant collinear points")
		gradient   = flag.String("gradient", "", `comma-separated hex colours, or "rainbow"`)
		margin     = flag.Float64("margin", 16, "margin in pixels")
		jobs       = flag.String("jobs", "", `read jobs from a YAML stream ("-" for stdin)`)
		list       = flag.Bool("list", false, "list the built-in curves")
		maxSymbols = flag.Int("max-symbols", 50_000_000, "refuse curves with more symbols than this (0 for no limit)")
		verbose    = flag.Bool("v", false, "log debug information")
	)
	flag.StringVar(&job.Curve, "curve", "dragon", "curve to draw")
	flag.UintVar(&job.Iterations, "n", 8, "number of iterations")
	flag.Float64Var(&job.Size, "size", 100, "segment length at iteration 0")
	flag.Float64Var(&job.Heading, "heading", 0, "initial heading in degrees")
	flag.StringVar(&job.Output, "o", "-", "output file")
	flag.StringVar(&job.Format, "format", "", "svg or png (default from output extension)")
	flag.IntVar(&job.Width, "width", 512, "image width")
	flag.IntVar(&job.Height, "height", 512, "image height")
	flag.Float64Var(&job.StrokeWidth, "stroke-width", 1, "line width in pixels")
	flag.StringVar(&job.Stroke, "stroke", "#000000", "line colour")
	flag.StringVar(&job.Background, "background", "#ffffff", `background colour or "none"`)
	flag.IntVar(&job.Offset, "offset", 0, "rotate the gradient by this many segments")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	lcurve.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if *list {
		listFamilies(os.Stdout)
		return
	}

	if *jobs != "" {
		r := io.Reader(os.Stdin)
		if *jobs != "-" {
			f, err := os.Open(*jobs)
			if err != nil {
				log.Fatalf("Couldn't open jobs: %v", err)
			}
			defer f.Close()
			r = f
		}
		if err := runJobs(r, os.Stdout, *maxSymbols); err != nil {
			log.Fatalf("%v", err)
		}
		return
	}

	job.Condense = condense
	job.Margin = margin
	if *gradient != "" {
		job.Gradient = strings.Split(*gradient, ",")
	}
	if err := runJob(&job, os.Stdout, *maxSymbols); err != nil {
		log.Fatalf("%v", err)
	}
}

// runJobs processes every job of a YAML stream, in order.
func runJobs(r io.Reader, stdout io.Writer, maxSymbols int) error {
	dec := NewDecoder(r)
	for seq := 0; ; seq++ {
		job, err := dec.Decode()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrapf(err, "decoding job %d", seq)
		}
		if err := runJob(job, stdout, maxSymbols); err != nil {
			return errors.Wrapf(err, "job %d", seq)
		}
	}
}

// runJob renders job to its output file, or to stdout.
func runJob(job *Job, stdout io.Writer, maxSymbols int) (err error) {
	if job.Output == "" || job.Output == "-" {
		return job.Render(stdout, maxSymbols)
	}
	f, err := os.Create(job.Output)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrap(cerr, "closing output")
		}
	}()
	return job.Render(f, maxSymbols)
}

func listFamilies(w io.Writer) {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tAXIOM\tSTEP\tSHRINK")
	for _, f := range lcurve.Families() {
		fmt.Fprintf(tw, "%s\t%s\t%.4g°\t%.4g\n", f.Name, f.Axiom(), f.Step*180/math.Pi, f.Shrink)
	}
	tw.Flush()
}
