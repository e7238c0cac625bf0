// Command sandpath turns a shape into a machine program for a sand table.
//
// The input is a JSON job file giving the shape, the loop settings and the
// machine.  The shape is repeated according to the loop settings, polished
// to stay inside the machine envelope, and written as GCode, theta-rho or
// SVG.
package main

import (
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/argp"

	"seehuhn.de/go/sandpath"
	"seehuhn.de/go/sandpath/export"
	"seehuhn.de/go/sandpath/preview"
)

type Polish struct {
	Format  string `short:"f" default:"" desc:"Output format: gcode, thr or svg"`
	Output  string `short:"o" default:"-" desc:"Output file"`
	Preview string `short:"p" default:"" desc:"Write a preview image (.png or .pdf)"`
	Size    int    `default:"512" desc:"Size of PNG previews in pixels"`
	Reverse bool   `short:"r" desc:"Reverse the path"`
	Verbose bool   `short:"v" desc:"Log the polishing stages"`
	Input   string `index:"0" desc:"Job file"`
}

type Stats struct {
	Verbose bool   `short:"v" desc:"Log the polishing stages"`
	Input   string `index:"0" desc:"Job file"`
}

func main() {
	root := argp.NewCmd(&Polish{}, "Path polishing for sand drawing tables")
	root.AddCmd(&Stats{}, "stats", "Show statistics of the drawing path")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Polish) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	setupLogging(cmd.Verbose)

	job, b, p, err := polishJob(cmd.Input)
	if err != nil {
		return err
	}
	if cmd.Reverse {
		p = p.Reverse()
	}

	format, err := outputFormat(cmd.Format, cmd.Output, b)
	if err != nil {
		return err
	}
	w, err := job.writer(format, b)
	if err != nil {
		return err
	}

	if err := writeOutput(cmd.Output, w, p); err != nil {
		return fmt.Errorf("writing %s output: %w", format, err)
	}

	if cmd.Preview != "" {
		if err := writePreview(cmd.Preview, p, b, cmd.Size); err != nil {
			return fmt.Errorf("preview: %w", err)
		}
	}
	return nil
}

func (cmd *Stats) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	setupLogging(cmd.Verbose)

	job, _, p, err := polishJob(cmd.Input)
	if err != nil {
		return err
	}

	in := sandpath.TransformShapes(job.ShapePath(), job.Loop).Stats()
	out := p.Stats()
	fmt.Println("File name:", filepath.Base(cmd.Input))
	fmt.Printf("Input: %d points, distance %.1f\n", in.NumPoints, in.Distance)
	fmt.Printf("Output: %d points, distance %.1f\n", out.NumPoints, out.Distance)
	return nil
}

// polishJob reads a job file and computes the polished drawing path.
func polishJob(fileName string) (*Job, sandpath.Bounds, sandpath.Path, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, nil, nil, err
	}
	defer f.Close()

	job, err := decodeJob(f)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", fileName, err)
	}
	b, err := job.Machine.Bounds()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", fileName, err)
	}

	p := sandpath.TransformShapes(job.ShapePath(), job.Loop)
	p, err = sandpath.Polish(p, b)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return job, b, p, nil
}

func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	sandpath.SetLogger(slog.New(h))
}

// writeOutput writes p to the named file, or to stdout for "-".
func writeOutput(fileName string, w export.Writer, p sandpath.Path) error {
	if fileName == "-" {
		return w.Write(os.Stdout, p)
	}

	f, err := os.Create(fileName)
	if err != nil {
		return err
	}
	err = w.Write(f, p)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func writePreview(fileName string, p sandpath.Path, b sandpath.Bounds, size int) error {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".pdf":
		return preview.WritePDF(fileName, p, b)
	case ".png":
		img := preview.Image(p, b, size)
		f, err := os.Create(fileName)
		if err != nil {
			return err
		}
		err = png.Encode(f, img)
		if err != nil {
			f.Close()
			return err
		}
		return f.Close()
	default:
		return fmt.Errorf("unsupported preview format %q", filepath.Ext(fileName))
	}
}
