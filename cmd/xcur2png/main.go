// Command xcur2png converts Xcursor theme files to PNG images: one
// standalone PNG per single-frame size group and one vertical strip per
// animated size group, optionally an animated GIF as well.
package main

import (
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"badc0de.net/pkg/flagutil/v1"

	"github.com/golang/glog"
	"github.com/nfnt/resize"

	"github.com/Timmatt-Lee/xcur2png/convert"
	"github.com/Timmatt-Lee/xcur2png/imageprint"
	"github.com/Timmatt-Lee/xcur2png/paths"
	"github.com/Timmatt-Lee/xcur2png/render"
	"github.com/Timmatt-Lee/xcur2png/xcursor"
)

var (
	outDir   = flag.String("out", ".", "directory to write output images into")
	frameCap = flag.Int("frame_cap", convert.DefaultFrameCap, "maximum frames per strip or gif; longer animations are thinned by even sampling, negative disables the cap")
	gifOut   = flag.Bool("gif", false, "also write an animated gif per animated size group")
	scale    = flag.Uint("scale", 1, "integer upscale factor for png outputs")
	jobs     = flag.Int("jobs", 1, "number of files to convert in parallel")
	pattern  = flag.String("glob", "", "glob pattern of input files, used when no arguments are given")
	ignore   = flag.String("ignore", "", "comma-separated cursor names to skip")
	theme    = flag.String("theme", "default", "cursor theme used to resolve bare cursor names")

	preview = flag.Bool("preview", false, "print decoded cursors to the terminal instead of writing files")
	col256  = flag.Bool("col256", false, "preview with 256 colors instead of 24 bit")
	rast    = flag.Bool("rasterm", false, "preview with kitty/iterm/sixel escape codes")
	blanks  = flag.Bool("blanks", true, "preview with colored blanks instead of some bad ascii art")
)

// inputs resolves command line arguments (or the -glob pattern) to file
// paths, dropping anything on the -ignore list. Bare cursor names are
// looked up in the configured theme; names that resolve nowhere stay as
// given so conversion reports them as failed files.
func inputs() []string {
	args := flag.Args()
	if len(args) == 0 && *pattern != "" {
		var err error
		args, err = filepath.Glob(*pattern)
		if err != nil {
			glog.Exitf("bad -glob pattern: %v", err)
		}
	}

	ignored := map[string]bool{}
	for _, n := range strings.Split(*ignore, ",") {
		if n != "" {
			ignored[n] = true
		}
	}

	var out []string
	for _, a := range args {
		if ignored[filepath.Base(a)] {
			glog.V(1).Infof("ignoring %s", a)
			continue
		}
		if path := paths.Find(*theme, a); path != "" {
			a = path
		}
		out = append(out, a)
	}
	return out
}

func previewFile(path string) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	frames, err := xcursor.DecodeAll(buf)
	if err != nil {
		return err
	}

	groups, order := render.GroupBySize(frames)
	for _, sz := range order {
		group := groups[sz]
		fmt.Printf("%s %s: %d frame(s)\n", filepath.Base(path), sz, len(group))

		img := image.Image(group[0].Image())
		if sz.W > 48 || sz.H > 48 {
			img = resize.Thumbnail(48, 48, img, resize.Lanczos3)
		}
		switch {
		case *rast:
			imageprint.PrintRasTerm(img)
		case *col256:
			imageprint.Print256Color(img, *blanks)
		default:
			imageprint.Print24bit(img, *blanks)
		}
	}
	return nil
}

func main() {
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	files := inputs()
	if len(files) == 0 {
		glog.Exit("no input files; pass cursor files or use -glob")
	}

	if *preview {
		failed := 0
		for _, f := range files {
			if err := previewFile(f); err != nil {
				glog.Errorf("%s: %v", f, err)
				failed++
			}
		}
		if failed > 0 {
			os.Exit(1)
		}
		return
	}

	opts := &convert.Options{
		OutDir:   *outDir,
		FrameCap: *frameCap,
		GIF:      *gifOut,
		Scale:    *scale,
		Jobs:     *jobs,
	}
	if err := convert.Batch(files, opts); err != nil {
		glog.Exit(err)
	}
}
