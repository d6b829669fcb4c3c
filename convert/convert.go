package convert

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"

	"github.com/Timmatt-Lee/xcur2png/render"
	"github.com/Timmatt-Lee/xcur2png/xcursor"
)

// DefaultFrameCap is the maximum number of frames a strip or GIF keeps
// before even sampling thins the animation.
const DefaultFrameCap = 24

// Options configures conversion. The zero value writes PNGs next to the
// current directory with the default frame cap.
type Options struct {
	// OutDir is where artifacts are written; empty means the current
	// directory.
	OutDir string

	// FrameCap caps frames per artifact. Zero means DefaultFrameCap;
	// a negative value disables the cap.
	FrameCap int

	// GIF additionally writes an animated GIF for every size group
	// with more than one (sampled) frame.
	GIF bool

	// Scale is an integer upscale factor applied to PNG artifacts.
	// Zero and one both mean no scaling. GIFs are never scaled.
	Scale uint

	// Jobs is the number of files Batch converts in parallel. Values
	// below two mean sequential processing.
	Jobs int
}

func (o *Options) outDir() string {
	if o == nil || o.OutDir == "" {
		return "."
	}
	return o.OutDir
}

func (o *Options) frameCap() int {
	if o == nil || o.FrameCap == 0 {
		return DefaultFrameCap
	}
	return o.FrameCap
}

// outputBase strips directory and extension from an input path. Cursor
// theme files usually have no extension at all; both cases end up with
// just the cursor's name.
func outputBase(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// File converts one cursor file. The returned error is fatal for the
// file only (unreadable input, bad magic, truncated TOC); bad chunks,
// empty groups and artifact write failures are logged and skipped so
// the remaining groups still come out.
func File(path string, opts *Options) error {
	buf, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading input")
	}

	frames, err := xcursor.DecodeAll(buf)
	if err != nil {
		return errors.Wrapf(err, "parsing %s", path)
	}
	if len(frames) == 0 {
		glog.Warningf("%s: no image chunks, nothing to convert", path)
		return nil
	}

	groups, order := render.GroupBySize(frames)
	base := outputBase(path)

	for _, sz := range order {
		sampled := render.Sample(groups[sz], opts.frameCap())

		art, err := render.BuildArtifact(sampled)
		if err != nil {
			glog.Warningf("%s: skipping group %v: %v", path, sz, err)
			continue
		}

		name := fmt.Sprintf("%s_%s.png", base, sz)
		if art.Kind == render.Strip {
			name = fmt.Sprintf("%s_%s_strip.png", base, sz)
		}
		if err := writePNG(filepath.Join(opts.outDir(), name), art.Image, opts); err != nil {
			glog.Errorf("%s: writing %s: %v", path, name, err)
			continue
		}
		glog.V(1).Infof("%s: wrote %s (%d frames)", path, name, art.FrameCount)

		if opts != nil && opts.GIF && len(sampled) > 1 {
			gifName := fmt.Sprintf("%s_%s.gif", base, sz)
			if err := writeGIF(filepath.Join(opts.outDir(), gifName), sampled); err != nil {
				glog.Errorf("%s: writing %s: %v", path, gifName, err)
				continue
			}
			glog.V(1).Infof("%s: wrote %s", path, gifName)
		}
	}
	return nil
}

func writePNG(path string, img image.Image, opts *Options) error {
	if opts != nil && opts.Scale > 1 {
		w := uint(img.Bounds().Dx()) * opts.Scale
		h := uint(img.Bounds().Dy()) * opts.Scale
		// Nearest neighbor keeps cursor pixels crisp.
		img = resize.Resize(w, h, img, resize.NearestNeighbor)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeGIF(path string, frames []*xcursor.Frame) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.EncodeGIF(f, frames); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
