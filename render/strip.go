package render

import (
	"image"
	"image/draw"

	"github.com/pkg/errors"

	"github.com/Timmatt-Lee/xcur2png/xcursor"
)

// Kind says how an artifact's pixels are laid out.
type Kind int

const (
	// Single is one frame, written out as a plain image.
	Single Kind = iota
	// Strip is several same-size frames stacked top to bottom.
	Strip
)

// Artifact is the in-memory output for one size group: either a single
// frame or a vertical strip. Encoding and file naming are left to the
// caller.
type Artifact struct {
	Kind       Kind
	Image      *image.RGBA
	FrameCount int
}

// BuildArtifact composes a (post-sampling) size group into an artifact.
// One frame yields a Single wrapping that frame's pixels; more yield a
// Strip of width W and height H*len, frames stacked in order with no
// gaps or borders. All frames in a group share one size by construction,
// so no padding or resizing happens here.
func BuildArtifact(frames []*xcursor.Frame) (*Artifact, error) {
	if len(frames) == 0 {
		return nil, errors.New("render: empty size group")
	}
	if len(frames) == 1 {
		return &Artifact{Kind: Single, Image: frames[0].Image(), FrameCount: 1}, nil
	}

	w, h := frames[0].Width, frames[0].Height
	img := image.NewRGBA(image.Rect(0, 0, w, h*len(frames)))
	for i, fr := range frames {
		dst := image.Rect(0, i*h, w, (i+1)*h)
		draw.Draw(img, dst, fr.Image(), image.ZP, draw.Src)
	}
	return &Artifact{Kind: Strip, Image: img, FrameCount: len(frames)}, nil
}
