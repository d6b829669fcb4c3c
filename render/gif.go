package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"

	"github.com/andybons/gogif"
	"github.com/pkg/errors"

	"github.com/Timmatt-Lee/xcur2png/xcursor"
)

// DefaultDelay is the per-frame delay, in milliseconds, used for frames
// whose stored delay is zero. Frames keep the raw zero; the default is
// applied only here, at encode time.
const DefaultDelay = 50

// EncodeGIF writes the frames of one size group as an animated GIF.
// Every frame is quantized to a 255-color palette with one slot left
// for transparency.
func EncodeGIF(w io.Writer, frames []*xcursor.Frame) error {
	if len(frames) == 0 {
		return errors.New("render: no frames to animate")
	}

	g := gif.GIF{}
	quantizer := gogif.MedianCutQuantizer{NumColor: 255} // up to 255 colors plus 1 slot for transparency
	for _, fr := range frames {
		img := fr.Image()

		pal := image.NewPaletted(img.Bounds(), nil)
		quantizer.Quantize(pal, img.Bounds(), img, image.ZP)

		// gogif's quantizer has no palette-only mode, so the image gets
		// copied twice: once by Quantize, once more into a paletted
		// image that leads with color.Transparent. Cursor frames are
		// tiny, so this does not matter.
		palTransparent := image.NewPaletted(img.Bounds(), append(color.Palette([]color.Color{color.Transparent}), pal.Palette...))
		draw.Draw(palTransparent, img.Bounds(), img, image.ZP, draw.Over)

		delay := fr.Delay
		if delay == 0 {
			delay = DefaultDelay
		}

		g.Image = append(g.Image, palTransparent)
		g.Delay = append(g.Delay, int(delay)/10) // GIF ticks are 1/100 s
		g.Disposal = append(g.Disposal, gif.DisposalBackground)
	}
	g.BackgroundIndex = 0 // color.Transparent

	return errors.Wrap(gif.EncodeAll(w, &g), "render: encoding gif")
}
