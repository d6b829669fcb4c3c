package xcursor

// This file hooks the format into the stdlib image package, modeled
// after the public interface of image/gif: Decode returns the first
// image, DecodeConfig its dimensions, without decoding the rest.

import (
	"encoding/binary"
	"image"
	"image/color"
	"io"

	"github.com/pkg/errors"
)

func init() {
	image.RegisterFormat("xcur", "Xcur", Decode, DecodeConfig)
}

// Decode returns the first cursor frame in the file as an image.Image.
func Decode(r io.Reader) (image.Image, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "xcursor: reading input")
	}
	frames, err := DecodeAll(buf)
	if err != nil {
		return nil, err
	}
	if len(frames) == 0 {
		return nil, errors.New("xcursor: no decodable image chunks")
	}
	return frames[0].Image(), nil
}

// DecodeConfig returns the dimensions and color model of the first
// image chunk without decoding its pixels.
func DecodeConfig(r io.Reader) (image.Config, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return image.Config{}, errors.Wrap(err, "xcursor: reading input")
	}
	toc, err := ReadTOC(buf)
	if err != nil {
		return image.Config{}, err
	}
	for _, e := range toc {
		if !e.IsImage() {
			continue
		}
		p := int64(e.Position)
		if p+chunkHeaderSize > int64(len(buf)) {
			continue
		}
		h := buf[p : p+chunkHeaderSize]
		width := int32(binary.LittleEndian.Uint32(h[16:20]))
		height := int32(binary.LittleEndian.Uint32(h[20:24]))
		if width <= 0 || height <= 0 {
			continue
		}
		return image.Config{
			Width:      int(width),
			Height:     int(height),
			ColorModel: color.RGBAModel,
		}, nil
	}
	return image.Config{}, errors.New("xcursor: no decodable image chunks")
}
