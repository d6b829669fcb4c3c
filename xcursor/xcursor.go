package xcursor

// This file contains code directly related to decoding the
// Xcursor file format.

import (
	"encoding/binary"
	"image"

	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// File layout. The magic is stored big-endian ("Xcur" as ASCII); every
// other integer in the file is little-endian.
const (
	magic = 0x58637572 // "Xcur"

	fileHeaderSize  = 16
	tocEntrySize    = 12
	chunkHeaderSize = 36

	// Chunk type tags. Comment chunks occur in theme files shipped by
	// distributions; they carry no pixels and are skipped.
	imageChunkType   = 0xfffd0002
	commentChunkType = 0xfffe0001
)

var (
	// ErrBadMagic is returned for files that are too short to carry the
	// fixed header or do not start with the Xcursor magic.
	ErrBadMagic = errors.New("xcursor: bad magic")

	// ErrTruncatedTOC is returned when the declared table of contents
	// does not fit in the file.
	ErrTruncatedTOC = errors.New("xcursor: declared TOC exceeds file size")
)

// TOCEntry is one table-of-contents record: which kind of chunk, and
// where in the file its payload starts.
type TOCEntry struct {
	Type     uint32
	Subtype  uint32 // nominal size for image chunks; unused here
	Position uint32
}

// IsImage reports whether the entry points at an image chunk.
func (e TOCEntry) IsImage() bool { return e.Type == imageChunkType }

// Frame is a single decoded cursor image.
//
// Pix holds the pixels in R,G,B,A channel order, row-major, exactly
// 4*Width*Height bytes. Delay is the animation delay in milliseconds;
// zero means "let the renderer pick a default" and is passed through
// as stored (defaulting happens only in the animated sink).
type Frame struct {
	Width, Height      int
	HotspotX, HotspotY int
	Delay              uint32
	Pix                []byte
}

// Image wraps the frame's pixels as an *image.RGBA without copying.
func (f *Frame) Image() *image.RGBA {
	return &image.RGBA{
		Pix:    f.Pix,
		Stride: 4 * f.Width,
		Rect:   image.Rect(0, 0, f.Width, f.Height),
	}
}

// ReadTOC validates the file header and returns the table of contents.
//
// A TOC whose declared size runs past the end of the buffer is a fatal
// error for the file. A final entry cut off mid-record only ends the
// walk early; entries read up to that point are still returned.
func ReadTOC(buf []byte) ([]TOCEntry, error) {
	if len(buf) < fileHeaderSize {
		return nil, errors.Wrapf(ErrBadMagic, "file is only %d bytes", len(buf))
	}
	if binary.BigEndian.Uint32(buf[0:4]) != magic {
		return nil, errors.Wrapf(ErrBadMagic, "got %08x", binary.BigEndian.Uint32(buf[0:4]))
	}

	ntoc := binary.LittleEndian.Uint32(buf[12:16])
	if int64(fileHeaderSize)+int64(ntoc)*tocEntrySize > int64(len(buf)) {
		return nil, errors.Wrapf(ErrTruncatedTOC, "ntoc %d needs %d bytes, file has %d",
			ntoc, int64(fileHeaderSize)+int64(ntoc)*tocEntrySize, len(buf))
	}

	toc := make([]TOCEntry, 0, ntoc)
	for i := uint32(0); i < ntoc; i++ {
		off := fileHeaderSize + int(i)*tocEntrySize
		if off+tocEntrySize > len(buf) {
			// Cannot happen once the ntoc bound held, but the walk must
			// never read past the buffer.
			break
		}
		toc = append(toc, TOCEntry{
			Type:     binary.LittleEndian.Uint32(buf[off : off+4]),
			Subtype:  binary.LittleEndian.Uint32(buf[off+4 : off+8]),
			Position: binary.LittleEndian.Uint32(buf[off+8 : off+12]),
		})
	}
	return toc, nil
}

// DecodeFrame decodes the image chunk starting at pos.
//
// Errors are per-chunk: the caller is expected to log them and carry
// on with the remaining chunks rather than abort the file.
func DecodeFrame(buf []byte, pos uint32) (*Frame, error) {
	p := int64(pos)
	if p+chunkHeaderSize > int64(len(buf)) {
		return nil, errors.Errorf("chunk header at offset %d runs past end of file (%d bytes)", pos, len(buf))
	}
	h := buf[p : p+chunkHeaderSize]

	width := int32(binary.LittleEndian.Uint32(h[16:20]))
	height := int32(binary.LittleEndian.Uint32(h[20:24]))
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("chunk at offset %d has non-positive size %dx%d", pos, width, height)
	}
	xhot := int32(binary.LittleEndian.Uint32(h[24:28]))
	yhot := int32(binary.LittleEndian.Uint32(h[28:32]))
	delay := binary.LittleEndian.Uint32(h[32:36])

	n := int64(width) * int64(height) * 4
	if p+chunkHeaderSize+n > int64(len(buf)) {
		return nil, errors.Errorf("pixel payload of %dx%d chunk at offset %d runs past end of file", width, height, pos)
	}
	src := buf[p+chunkHeaderSize : p+chunkHeaderSize+n]

	// Pixels are stored as B,G,R,A words; emit R,G,B,A. This swap is the
	// whole transformation: no premultiplication, no gamma.
	pix := make([]byte, n)
	for i := int64(0); i < n; i += 4 {
		pix[i+0] = src[i+2]
		pix[i+1] = src[i+1]
		pix[i+2] = src[i+0]
		pix[i+3] = src[i+3]
	}

	return &Frame{
		Width:    int(width),
		Height:   int(height),
		HotspotX: int(xhot),
		HotspotY: int(yhot),
		Delay:    delay,
		Pix:      pix,
	}, nil
}

// DecodeAll walks the table of contents and decodes every image chunk.
//
// Chunks that fail to decode are logged and skipped; only file-level
// problems (bad magic, truncated TOC) produce an error. Frames are
// returned in TOC order.
func DecodeAll(buf []byte) ([]*Frame, error) {
	toc, err := ReadTOC(buf)
	if err != nil {
		return nil, err
	}

	var frames []*Frame
	for i, e := range toc {
		if !e.IsImage() {
			glog.V(2).Infof("skipping TOC entry %d with chunk type %08x", i, e.Type)
			continue
		}
		fr, err := DecodeFrame(buf, e.Position)
		if err != nil {
			glog.Warningf("skipping image chunk %d: %v", i, err)
			continue
		}
		frames = append(frames, fr)
	}
	return frames, nil
}
