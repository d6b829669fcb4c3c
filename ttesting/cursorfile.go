package ttesting

import "encoding/binary"

// CursorChunk describes one chunk for BuildCursorFile. Type zero means
// an image chunk; Payload holds the BGRA pixels for image chunks.
type CursorChunk struct {
	Type          uint32
	Width, Height int32
	XHot, YHot    int32
	Delay         uint32
	Payload       []byte
}

const (
	fileHeaderSize  = 16
	tocEntrySize    = 12
	chunkHeaderSize = 36
	imageChunkType  = 0xfffd0002
)

// BuildCursorFile assembles an Xcursor container from the passed
// chunks, laid out header, TOC, then chunk bodies back to back, the
// way theme files are written in practice.
func BuildCursorFile(chunks ...CursorChunk) []byte {
	var toc, body []byte
	for _, c := range chunks {
		typ := c.Type
		if typ == 0 {
			typ = imageChunkType
		}

		entry := make([]byte, tocEntrySize)
		binary.LittleEndian.PutUint32(entry[0:], typ)
		binary.LittleEndian.PutUint32(entry[4:], uint32(c.Width))
		binary.LittleEndian.PutUint32(entry[8:], uint32(fileHeaderSize+len(chunks)*tocEntrySize+len(body)))
		toc = append(toc, entry...)

		hdr := make([]byte, chunkHeaderSize)
		binary.LittleEndian.PutUint32(hdr[0:], chunkHeaderSize)
		binary.LittleEndian.PutUint32(hdr[4:], typ)
		binary.LittleEndian.PutUint32(hdr[8:], uint32(c.Width))
		binary.LittleEndian.PutUint32(hdr[12:], 1)
		binary.LittleEndian.PutUint32(hdr[16:], uint32(c.Width))
		binary.LittleEndian.PutUint32(hdr[20:], uint32(c.Height))
		binary.LittleEndian.PutUint32(hdr[24:], uint32(c.XHot))
		binary.LittleEndian.PutUint32(hdr[28:], uint32(c.YHot))
		binary.LittleEndian.PutUint32(hdr[32:], c.Delay)
		body = append(body, hdr...)
		body = append(body, c.Payload...)
	}

	out := []byte("Xcur")
	out = append(out, make([]byte, 12)...)
	binary.LittleEndian.PutUint32(out[4:], fileHeaderSize)
	binary.LittleEndian.PutUint32(out[8:], 0x10000)
	binary.LittleEndian.PutUint32(out[12:], uint32(len(chunks)))
	out = append(out, toc...)
	out = append(out, body...)
	return out
}
