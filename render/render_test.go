package render

import (
	"bytes"
	"image/gif"
	"testing"

	"github.com/Timmatt-Lee/xcur2png/ttesting"
	"github.com/Timmatt-Lee/xcur2png/xcursor"
)

// testFrame makes a w x h frame whose pixels are all set to the passed
// RGBA value, so frames can be told apart in composed output.
func testFrame(w, h int, delay uint32, rgba [4]byte) *xcursor.Frame {
	pix := make([]byte, w*h*4)
	for i := 0; i < len(pix); i += 4 {
		copy(pix[i:], rgba[:])
	}
	return &xcursor.Frame{Width: w, Height: h, Delay: delay, Pix: pix}
}

func TestGroupBySize(t *testing.T) {
	a1 := testFrame(24, 24, 0, [4]byte{1, 0, 0, 255})
	b1 := testFrame(32, 32, 0, [4]byte{2, 0, 0, 255})
	a2 := testFrame(24, 24, 0, [4]byte{3, 0, 0, 255})
	b2 := testFrame(32, 32, 0, [4]byte{4, 0, 0, 255})
	a3 := testFrame(24, 24, 0, [4]byte{5, 0, 0, 255})

	groups, order := GroupBySize([]*xcursor.Frame{a1, b1, a2, b2, a3})

	if len(order) != 2 {
		t.Fatalf("got %d sizes; want 2", len(order))
	}
	if order[0] != (Size{24, 24}) || order[1] != (Size{32, 32}) {
		t.Errorf("size order: got %v; want [24x24 32x32]", order)
	}

	small := groups[Size{24, 24}]
	if len(small) != 3 || small[0] != a1 || small[1] != a2 || small[2] != a3 {
		t.Errorf("24x24 group out of order: got %v", small)
	}
	large := groups[Size{32, 32}]
	if len(large) != 2 || large[0] != b1 || large[1] != b2 {
		t.Errorf("32x32 group out of order: got %v", large)
	}
}

func TestSampleIdentity(t *testing.T) {
	frames := []*xcursor.Frame{
		testFrame(8, 8, 0, [4]byte{}),
		testFrame(8, 8, 0, [4]byte{}),
		testFrame(8, 8, 0, [4]byte{}),
	}

	for _, target := range []int{3, 4, 100, 0, -1} {
		got := Sample(frames, target)
		if len(got) != len(frames) {
			t.Errorf("target %d: got %d frames; want %d", target, len(got), len(frames))
			continue
		}
		for i := range got {
			if got[i] != frames[i] {
				t.Errorf("target %d: frame %d replaced", target, i)
			}
		}
	}
}

func TestSampleEvenStride(t *testing.T) {
	const n, target = 100, 24

	frames := make([]*xcursor.Frame, n)
	for i := range frames {
		frames[i] = testFrame(8, 8, uint32(i), [4]byte{})
	}

	got := Sample(frames, target)
	if len(got) != target {
		t.Fatalf("got %d frames; want %d", len(got), target)
	}

	prev := -1
	for k, fr := range got {
		want := uint32(k * n / target)
		// Delay doubles as the original index here; it must travel with
		// the frame unchanged.
		if fr.Delay != want {
			t.Errorf("k=%d: got index %d; want %d", k, fr.Delay, want)
		}
		if int(fr.Delay) <= prev {
			t.Errorf("k=%d: index %d not strictly increasing after %d", k, fr.Delay, prev)
		}
		prev = int(fr.Delay)
	}
	if got[0].Delay != 0 {
		t.Errorf("first sampled frame is index %d; want 0", got[0].Delay)
	}
}

func TestSampleTargetJustBelowN(t *testing.T) {
	// N=25, target=24: floor(k*25/24) = k for every k, so the last
	// original frame is the only one dropped and nothing repeats.
	frames := make([]*xcursor.Frame, 25)
	for i := range frames {
		frames[i] = testFrame(8, 8, uint32(i), [4]byte{})
	}

	got := Sample(frames, 24)
	if len(got) != 24 {
		t.Fatalf("got %d frames; want 24", len(got))
	}
	for k, fr := range got {
		if fr.Delay != uint32(k) {
			t.Errorf("k=%d: got index %d; want %d", k, fr.Delay, k)
		}
	}
}

func TestBuildArtifactSingle(t *testing.T) {
	fr := testFrame(4, 3, 0, [4]byte{9, 8, 7, 255})

	art, err := BuildArtifact([]*xcursor.Frame{fr})
	if err != nil {
		t.Fatalf("BuildArtifact: %v", err)
	}
	if art.Kind != Single {
		t.Errorf("kind: got %v; want Single", art.Kind)
	}
	ttesting.AssertEqualInt(t, "frame count", art.FrameCount, 1)
	ttesting.AssertEqualInt(t, "width", art.Image.Bounds().Dx(), 4)
	ttesting.AssertEqualInt(t, "height", art.Image.Bounds().Dy(), 3)
	ttesting.AssertEqualBytes(t, "pixels", art.Image.Pix, fr.Pix)
}

func TestBuildArtifactStrip(t *testing.T) {
	f1 := testFrame(2, 2, 0, [4]byte{255, 0, 0, 255})
	f2 := testFrame(2, 2, 0, [4]byte{0, 255, 0, 255})
	f3 := testFrame(2, 2, 0, [4]byte{0, 0, 255, 255})

	art, err := BuildArtifact([]*xcursor.Frame{f1, f2, f3})
	if err != nil {
		t.Fatalf("BuildArtifact: %v", err)
	}
	if art.Kind != Strip {
		t.Errorf("kind: got %v; want Strip", art.Kind)
	}
	ttesting.AssertEqualInt(t, "frame count", art.FrameCount, 3)
	ttesting.AssertEqualInt(t, "width", art.Image.Bounds().Dx(), 2)
	ttesting.AssertEqualInt(t, "height", art.Image.Bounds().Dy(), 6)

	// Frames are stacked with no gaps, so the strip's pixel buffer is
	// the frames' buffers back to back.
	var want []byte
	for _, fr := range []*xcursor.Frame{f1, f2, f3} {
		want = append(want, fr.Pix...)
	}
	ttesting.AssertEqualBytes(t, "pixels", art.Image.Pix, want)
}

func TestBuildArtifactEmptyGroup(t *testing.T) {
	if _, err := BuildArtifact(nil); err == nil {
		t.Error("got nil error for empty group; want error")
	}
}

func TestEncodeGIF(t *testing.T) {
	frames := []*xcursor.Frame{
		testFrame(4, 4, 0, [4]byte{255, 0, 0, 255}),
		testFrame(4, 4, 30, [4]byte{0, 255, 0, 255}),
		testFrame(4, 4, 120, [4]byte{0, 0, 255, 255}),
	}

	var buf bytes.Buffer
	if err := EncodeGIF(&buf, frames); err != nil {
		t.Fatalf("EncodeGIF: %v", err)
	}

	g, err := gif.DecodeAll(&buf)
	if err != nil {
		t.Fatalf("gif.DecodeAll: %v", err)
	}
	if len(g.Image) != 3 {
		t.Fatalf("got %d frames; want 3", len(g.Image))
	}
	// Zero delay falls back to DefaultDelay; the rest convert ms to
	// 1/100 s ticks.
	wantDelays := []int{DefaultDelay / 10, 3, 12}
	for i, d := range g.Delay {
		if d != wantDelays[i] {
			t.Errorf("frame %d delay: got %d; want %d", i, d, wantDelays[i])
		}
	}
}

func TestEncodeGIFEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := EncodeGIF(&buf, nil); err == nil {
		t.Error("got nil error for empty frame list; want error")
	}
}
