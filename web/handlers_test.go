package web

import (
	"image/gif"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"github.com/Timmatt-Lee/xcur2png/ttesting"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	dir := t.TempDir()

	pix := func(b, g, r byte) []byte { return []byte{b, g, r, 255} }
	data := ttesting.BuildCursorFile(
		ttesting.CursorChunk{Width: 1, Height: 1, Payload: pix(10, 20, 30)},
		ttesting.CursorChunk{Width: 2, Height: 2, Delay: 100, Payload: append(append(append(pix(1, 1, 1), pix(2, 2, 2)...), pix(3, 3, 3)...), pix(4, 4, 4)...)},
		ttesting.CursorChunk{Width: 2, Height: 2, Delay: 100, Payload: append(append(append(pix(5, 5, 5), pix(6, 6, 6)...), pix(7, 7, 7)...), pix(8, 8, 8)...)},
	)
	if err := os.WriteFile(filepath.Join(dir, "left_ptr"), data, 0644); err != nil {
		t.Fatal(err)
	}

	r := mux.NewRouter()
	NewHandler(dir, 0).RegisterRoutes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestSingleHandler(t *testing.T) {
	srv := newTestServer(t)

	resp := get(t, srv.URL+"/cursor/left_ptr/1x1.png")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: got %d; want 200", resp.StatusCode)
	}
	img, err := png.Decode(resp.Body)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	ttesting.AssertEqualInt(t, "width", img.Bounds().Dx(), 1)

	r, g, b, _ := img.At(0, 0).RGBA()
	if r>>8 != 30 || g>>8 != 20 || b>>8 != 10 {
		t.Errorf("pixel: got %d %d %d; want 30 20 10", r>>8, g>>8, b>>8)
	}
}

func TestStripHandler(t *testing.T) {
	srv := newTestServer(t)

	resp := get(t, srv.URL+"/cursor/left_ptr/2x2_strip.png")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: got %d; want 200", resp.StatusCode)
	}
	img, err := png.Decode(resp.Body)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	ttesting.AssertEqualInt(t, "strip width", img.Bounds().Dx(), 2)
	ttesting.AssertEqualInt(t, "strip height", img.Bounds().Dy(), 4)
}

func TestGIFHandler(t *testing.T) {
	srv := newTestServer(t)

	resp := get(t, srv.URL+"/cursor/left_ptr/2x2.gif")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: got %d; want 200", resp.StatusCode)
	}
	g, err := gif.DecodeAll(resp.Body)
	if err != nil {
		t.Fatalf("gif.DecodeAll: %v", err)
	}
	ttesting.AssertEqualInt(t, "gif frames", len(g.Image), 2)
}

func TestNotFound(t *testing.T) {
	srv := newTestServer(t)

	if resp := get(t, srv.URL+"/cursor/no_such/1x1.png"); resp.StatusCode != http.StatusNotFound {
		t.Errorf("missing cursor: got %d; want 404", resp.StatusCode)
	}
	if resp := get(t, srv.URL+"/cursor/left_ptr/9x9.png"); resp.StatusCode != http.StatusNotFound {
		t.Errorf("missing size: got %d; want 404", resp.StatusCode)
	}
}

func TestETagRoundTrip(t *testing.T) {
	srv := newTestServer(t)

	resp := get(t, srv.URL+"/cursor/left_ptr/1x1.png")
	etag := resp.Header.Get("ETag")
	if etag == "" {
		t.Fatal("no ETag on first response")
	}

	req, err := http.NewRequest("GET", srv.URL+"/cursor/left_ptr/1x1.png", nil)
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("If-None-Match", etag)
	resp2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusNotModified {
		t.Errorf("conditional GET: got %d; want 304", resp2.StatusCode)
	}
}

func TestIndexHandler(t *testing.T) {
	srv := newTestServer(t)

	resp := get(t, srv.URL+"/")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status: got %d; want 200", resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(body), "left_ptr") {
		t.Error("index does not list left_ptr")
	}
	if !strings.Contains(string(body), "data:image/png") {
		t.Error("index has no data URL thumbnails")
	}
}
