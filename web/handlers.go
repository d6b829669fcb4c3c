// Package web serves rendered previews of the cursor files in a theme
// directory over HTTP.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"image/png"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/golang/glog"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/vincent-petithory/dataurl"

	"github.com/Timmatt-Lee/xcur2png/convert"
	"github.com/Timmatt-Lee/xcur2png/render"
	"github.com/Timmatt-Lee/xcur2png/xcursor"
)

type Handler struct {
	dir      string
	frameCap int
}

// NewHandler constructs a web handler serving the cursor files found
// directly in dir. frameCap bounds strip and GIF length the same way
// the CLI does; zero means the default cap.
func NewHandler(dir string, frameCap int) *Handler {
	if frameCap == 0 {
		frameCap = convert.DefaultFrameCap
	}
	return &Handler{dir: dir, frameCap: frameCap}
}

// load reads and decodes one cursor file by base name. The name is
// flattened with filepath.Base so requests cannot escape the theme
// directory.
func (h *Handler) load(name string) ([]*xcursor.Frame, os.FileInfo, error) {
	path := filepath.Join(h.dir, filepath.Base(name))
	fi, err := os.Stat(path)
	if err != nil {
		return nil, nil, err
	}
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	frames, err := xcursor.DecodeAll(buf)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "decoding %s", name)
	}
	return frames, fi, nil
}

// sizeGroup picks the frames of one size out of a decoded file.
func sizeGroup(frames []*xcursor.Frame, w, h int) []*xcursor.Frame {
	groups, _ := render.GroupBySize(frames)
	return groups[render.Size{W: w, H: h}]
}

func (h *Handler) etag(fi os.FileInfo, w, hgt int, mime string) string {
	generation := 1 // bump if the way we render changes
	return fmt.Sprintf(`W/"cursor:%d:%d:%d:%dx%d:%s"`, generation, fi.ModTime().Unix(), fi.Size(), w, hgt, mime)
}

// writeCached sends caching headers and reports whether the client's
// copy is already current.
func writeCached(w http.ResponseWriter, r *http.Request, etag string) bool {
	w.Header().Set("Cache-Control", "public; max-age=3600")
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return true
	}
	return false
}

func (h *Handler) cursorVars(w http.ResponseWriter, r *http.Request) (name string, cw, ch int, ok bool) {
	vars := mux.Vars(r)
	cw, err := strconv.Atoi(vars["w"])
	if err != nil {
		http.Error(w, "w not a number", http.StatusBadRequest)
		return "", 0, 0, false
	}
	ch, err = strconv.Atoi(vars["h"])
	if err != nil {
		http.Error(w, "h not a number", http.StatusBadRequest)
		return "", 0, 0, false
	}
	return vars["name"], cw, ch, true
}

func (h *Handler) singleHandler(w http.ResponseWriter, r *http.Request) {
	name, cw, ch, ok := h.cursorVars(w, r)
	if !ok {
		return
	}

	frames, fi, err := h.load(name)
	if err != nil {
		http.Error(w, "failed to load cursor", http.StatusNotFound)
		return
	}
	group := sizeGroup(frames, cw, ch)
	if len(group) == 0 {
		http.Error(w, "no such size", http.StatusNotFound)
		return
	}

	if writeCached(w, r, h.etag(fi, cw, ch, "image/png")) {
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	png.Encode(w, group[0].Image())
}

func (h *Handler) stripHandler(w http.ResponseWriter, r *http.Request) {
	name, cw, ch, ok := h.cursorVars(w, r)
	if !ok {
		return
	}

	frames, fi, err := h.load(name)
	if err != nil {
		http.Error(w, "failed to load cursor", http.StatusNotFound)
		return
	}
	group := sizeGroup(frames, cw, ch)
	if len(group) == 0 {
		http.Error(w, "no such size", http.StatusNotFound)
		return
	}

	art, err := render.BuildArtifact(render.Sample(group, h.frameCap))
	if err != nil {
		http.Error(w, "failed to compose strip", http.StatusInternalServerError)
		glog.Errorf("composing strip for %s %dx%d: %v", name, cw, ch, err)
		return
	}

	if writeCached(w, r, h.etag(fi, cw, ch, "image/png;strip")) {
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	png.Encode(w, art.Image)
}

func (h *Handler) gifHandler(w http.ResponseWriter, r *http.Request) {
	name, cw, ch, ok := h.cursorVars(w, r)
	if !ok {
		return
	}

	frames, fi, err := h.load(name)
	if err != nil {
		http.Error(w, "failed to load cursor", http.StatusNotFound)
		return
	}
	group := sizeGroup(frames, cw, ch)
	if len(group) == 0 {
		http.Error(w, "no such size", http.StatusNotFound)
		return
	}

	if writeCached(w, r, h.etag(fi, cw, ch, "image/gif")) {
		return
	}
	w.Header().Set("Content-Type", "image/gif")
	w.WriteHeader(http.StatusOK)
	if err := render.EncodeGIF(w, render.Sample(group, h.frameCap)); err != nil {
		glog.Errorf("encoding gif for %s %dx%d: %v", name, cw, ch, err)
	}
}

var indexTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<title>cursor theme preview</title>
<table>
{{range .}}<tr>
  <td><img src="{{.Thumb}}" alt="{{.Name}}"></td>
  <td>{{.Name}}</td>
  <td>{{range .Links}}<a href="{{.Href}}">{{.Label}}</a> {{end}}</td>
</tr>
{{end}}</table>
`))

func (h *Handler) indexHandler(w http.ResponseWriter, r *http.Request) {
	entries, err := os.ReadDir(h.dir)
	if err != nil {
		http.Error(w, "failed to read theme directory", http.StatusInternalServerError)
		return
	}

	type link struct {
		Href  string
		Label string
	}
	type row struct {
		Name  string
		Thumb template.URL
		Links []link
	}

	var rows []row
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		frames, _, err := h.load(e.Name())
		if err != nil || len(frames) == 0 {
			glog.V(1).Infof("index: skipping %s: %v", e.Name(), err)
			continue
		}
		_, order := render.GroupBySize(frames)

		// Thumbnail: first frame of the first size in the file.
		var buf bytes.Buffer
		first := sizeGroup(frames, order[0].W, order[0].H)[0]
		if err := png.Encode(&buf, first.Image()); err != nil {
			continue
		}

		rw := row{
			Name:  e.Name(),
			Thumb: template.URL(dataurl.New(buf.Bytes(), "image/png").String()),
		}
		for _, sz := range order {
			rw.Links = append(rw.Links, link{
				Href:  fmt.Sprintf("/cursor/%s/%s.png", e.Name(), sz),
				Label: sz.String(),
			})
		}
		rows = append(rows, rw)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, rows); err != nil {
		glog.Errorf("rendering index: %v", err)
	}
}

// RegisterRoutes attaches the preview routes to the passed router.
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/cursor/{name}/{w:[0-9]+}x{h:[0-9]+}.png", h.singleHandler)
	r.HandleFunc("/cursor/{name}/{w:[0-9]+}x{h:[0-9]+}_strip.png", h.stripHandler)
	r.HandleFunc("/cursor/{name}/{w:[0-9]+}x{h:[0-9]+}.gif", h.gifHandler)
	r.HandleFunc("/", h.indexHandler)
}
