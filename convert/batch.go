package convert

import (
	"strings"
	"sync"

	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Batch converts every passed file, fanning out over opts.Jobs workers.
// A failing file never stops its siblings; the error reports which
// files could not be fully processed, for the caller's exit status.
func Batch(paths []string, opts *Options) error {
	jobs := 1
	if opts != nil && opts.Jobs > 1 {
		jobs = opts.Jobs
	}

	var g errgroup.Group
	g.SetLimit(jobs)

	var mu sync.Mutex
	var failed []string
	for _, path := range paths {
		path := path
		g.Go(func() error {
			if err := File(path, opts); err != nil {
				glog.Errorf("%s: %v", path, err)
				mu.Lock()
				failed = append(failed, path)
				mu.Unlock()
			}
			return nil
		})
	}
	g.Wait()

	if len(failed) > 0 {
		return errors.Errorf("%d of %d files failed: %s", len(failed), len(paths), strings.Join(failed, ", "))
	}
	return nil
}
