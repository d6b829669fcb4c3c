// Command xcurserv serves rendered previews of a cursor theme directory
// over HTTP.
package main

import (
	"flag"
	"net/http"

	"badc0de.net/pkg/flagutil/v1"

	"github.com/golang/glog"
	"github.com/gorilla/mux"

	_ "golang.org/x/net/trace"

	"github.com/Timmatt-Lee/xcur2png/convert"
	"github.com/Timmatt-Lee/xcur2png/web"
)

var (
	listenAddress      = flag.String("listen_address", ":8080", "http listen address for xcurserv")
	debugListenAddress = flag.String("debug_listen_address", "", "where the debug server will listen; empty disables it")
	themeDir           = flag.String("theme_dir", ".", "directory with cursor files to serve")
	frameCap           = flag.Int("frame_cap", convert.DefaultFrameCap, "maximum frames per strip or gif preview")
)

func main() {
	flagutil.Parse()
	flag.Set("logtostderr", "true")

	if *debugListenAddress != "" {
		go func() {
			glog.Error(http.ListenAndServe(*debugListenAddress, nil))
		}()
	}

	r := mux.NewRouter()
	web.NewHandler(*themeDir, *frameCap).RegisterRoutes(r)

	glog.Infof("serving %s on %s", *themeDir, *listenAddress)
	glog.Fatal(http.ListenAndServe(*listenAddress, r))
}
