// Package paths locates cursor files inside installed icon themes.
package paths

import (
	"os"
	"path/filepath"

	"github.com/golang/glog"
)

// themeDirs returns the directories searched for cursor themes, in
// order: $XCURSOR_PATH when set, otherwise the conventional icon
// locations.
func themeDirs() []string {
	if p := os.Getenv("XCURSOR_PATH"); p != "" {
		return filepath.SplitList(p)
	}

	var dirs []string
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".icons"))
	}
	if x := os.Getenv("XDG_DATA_HOME"); x != "" {
		dirs = append(dirs, filepath.Join(x, "icons"))
	}
	dirs = append(dirs, "/usr/local/share/icons", "/usr/share/icons")
	return dirs
}

// Find resolves a cursor reference to a file path. A reference that
// already names an existing file is returned as is; otherwise it is
// treated as a cursor name and looked up under
// <themedir>/<theme>/cursors/<name>.
//
// For example, for ("Adwaita", "left_ptr") it may return
// "/usr/share/icons/Adwaita/cursors/left_ptr". Returns an empty string
// when nothing matches.
func Find(theme, name string) string {
	if _, err := os.Stat(name); err == nil {
		return name
	}

	for _, dir := range themeDirs() {
		path := filepath.Join(dir, theme, "cursors", name)
		if f, err := os.Open(path); err == nil {
			f.Close()
			glog.Infof("paths.Find(%q, %q)=%s", theme, name, path)
			return path
		}
	}
	return ""
}
