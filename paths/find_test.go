package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFind(t *testing.T) {
	dir := t.TempDir()
	cursors := filepath.Join(dir, "testtheme", "cursors")
	if err := os.MkdirAll(cursors, 0755); err != nil {
		t.Fatal(err)
	}
	cur := filepath.Join(cursors, "left_ptr")
	if err := os.WriteFile(cur, []byte("Xcur"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("XCURSOR_PATH", dir)

	if got := Find("testtheme", "left_ptr"); got != cur {
		t.Errorf("Find by name: got %q; want %q", got, cur)
	}
	if got := Find("testtheme", cur); got != cur {
		t.Errorf("Find by path: got %q; want %q", got, cur)
	}
	if got := Find("testtheme", "no_such_cursor"); got != "" {
		t.Errorf("Find missing: got %q; want empty", got)
	}
	if got := Find("othertheme", "left_ptr"); got != "" {
		t.Errorf("Find wrong theme: got %q; want empty", got)
	}
}
