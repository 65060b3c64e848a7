package cache

import (
	"testing"

	"github.com/spf13/afero"
)

func TestFileKey_ChangesWithContent(t *testing.T) {
	fs := afero.NewMemMapFs()

	if err := afero.WriteFile(fs, "web/app.mjs", []byte("one"), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	info1, err := fs.Stat("web/app.mjs")
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	key1 := FileKey("web/app.mjs", info1)

	if err := afero.WriteFile(fs, "web/app.mjs", []byte("rewritten"), 0644); err != nil {
		t.Fatalf("rewrite fixture: %v", err)
	}
	info2, err := fs.Stat("web/app.mjs")
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	key2 := FileKey("web/app.mjs", info2)

	if key1 == key2 {
		t.Error("expected key to change when file size changes")
	}
}

func TestFileKey_DistinctPaths(t *testing.T) {
	fs := afero.NewMemMapFs()

	for _, path := range []string{"web/a.mjs", "web/b.mjs"} {
		if err := afero.WriteFile(fs, path, []byte("same"), 0644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}

	infoA, _ := fs.Stat("web/a.mjs")
	infoB, _ := fs.Stat("web/b.mjs")

	if FileKey("web/a.mjs", infoA) == FileKey("web/b.mjs", infoB) {
		t.Error("expected distinct keys for distinct paths")
	}
}
