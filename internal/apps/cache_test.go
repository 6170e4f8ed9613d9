package apps

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/beaconlauncher/beacon/internal/candidate"
)

func TestLoadCache_MissingFileIsEmpty(t *testing.T) {
	apps, err := LoadCache(t.TempDir())
	if err != nil {
		t.Fatalf("expected missing cache to load as empty, got %v", err)
	}
	if len(apps) != 0 {
		t.Errorf("expected empty list, got %v", apps)
	}
}

func TestSaveAndLoadCache(t *testing.T) {
	dir := t.TempDir()
	in := []candidate.AppInfo{
		{Name: "Chrome", Path: "C:/apps/chrome.exe"},
		{Name: "微信", Path: "C:/apps/wechat.exe", Pinyin: "weixin", PinyinInitials: "wx"},
	}

	if err := SaveCache(dir, in); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	out, err := LoadCache(dir)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 apps, got %d", len(out))
	}
	if out[1].Pinyin != "weixin" || out[1].PinyinInitials != "wx" {
		t.Errorf("pinyin fields lost in round trip: %+v", out[1])
	}
}

func TestLoadCache_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(CachePath(dir), []byte("not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadCache(dir); err == nil {
		t.Error("expected error for corrupt cache file")
	}
}

func TestFilter(t *testing.T) {
	apps := []candidate.AppInfo{
		{Name: "Chrome", Path: "C:/apps/chrome.exe"},
		{Name: "微信", Path: "C:/apps/wechat.exe", Pinyin: "weixin", PinyinInitials: "wx"},
		{Name: "Slack", Path: "C:/tools/slack.exe"},
	}

	tests := []struct {
		query string
		want  []string
	}{
		{"", []string{"Chrome", "微信", "Slack"}},
		{"chrome", []string{"Chrome"}},
		{"weix", []string{"微信"}},
		{"wx", []string{"微信"}},
		{"tools", []string{"Slack"}},
		{"zzz", nil},
	}
	for _, tt := range tests {
		got := Filter(apps, tt.query)
		if len(got) != len(tt.want) {
			t.Errorf("Filter(%q): expected %d apps, got %d", tt.query, len(tt.want), len(got))
			continue
		}
		for i, name := range tt.want {
			if got[i].Name != name {
				t.Errorf("Filter(%q)[%d]: expected %q, got %q", tt.query, i, name, got[i].Name)
			}
		}
	}
}

func TestScan_FindsLaunchables(t *testing.T) {
	dir := t.TempDir()
	mustWrite := func(rel string) {
		path := filepath.Join(dir, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	mustWrite("Tool.exe")
	mustWrite("sub/Shortcut.lnk")
	mustWrite("sub/readme.txt")
	mustWrite("a/b/c/d/TooDeep.exe") // beyond the depth limit

	apps := Scan([]string{dir})

	names := make(map[string]bool)
	for _, a := range apps {
		names[a.Name] = true
	}
	if !names["Tool"] || !names["Shortcut"] {
		t.Errorf("expected Tool and Shortcut, got %v", apps)
	}
	if names["readme"] {
		t.Error("expected non-launchable files to be skipped")
	}
	if names["TooDeep"] {
		t.Error("expected files beyond the depth limit to be skipped")
	}
}
