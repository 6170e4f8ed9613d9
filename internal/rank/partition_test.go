package rank

import (
	"testing"

	"github.com/beaconlauncher/beacon/internal/candidate"
)

func TestLaneFor_Apps(t *testing.T) {
	tests := []struct {
		name string
		path string
		want Lane
	}{
		{"exe", "C:/apps/tool.exe", LaneHorizontal},
		{"lnk", "C:/menu/Tool.lnk", LaneHorizontal},
		{"uwp", "shell:AppsFolder/Microsoft.App_x!App", LaneHorizontal},
		{"settings uri", "ms-settings:display", LaneHorizontal},
		{"bare path", "C:/apps/tool", LaneVertical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := candidate.NewApp(candidate.AppInfo{Name: "Tool", Path: tt.path})
			if got := LaneFor(c); got != tt.want {
				t.Errorf("LaneFor(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestLaneFor_SystemFolders(t *testing.T) {
	tests := []struct {
		path string
		want Lane
	}{
		{"control", LaneHorizontal},
		{"ms-settings:", LaneHorizontal},
		{"::{645FF040-5081-101B-9F08-00AA002F954E}", LaneHorizontal},
		{"C:/Users/me/Documents", LaneVertical},
	}
	for _, tt := range tests {
		c := candidate.NewSystemFolder("f", tt.path)
		if got := LaneFor(c); got != tt.want {
			t.Errorf("LaneFor(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestLaneFor_OtherKinds(t *testing.T) {
	if got := LaneFor(candidate.NewPlugin(candidate.PluginDescriptor{ID: "p", Name: "p"})); got != LaneHorizontal {
		t.Errorf("plugin: expected horizontal, got %v", got)
	}
	vertical := []candidate.Candidate{
		candidate.NewHistoryFile(candidate.FileHistoryItem{Name: "f", Path: "D:/f"}),
		candidate.NewEverythingHit(candidate.EverythingResult{Name: "e", Path: "D:/e"}),
		candidate.NewURL("u", "https://u"),
		candidate.NewEmail("a@b.c"),
		candidate.NewMemo(candidate.MemoItem{ID: "m", Title: "m"}),
		candidate.NewSearchEngine("Google", "https://g/?q=x"),
		candidate.NewAiAnswer("why"),
		candidate.NewJSONFormatter(),
		candidate.NewHistoryShortcut(),
	}
	for _, c := range vertical {
		if got := LaneFor(c); got != LaneVertical {
			t.Errorf("%v: expected vertical, got %v", c.Kind, got)
		}
	}
}

func TestPartition_Totality(t *testing.T) {
	cs := []candidate.Candidate{
		candidate.NewApp(candidate.AppInfo{Name: "a", Path: "C:/a.exe"}),
		candidate.NewHistoryFile(candidate.FileHistoryItem{Name: "h", Path: "D:/h"}),
		candidate.NewPlugin(candidate.PluginDescriptor{ID: "p", Name: "p"}),
		candidate.NewEverythingHit(candidate.EverythingResult{Name: "e", Path: "D:/e"}),
		candidate.NewMemo(candidate.MemoItem{ID: "m", Title: "m"}),
	}

	h, v := Partition(cs)
	if len(h)+len(v) != len(cs) {
		t.Fatalf("expected %d total across lanes, got %d+%d", len(cs), len(h), len(v))
	}

	seen := make(map[string]int)
	for _, c := range h {
		seen[c.Path]++
	}
	for _, c := range v {
		seen[c.Path]++
	}
	for _, c := range cs {
		if seen[c.Path] != 1 {
			t.Errorf("candidate %q appears %d times across lanes", c.Path, seen[c.Path])
		}
	}
}

func TestPartition_PreservesOrder(t *testing.T) {
	cs := []candidate.Candidate{
		candidate.NewEverythingHit(candidate.EverythingResult{Name: "e1", Path: "D:/1"}),
		candidate.NewApp(candidate.AppInfo{Name: "a1", Path: "C:/1.exe"}),
		candidate.NewEverythingHit(candidate.EverythingResult{Name: "e2", Path: "D:/2"}),
		candidate.NewApp(candidate.AppInfo{Name: "a2", Path: "C:/2.exe"}),
	}

	h, v := Partition(cs)
	if h[0].Name != "a1" || h[1].Name != "a2" {
		t.Errorf("horizontal order not preserved: %v", h)
	}
	if v[0].Name != "e1" || v[1].Name != "e2" {
		t.Errorf("vertical order not preserved: %v", v)
	}
}
