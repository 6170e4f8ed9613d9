package launch

import (
	"errors"
	"testing"
)

func TestIsExternal(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"C:/Users/me/doc.txt", true},
		{"https://example.com", true},
		{"mailto:someone@example.com", true},
		{"control", true},
		{"ms-settings:", true},
		{"::{645FF040-5081-101B-9F08-00AA002F954E}", true},
		{"memo://abc", false},
		{"plugin://calc", false},
		{"ai://answer", false},
		{"json://format", false},
		{"history://open", false},
	}
	for _, tt := range tests {
		if got := IsExternal(tt.path); got != tt.want {
			t.Errorf("IsExternal(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestOpen_InternalTarget(t *testing.T) {
	err := Open("memo://abc")
	if err == nil {
		t.Fatal("expected error for internal target")
	}
	var internal *ErrInternalTarget
	if !errors.As(err, &internal) {
		t.Errorf("expected ErrInternalTarget, got %T: %v", err, err)
	}
	if internal.Path != "memo://abc" {
		t.Errorf("expected path memo://abc in error, got %q", internal.Path)
	}
}

func TestIsShellPath(t *testing.T) {
	if !isShellPath("::{20D04FE0-3AEA-1069-A2D8-08002B30309D}") {
		t.Error("expected CLSID path to be a shell path")
	}
	if isShellPath("C:/Windows") {
		t.Error("expected plain path not to be a shell path")
	}
}
