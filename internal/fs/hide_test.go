package fs

import "testing"

func TestBuildHideListDefaults(t *testing.T) {
	list, err := BuildHideList(HideOptions{})
	if err != nil {
		t.Fatalf("BuildHideList: %v", err)
	}
	if len(list.Patterns) != 0 {
		t.Errorf("expected no patterns without Builtin, got %v", list.Patterns)
	}
	if list.Hides(".git") {
		t.Error("empty list should hide nothing")
	}
}

func TestBuildHideListBuiltinRemove(t *testing.T) {
	list, err := BuildHideList(HideOptions{Builtin: true, Remove: []string{".git"}})
	if err != nil {
		t.Fatalf("BuildHideList: %v", err)
	}
	if list.Hides(".git") {
		t.Error("removed builtin .git should not be hidden")
	}
	if !list.Hides(".DS_Store") {
		t.Error("expected .DS_Store hidden by builtin")
	}
}

func TestBuildHideListDedupe(t *testing.T) {
	list, err := BuildHideList(HideOptions{Builtin: true, Patterns: []string{"*.pyc", "*.pyc"}})
	if err != nil {
		t.Fatalf("BuildHideList: %v", err)
	}
	count := 0
	for _, p := range list.Patterns {
		if p == "*.pyc" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("*.pyc appears %d times, want 1", count)
	}
}

func TestBuildHideListInvalid(t *testing.T) {
	if _, err := BuildHideList(HideOptions{Patterns: []string{"[unclosed"}}); err == nil {
		t.Error("expected error for invalid glob")
	}
}

func TestHides(t *testing.T) {
	list, err := BuildHideList(HideOptions{Patterns: []string{".*", "*.log"}})
	if err != nil {
		t.Fatalf("BuildHideList: %v", err)
	}

	tests := []struct {
		name   string
		hidden bool
	}{
		{".env", true},
		{".git", true},
		{"app.log", true},
		{"main.go", false},
		{"logs", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := list.Hides(tt.name); got != tt.hidden {
				t.Errorf("Hides(%q) = %v, want %v", tt.name, got, tt.hidden)
			}
		})
	}
}

func TestNilHideList(t *testing.T) {
	var list *HideList
	if list.Hides("anything") {
		t.Error("nil list should hide nothing")
	}
}
