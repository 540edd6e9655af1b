package ui

import "testing"

func TestNormalizeAccentColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"", "", false},
		{"  ", "", false},
		{"39", "39", true},
		{"0", "0", true},
		{"255", "255", true},
		{"256", "", false},
		{"-1", "", false},
		{"#A78BFA", "#A78BFA", true},
		{"#a78bfa", "#a78bfa", true},
		{"#GGGGGG", "", false},
		{"#FFF", "", false},
		{"purple", "", false},
	}

	for _, tt := range tests {
		got, ok := normalizeAccentColor(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("normalizeAccentColor(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestConfigureThemeIgnoresInvalid(t *testing.T) {
	t.Cleanup(func() { ConfigureTheme(defaultAccent) })

	ConfigureTheme("39")
	if color, ok := AccentColor(); !ok || color != "39" {
		t.Fatalf("AccentColor() = %q, %v after valid ConfigureTheme", color, ok)
	}

	ConfigureTheme("not-a-color")
	if color, _ := AccentColor(); color != "39" {
		t.Errorf("invalid accent replaced active color: %q", color)
	}
}

func TestListRendering(t *testing.T) {
	l := NewList()
	l.Add("Name: Amy T")
	l.Add("Tags: None")
	got := l.String()
	want := "  • Name: Amy T\n  • Tags: None\n"
	if got != want {
		t.Errorf("List.String() = %q, want %q", got, want)
	}
}
