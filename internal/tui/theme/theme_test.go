package theme

import (
	"testing"

	"github.com/mgaray/aula/internal/session"
)

func TestLoadAllAvailable(t *testing.T) {
	for _, name := range Available() {
		t.Run(name, func(t *testing.T) {
			th, err := Load(name)
			if err != nil {
				t.Fatalf("Load(%q) error: %v", name, err)
			}
			if th.Name != name {
				t.Errorf("Name = %q, want %q", th.Name, name)
			}
			if th.Bg == "" || th.Fg == "" || th.Accent == "" {
				t.Error("base colors must be set")
			}
			for _, c := range session.Colors() {
				if th.ClassColor(c) == "" {
					t.Errorf("ClassColor(%s) is empty", c)
				}
			}
		})
	}
}

func TestLoadFallsBackToMocha(t *testing.T) {
	th, err := Load("does-not-exist")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if th.Name != "mocha" {
		t.Errorf("fallback theme = %q, want mocha", th.Name)
	}

	th, err = Load("")
	if err != nil || th.Name != "mocha" {
		t.Errorf("empty name should load mocha, got %q (%v)", th.Name, err)
	}
}

func TestClassColorUnknownTag(t *testing.T) {
	th, _ := Load("mocha")
	if got := th.ClassColor(session.Color("pink")); got != th.Accent {
		t.Errorf("unknown tag color = %q, want the accent fallback", got)
	}
}

func TestModalPaletteCoalesce(t *testing.T) {
	th := &Theme{Bg: "#000000", BgHighlight: "#111111", Fg: "#ffffff", FgMuted: "#888888", Accent: "#ff00ff"}
	th.applyDefaults()

	m := th.Modal()
	if m.BaseBg != "#111111" {
		t.Errorf("BaseBg = %q, want the bg highlight", m.BaseBg)
	}
	if m.ModalBorder != "#ff00ff" {
		t.Errorf("ModalBorder = %q, want the accent", m.ModalBorder)
	}
	if m.TextPrimary != "#ffffff" || m.TextMuted != "#888888" {
		t.Error("text colors should fall back to fg and fg_muted")
	}
}

func TestIsAvailable(t *testing.T) {
	if !IsAvailable("Mocha") {
		t.Error("IsAvailable should be case insensitive")
	}
	if IsAvailable("dracula") {
		t.Error("IsAvailable(dracula) = true, want false")
	}
}
