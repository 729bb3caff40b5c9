package theme

import (
	"image/color"
	"testing"
)

func rgba(c color.Color) [4]uint32 {
	r, g, b, a := c.RGBA()
	return [4]uint32{r, g, b, a}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("PATHBOUND_THEME", "")
	if got := FromEnv(); got != ModeModern {
		t.Errorf("default mode = %q, want %q", got, ModeModern)
	}

	t.Setenv("PATHBOUND_THEME", "Fantasy")
	if got := FromEnv(); got != ModeFantasy {
		t.Errorf("mode = %q, want %q", got, ModeFantasy)
	}
}

func TestApplySwitchesPalette(t *testing.T) {
	Apply(ModeModern)
	t.Cleanup(func() { Apply(ModeModern) })

	if rgba(Primary) != rgba(Modern.Primary) {
		t.Error("modern palette not active after Apply(ModeModern)")
	}

	Apply(ModeFantasy)
	if rgba(Primary) != rgba(Fantasy.Primary) {
		t.Error("fantasy palette not active after Apply(ModeFantasy)")
	}
	if rgba(Primary) == rgba(Modern.Primary) {
		t.Error("fantasy and modern primaries should differ")
	}
}

func TestApplyRebuildsStyles(t *testing.T) {
	Apply(ModeFantasy)
	t.Cleanup(func() { Apply(ModeModern) })

	fg := Title.GetForeground()
	if fg == nil {
		t.Fatal("title style has no foreground")
	}
	if rgba(fg) != rgba(Fantasy.Primary) {
		t.Error("title style not rebuilt for the fantasy palette")
	}
}
