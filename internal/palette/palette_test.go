package palette

import (
	"regexp"
	"testing"
)

func TestAssign_EvenHueSpacing(t *testing.T) {
	colors := Assign([]string{"review", "dev", "meeting"})

	expected := map[string]float64{
		"dev":     0,
		"meeting": 120,
		"review":  240,
	}
	if len(colors) != len(expected) {
		t.Fatalf("Assign() returned %d colors, expected %d", len(colors), len(expected))
	}
	for label, hue := range expected {
		c, ok := colors[label]
		if !ok {
			t.Errorf("missing color for %q", label)
			continue
		}
		if c.Hue != hue {
			t.Errorf("%q hue = %v, expected %v", label, c.Hue, hue)
		}
		if c.Saturation != Saturation || c.Lightness != Lightness || c.Alpha != Alpha {
			t.Errorf("%q = %+v, expected fixed saturation/lightness/alpha", label, c)
		}
	}
}

func TestAssign_FloorsStep(t *testing.T) {
	// 360 / 7 = 51.43, floored to 51
	labels := []string{"a", "b", "c", "d", "e", "f", "g"}
	colors := Assign(labels)
	if got := colors["g"].Hue; got != 306 {
		t.Errorf("hue of 7th label = %v, expected 306", got)
	}
}

func TestAssign_OrderIndependent(t *testing.T) {
	a := Assign([]string{"x", "y", "z"})
	b := Assign([]string{"z", "x", "y", "x"})
	for label, c := range a {
		if b[label] != c {
			t.Errorf("%q: %+v != %+v", label, c, b[label])
		}
	}
}

func TestAssign_SkipsEmptyAndDuplicates(t *testing.T) {
	colors := Assign([]string{"", "dev", "dev", ""})
	if len(colors) != 1 {
		t.Fatalf("Assign() returned %d colors, expected 1", len(colors))
	}
	if colors["dev"].Hue != 0 {
		t.Errorf("single label hue = %v, expected 0", colors["dev"].Hue)
	}
}

func TestAssign_Empty(t *testing.T) {
	if got := Assign(nil); len(got) != 0 {
		t.Errorf("Assign(nil) = %v, expected empty map", got)
	}
}

func TestLookup_Fallback(t *testing.T) {
	colors := Assign([]string{"dev"})
	if got := Lookup(colors, "unknown"); got != Fallback {
		t.Errorf("Lookup() = %+v, expected Fallback", got)
	}
	if Fallback.Alpha != 1 {
		t.Errorf("Fallback alpha = %v, expected opaque", Fallback.Alpha)
	}
	if got := Lookup(colors, "dev"); got == Fallback {
		t.Error("Lookup() returned Fallback for an assigned label")
	}
}

func TestColor_CSS(t *testing.T) {
	c := Color{Hue: 120, Saturation: 0.7, Lightness: 0.5, Alpha: 0.5}
	if got := c.CSS(); got != "hsla(120, 70%, 50%, 0.50)" {
		t.Errorf("CSS() = %q", got)
	}
}

func TestColor_Hex(t *testing.T) {
	hexPattern := regexp.MustCompile(`^#[0-9a-f]{6}$`)
	tests := []struct {
		name  string
		color Color
		want  string
	}{
		{"red hue", Color{Hue: 0, Saturation: 1, Lightness: 0.5, Alpha: 1}, "#ff0000"},
		{"fallback gray", Fallback, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.color.Hex()
			if !hexPattern.MatchString(got) {
				t.Errorf("Hex() = %q, expected #rrggbb", got)
			}
			if tt.want != "" && got != tt.want {
				t.Errorf("Hex() = %q, expected %q", got, tt.want)
			}
		})
	}
}
