package svgplan

import (
	"strings"
	"testing"
)

func TestRenderDeterministic(t *testing.T) {
	if Render(2) != Render(2) {
		t.Error("Render(2) is not deterministic")
	}
}

func TestRenderOneBHK(t *testing.T) {
	svg := Render(1)

	if !strings.HasPrefix(svg, `<svg width="800" height="600"`) {
		t.Errorf("unexpected svg open tag: %.60s", svg)
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("svg is not closed")
	}
	if !strings.Contains(svg, `fill="#f5f5f5"`) {
		t.Error("missing background rect")
	}

	// Фон + 4 комнаты.
	if got := strings.Count(svg, "<rect"); got != 5 {
		t.Errorf("got %d rects, want 5", got)
	}
	if got := strings.Count(svg, "<text"); got != 4 {
		t.Errorf("got %d labels, want 4", got)
	}

	for _, label := range []string{">Living<", ">Bedroom<", ">Kitchen<", ">Bathroom<"} {
		if !strings.Contains(svg, label) {
			t.Errorf("missing label %s", label)
		}
	}

	// Подпись стоит по центру комнаты: Living (50,50,300x250) -> (200, 175).
	if !strings.Contains(svg, `<text x="200" y="175"`) {
		t.Error("Living label is not centered")
	}
}

func TestRenderClampsCategory(t *testing.T) {
	if Render(0) != Render(1) {
		t.Error("Render(0) should match Render(1)")
	}
	if Render(9) != Render(4) {
		t.Error("Render(9) should match Render(4)")
	}
}
