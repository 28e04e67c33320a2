package handlers

import (
	"strings"
	"testing"
)

func TestParsePlan(t *testing.T) {
	raw := `{"rooms": [{"name": "Master Bedroom", "dimensions": {"length": 14, "width": 12, "height": 10}}], "vastu_compliance": "good"}`

	spec, pretty, ok := parsePlan(raw)
	if !ok {
		t.Fatal("valid plan rejected")
	}
	if !strings.Contains(string(spec.Rooms), "Master Bedroom") {
		t.Errorf("rooms payload %s", spec.Rooms)
	}
	if !strings.Contains(pretty, "\n  ") {
		t.Error("plan text is not indented")
	}
}

func TestParsePlanStripsCodeFence(t *testing.T) {
	raw := "```json\n{\"rooms\": [{\"name\": \"Kitchen\"}]}\n```"

	spec, _, ok := parsePlan(raw)
	if !ok {
		t.Fatal("fenced plan rejected")
	}
	if !strings.Contains(string(spec.Rooms), "Kitchen") {
		t.Errorf("rooms payload %s", spec.Rooms)
	}
}

func TestParsePlanBareFence(t *testing.T) {
	raw := "```\n{\"rooms\": [{\"name\": \"Kitchen\"}]}\n```"
	if _, _, ok := parsePlan(raw); !ok {
		t.Error("plan in bare fence rejected")
	}
}

func TestParsePlanRejectsGarbage(t *testing.T) {
	cases := []string{
		"Sure! Here is your house plan: living room, kitchen...",
		"",
		"{}",
		`{"rooms": null}`,
		`{"rooms": []}`,
	}
	for _, raw := range cases {
		if _, _, ok := parsePlan(raw); ok {
			t.Errorf("parsePlan(%q) accepted", raw)
		}
	}
}
