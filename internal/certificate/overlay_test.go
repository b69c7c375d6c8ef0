package certificate

import (
	"testing"

	"certgen/internal"
)

func TestPlanOverlay(t *testing.T) {
	style := DefaultStyle()

	draws, err := PlanOverlay(internal.NormalizedParticipant{RowIndex: 1, Name: "Alice", Affiliation: "Lincoln High"}, style)
	if err != nil {
		t.Fatal(err)
	}
	if len(draws) != 2 {
		t.Fatalf("draws=%d", len(draws))
	}
	if draws[0].Text != "Alice" || draws[0].X != style.Name.X || draws[0].Y != style.Name.Y {
		t.Fatalf("unexpected name draw: %+v", draws[0])
	}
	if draws[1].Text != "Lincoln High" || draws[1].X != style.Affiliation.X || draws[1].Y != style.Affiliation.Y {
		t.Fatalf("unexpected affiliation draw: %+v", draws[1])
	}
}

func TestPlanOverlayEmptyAffiliation(t *testing.T) {
	draws, err := PlanOverlay(internal.NormalizedParticipant{RowIndex: 3, Name: "Bob"}, DefaultStyle())
	if err != nil {
		t.Fatal(err)
	}
	if len(draws) != 1 {
		t.Fatalf("affiliation must not be drawn, draws=%d", len(draws))
	}
	if draws[0].Text != "Bob" {
		t.Fatalf("unexpected draw: %+v", draws[0])
	}
}

func TestHexRGB(t *testing.T) {
	cases := []struct {
		input string
		want  RGB
	}{
		{input: "#000000", want: RGB{0, 0, 0}},
		{input: "#FFFFFF", want: RGB{255, 255, 255}},
		{input: "#FF8000", want: RGB{255, 128, 0}},
		{input: "1a2b3c", want: RGB{0x1a, 0x2b, 0x3c}},
	}
	for _, tc := range cases {
		got, err := hexRGB(tc.input)
		if err != nil {
			t.Fatalf("%s: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("%s: got %+v want %+v", tc.input, got, tc.want)
		}
	}

	for _, bad := range []string{"", "#FFF", "#GGGGGG", "#1234567"} {
		if _, err := hexRGB(bad); err == nil {
			t.Fatalf("%q must not parse", bad)
		}
	}
}
