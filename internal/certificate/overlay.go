package certificate

import "certgen/internal"

// TextDraw is one centered text placement of the overlay. Coordinates
// are the style's: points, origin bottom-left.
type TextDraw struct {
	Text     string
	X        float64
	Y        float64
	FontSize float64
	Color    RGB
}

// PlanOverlay builds the draw plan for one participant: always the name,
// the affiliation line only when the row carries one.
func PlanOverlay(p internal.NormalizedParticipant, s Style) ([]TextDraw, error) {
	nameColor, err := hexRGB(s.Name.ColorHex)
	if err != nil {
		return nil, err
	}

	draws := []TextDraw{{
		Text:     p.Name,
		X:        s.Name.X,
		Y:        s.Name.Y,
		FontSize: s.Name.FontSize,
		Color:    nameColor,
	}}

	if p.Affiliation != "" {
		affColor, err := hexRGB(s.Affiliation.ColorHex)
		if err != nil {
			return nil, err
		}
		draws = append(draws, TextDraw{
			Text:     p.Affiliation,
			X:        s.Affiliation.X,
			Y:        s.Affiliation.Y,
			FontSize: s.Affiliation.FontSize,
			Color:    affColor,
		})
	}

	return draws, nil
}
