package dataset

import "testing"

func TestDetectColumns(t *testing.T) {
	cases := []struct {
		name     string
		headers  []string
		wantName int
		wantAff  int
	}{
		{name: "student and school", headers: []string{"Student Name", "School"}, wantName: 0, wantAff: 1},
		{name: "single column", headers: []string{"Participants"}, wantName: 0, wantAff: -1},
		{name: "single empty header", headers: []string{""}, wantName: 0, wantAff: -1},
		{name: "positional fallback", headers: []string{"Full Name", "Organization"}, wantName: 0, wantAff: 1},
		{name: "no probe hits at all", headers: []string{"A", "B", "C"}, wantName: 0, wantAff: 1},
		{name: "name not first", headers: []string{"No", "Student", "Institution"}, wantName: 1, wantAff: 2},
		{name: "case insensitive", headers: []string{"STUDENT NAME", "SCHOOL NAME"}, wantName: 0, wantAff: 1},
		{name: "school before name column skipped", headers: []string{"School Name", "Student"}, wantName: 0, wantAff: 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DetectColumns(tc.headers)
			if got.NameIdx != tc.wantName || got.AffiliationIdx != tc.wantAff {
				t.Fatalf("got name=%d aff=%d want name=%d aff=%d", got.NameIdx, got.AffiliationIdx, tc.wantName, tc.wantAff)
			}
		})
	}
}
