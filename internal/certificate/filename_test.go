package certificate

import "testing"

func TestEntryName(t *testing.T) {
	cases := []struct {
		rowIndex int
		name     string
		want     string
	}{
		{1, "Alice Smith", "001_Alice_Smith_certificate.pdf"},
		{12, "Bob", "012_Bob_certificate.pdf"},
		{123, `a<b>c:d"e/f\g|h?i*j`, "123_a_b_c_d_e_f_g_h_i_j_certificate.pdf"},
		{2, "Tab\there", "002_Tab_here_certificate.pdf"},
	}
	for _, tc := range cases {
		if got := EntryName(tc.rowIndex, tc.name); got != tc.want {
			t.Fatalf("EntryName(%d, %q) = %q, want %q", tc.rowIndex, tc.name, got, tc.want)
		}
	}
}

func TestEntryNameUniqueForDuplicates(t *testing.T) {
	if EntryName(1, "Alice") == EntryName(2, "Alice") {
		t.Fatal("sequence prefix must keep duplicate names unique")
	}
}
