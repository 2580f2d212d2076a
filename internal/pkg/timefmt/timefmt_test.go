package timefmt

import "testing"

func TestMinutes(t *testing.T) {
	cases := []struct {
		input int
		want  string
	}{
		{0, "0 minutes"},
		{1, "1 minute"},
		{45, "45 minutes"},
		{60, "1 hour"},
		{61, "1 hour and 1 minute"},
		{90, "1 hour and 30 minutes"},
		{120, "2 hours"},
		{510, "8 hours and 30 minutes"},
		{-5, "0 minutes"},
	}
	for _, c := range cases {
		got := Minutes(c.input)
		if got != c.want {
			t.Errorf("Minutes(%d) = %q, want %q", c.input, got, c.want)
		}
	}
}
