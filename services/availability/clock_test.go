package availability

import "testing"

func TestParseSlot(t *testing.T) {
	cases := []struct {
		label   string
		want    int
		wantErr bool
	}{
		{"9:00 AM", 9 * 60, false},
		{"12:00 PM", 12 * 60, false},
		{"12:00 AM", 0, false},
		{"1:00 PM", 13 * 60, false},
		{"6:00 PM", 18 * 60, false},
		{"11:30 PM", 23*60 + 30, false},
		{"13:00 PM", 0, true},
		{"9:00", 0, true},
		{"9:00 XM", 0, true},
		{"", 0, true},
		{"garbage", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseSlot(tc.label)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseSlot(%q): expected error, got %d", tc.label, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSlot(%q): unexpected error %v", tc.label, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseSlot(%q) = %d, want %d", tc.label, got, tc.want)
		}
	}
}

func TestParseClock(t *testing.T) {
	cases := []struct {
		clock   string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 9 * 60, false},
		{"17:00", 17 * 60, false},
		{"23:59", 23*60 + 59, false},
		{"24:00", 0, true},
		{"09:60", 0, true},
		{"0900", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseClock(tc.clock)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q): expected error, got %d", tc.clock, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q): unexpected error %v", tc.clock, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tc.clock, got, tc.want)
		}
	}
}

func TestParseDateWeekday(t *testing.T) {
	// 2025-06-01 is a Sunday.
	cases := []struct {
		date string
		want int
	}{
		{"2025-06-01", 0},
		{"2025-06-02", 1},
		{"2025-06-07", 6},
	}
	for _, tc := range cases {
		got, err := ParseDate(tc.date)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", tc.date, err)
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %d, want %d", tc.date, got, tc.want)
		}
	}

	for _, bad := range []string{"", "06/01/2025", "2025-13-01", "tomorrow"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q): expected error", bad)
		}
	}
}

func TestAddMinutesRollsOver(t *testing.T) {
	if got := AddMinutes(23*60, 120); got != 60 {
		t.Errorf("AddMinutes(23:00, 120) = %d, want 60", got)
	}
	if got := AddMinutes(10*60, 60); got != 11*60 {
		t.Errorf("AddMinutes(10:00, 60) = %d, want %d", got, 11*60)
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name           string
		s1, e1, s2, e2 int
		want           bool
	}{
		{"identical", 600, 660, 600, 660, true},
		{"candidate inside existing", 660, 720, 600, 720, true},
		{"candidate spills into existing", 540, 660, 600, 660, true},
		{"touching end-to-start", 600, 660, 660, 720, false},
		{"touching start-to-end", 660, 720, 600, 660, false},
		{"disjoint", 540, 600, 720, 780, false},
	}
	for _, tc := range cases {
		if got := Overlaps(tc.s1, tc.e1, tc.s2, tc.e2); got != tc.want {
			t.Errorf("%s: Overlaps(%d,%d,%d,%d) = %v, want %v",
				tc.name, tc.s1, tc.e1, tc.s2, tc.e2, got, tc.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "00:00"},
		{9 * 60, "09:00"},
		{13*60 + 5, "13:05"},
		{25 * 60, "01:00"},
	}
	for _, tc := range cases {
		if got := FormatClock(tc.minutes); got != tc.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tc.minutes, got, tc.want)
		}
	}
}
