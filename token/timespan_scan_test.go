package token

import "testing"

func TestScanTimeOrSpan(t *testing.T) {
	tests := []struct {
		in                   string
		wantHasDays          bool
		wantNegative         bool
		wantHours, wantMins  int
		wantSecs, wantMillis int
		wantZone             string
	}{
		{in: "01:02:03", wantHours: 1, wantMins: 2, wantSecs: 3},
		{in: "01:02", wantHours: 1, wantMins: 2},
		{in: "-01:02:03", wantNegative: true, wantHours: 1, wantMins: 2, wantSecs: 3},
		{in: "1d:01:02:03", wantHasDays: true, wantHours: 1, wantMins: 2, wantSecs: 3},
		{in: "01:02:03.5", wantHours: 1, wantMins: 2, wantSecs: 3, wantMillis: 500},
		{in: "01:02:03-GMT+05:00", wantHours: 1, wantMins: 2, wantSecs: 3, wantZone: "GMT+05:00"},
	}
	for _, tt := range tests {
		s, err := ScanTimeOrSpan(tt.in)
		if err != nil {
			t.Errorf("ScanTimeOrSpan(%q): %v", tt.in, err)
			continue
		}
		if s.HasDays != tt.wantHasDays || s.Negative != tt.wantNegative ||
			s.Hours != tt.wantHours || s.Minutes != tt.wantMins ||
			s.Seconds != tt.wantSecs || s.Millisec != tt.wantMillis || s.Zone != tt.wantZone {
			t.Errorf("ScanTimeOrSpan(%q) = %+v, want days=%v neg=%v %02d:%02d:%02d.%03d zone=%q",
				tt.in, s, tt.wantHasDays, tt.wantNegative, tt.wantHours, tt.wantMins, tt.wantSecs, tt.wantMillis, tt.wantZone)
		}
	}
}

func TestScanTimeOrSpanErrors(t *testing.T) {
	for _, in := range []string{"01", "01:02:03:04:05", "xx:02", "01:xx"} {
		if _, err := ScanTimeOrSpan(in); err == nil {
			t.Errorf("ScanTimeOrSpan(%q): expected error", in)
		}
	}
}
