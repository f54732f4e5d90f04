package booking

import "testing"

func TestStandardSlotPolicy(t *testing.T) {
	in := []string{"08:45", "09:07", "11:45", "12:00", "12:45", "13:00", "14:30", "garbage"}
	got := StandardSlotPolicy(in)
	want := []string{"08:45", "11:45", "13:00", "14:30"}

	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestStandardSlotPolicyKeepsOrder(t *testing.T) {
	in := []string{"15:00", "09:00", "10:30"}
	got := StandardSlotPolicy(in)
	if len(got) != 3 || got[0] != "15:00" || got[1] != "09:00" || got[2] != "10:30" {
		t.Fatalf("policy must not reorder slots, got %v", got)
	}
}

func TestMinutesOfDay(t *testing.T) {
	cases := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "07:00", want: 420},
		{in: "13:00", want: 780},
		{in: "00:00", want: 0},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "noon", wantErr: true},
	}
	for _, tc := range cases {
		got, err := minutesOfDay(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("expected error for %q", tc.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("minutesOfDay(%q) error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("minutesOfDay(%q): expected %d, got %d", tc.in, tc.want, got)
		}
	}
}
