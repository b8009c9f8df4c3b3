package session

import "testing"

func TestTimeToMinutes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "midnight", input: "00:00", want: 0},
		{name: "9am", input: "09:00", want: 540},
		{name: "noon", input: "12:00", want: 720},
		{name: "10pm", input: "22:00", want: 1320},
		{name: "11:59pm", input: "23:59", want: 1439},
		{name: "with minutes", input: "09:30", want: 570},
		{name: "invalid short", input: "9:00", want: 0},
		{name: "empty", input: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TimeToMinutes(tt.input)
			if got != tt.want {
				t.Errorf("TimeToMinutes(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestMinutesToTime(t *testing.T) {
	tests := []struct {
		name  string
		input int
		want  string
	}{
		{name: "midnight", input: 0, want: "00:00"},
		{name: "8am", input: 480, want: "08:00"},
		{name: "noon", input: 720, want: "12:00"},
		{name: "10pm", input: 1320, want: "22:00"},
		{name: "with minutes", input: 570, want: "09:30"},
		{name: "negative clamps to zero", input: -10, want: "00:00"},
		{name: "over 24h clamps", input: 1500, want: "23:59"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MinutesToTime(tt.input)
			if got != tt.want {
				t.Errorf("MinutesToTime(%d) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestAddMinutes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		mins  int
		want  string
	}{
		{name: "plain hour", input: "09:00", mins: 60, want: "10:00"},
		{name: "cross hour", input: "09:45", mins: 30, want: "10:15"},
		{name: "wraps past midnight", input: "23:30", mins: 60, want: "00:30"},
		{name: "wraps exactly", input: "23:00", mins: 60, want: "00:00"},
		{name: "negative wraps back", input: "00:30", mins: -60, want: "23:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddMinutes(tt.input, tt.mins)
			if got != tt.want {
				t.Errorf("AddMinutes(%q, %d) = %q, want %q", tt.input, tt.mins, got, tt.want)
			}
		})
	}
}

func TestTimesOverlap(t *testing.T) {
	tests := []struct {
		name                       string
		start1, end1, start2, end2 string
		want                       bool
	}{
		{name: "before", start1: "09:00", end1: "10:00", start2: "10:00", end2: "11:00", want: false},
		{name: "after", start1: "11:00", end1: "12:00", start2: "09:00", end2: "10:00", want: false},
		{name: "partial", start1: "09:00", end1: "10:30", start2: "10:00", end2: "11:00", want: true},
		{name: "contained", start1: "09:00", end1: "12:00", start2: "10:00", end2: "11:00", want: true},
		{name: "identical", start1: "09:00", end1: "10:00", start2: "09:00", end2: "10:00", want: true},
		{name: "touching edges", start1: "09:00", end1: "10:00", start2: "08:00", end2: "09:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TimesOverlap(tt.start1, tt.end1, tt.start2, tt.end2)
			if got != tt.want {
				t.Errorf("TimesOverlap(%q, %q, %q, %q) = %v, want %v",
					tt.start1, tt.end1, tt.start2, tt.end2, got, tt.want)
			}
		})
	}
}

func TestFormatTime12h(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "09:00", want: "9:00 AM"},
		{input: "12:30", want: "12:30 PM"},
		{input: "00:15", want: "12:15 AM"},
		{input: "13:05", want: "1:05 PM"},
		{input: "21:45", want: "9:45 PM"},
	}

	for _, tt := range tests {
		if got := FormatTime12h(tt.input); got != tt.want {
			t.Errorf("FormatTime12h(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFormatTimeCompact(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "09:00", want: "9:00a"},
		{input: "12:30", want: "12:30p"},
		{input: "00:15", want: "12:15a"},
		{input: "13:05", want: "1:05p"},
	}

	for _, tt := range tests {
		if got := FormatTimeCompact(tt.input); got != tt.want {
			t.Errorf("FormatTimeCompact(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
