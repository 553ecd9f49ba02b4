package utils

import "testing"

func TestValidatePhone(t *testing.T) {
	t.Parallel()

	tests := []struct {
		phone string
		want  bool
	}{
		{"+2348012345678", true},
		{"2348012345678", true},
		{"+1 (555) 123-4567", true},
		{"0123", false}, // leading zero
		{"", false},
		{"not a phone", false},
		{"+123456789012345678", false}, // too long
	}

	for _, tt := range tests {
		if got := ValidatePhone(tt.phone); got != tt.want {
			t.Errorf("ValidatePhone(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}

func TestValidateWeekday(t *testing.T) {
	t.Parallel()

	valid := []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
	for _, day := range valid {
		if !ValidateWeekday(day) {
			t.Errorf("ValidateWeekday(%q) = false, want true", day)
		}
	}

	invalid := []string{"monday", "Mon", "Funday", ""}
	for _, day := range invalid {
		if ValidateWeekday(day) {
			t.Errorf("ValidateWeekday(%q) = true, want false", day)
		}
	}
}

func TestValidateSendTime(t *testing.T) {
	t.Parallel()

	tests := []struct {
		value string
		want  bool
	}{
		{"00:00", true},
		{"09:30", true},
		{"23:59", true},
		{"24:00", false},
		{"9:30", false},
		{"10:60", false},
		{"10:00:00", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidateSendTime(tt.value); got != tt.want {
			t.Errorf("ValidateSendTime(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}
