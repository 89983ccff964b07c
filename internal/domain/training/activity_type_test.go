package training

import "testing"

func TestParseActivityType(t *testing.T) {
	tests := []struct {
		input    string
		expected ActivityType
	}{
		{"RUNNING", ActivityRunning},
		{"running", ActivityRunning},
		{"Cycling", ActivityCycling},
		{"  swimming ", ActivitySwimming},
		{"TENNIS", ActivityTennis},
		{"walking", ActivityWalking},
	}

	for _, tt := range tests {
		got, err := ParseActivityType(tt.input)
		if err != nil {
			t.Errorf("ParseActivityType(%q): expected no error, got %v", tt.input, err)
			continue
		}
		if got != tt.expected {
			t.Errorf("ParseActivityType(%q): expected %s, got %s", tt.input, tt.expected, got)
		}
	}
}

func TestParseActivityType_Unknown(t *testing.T) {
	for _, input := range []string{"", "JOGGING", "RUN NING"} {
		if _, err := ParseActivityType(input); err == nil {
			t.Errorf("ParseActivityType(%q): expected error, got none", input)
		}
	}
}

func TestActivityTypeDisplayName(t *testing.T) {
	if got := ActivityRunning.DisplayName(); got != "Running" {
		t.Errorf("Expected Running, got %s", got)
	}
	if got := ActivitySwimming.DisplayName(); got != "Swimming" {
		t.Errorf("Expected Swimming, got %s", got)
	}
}

func TestActivityTypeValid(t *testing.T) {
	if ActivityType("HIKING").Valid() {
		t.Error("Expected HIKING to be invalid")
	}
	if !ActivityTennis.Valid() {
		t.Error("Expected TENNIS to be valid")
	}
}
