package training

import (
	"fmt"
	"strings"
)

// ActivityType is a closed enumeration of physical-activity kinds.
type ActivityType string

const (
	ActivityRunning  ActivityType = "RUNNING"
	ActivityCycling  ActivityType = "CYCLING"
	ActivityWalking  ActivityType = "WALKING"
	ActivitySwimming ActivityType = "SWIMMING"
	ActivityTennis   ActivityType = "TENNIS"
)

var activityDisplayNames = map[ActivityType]string{
	ActivityRunning:  "Running",
	ActivityCycling:  "Cycling",
	ActivityWalking:  "Walking",
	ActivitySwimming: "Swimming",
	ActivityTennis:   "Tennis",
}

// ParseActivityType resolves an enum name, case-insensitively.
func ParseActivityType(s string) (ActivityType, error) {
	a := ActivityType(strings.ToUpper(strings.TrimSpace(s)))
	if !a.Valid() {
		return "", fmt.Errorf("unknown activity type %q", s)
	}
	return a, nil
}

// Valid reports whether the value is a member of the enumeration.
func (a ActivityType) Valid() bool {
	_, ok := activityDisplayNames[a]
	return ok
}

// DisplayName returns the human-readable label for the activity.
func (a ActivityType) DisplayName() string {
	return activityDisplayNames[a]
}

func (a ActivityType) String() string {
	return string(a)
}
