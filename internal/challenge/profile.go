package challenge

import "time"

// ProfileID names a difficulty profile.
type ProfileID string

const (
	ProfileExtraEasy ProfileID = "extra_easy"
	ProfileEasy      ProfileID = "easy"
	ProfileMedium    ProfileID = "medium"
	ProfileHard      ProfileID = "hard"
)

// Profile bounds the complexity of generated challenges.
// A profile is selected before a session starts and stays fixed for the
// session, except in ramp modes where the active profile is recomputed
// each tick from remaining time.
type Profile struct {
	ID ProfileID

	// MaxOperand bounds addition/subtraction operands.
	MaxOperand int

	// MaxFactor bounds multiplication factors and division divisors/quotients.
	MaxFactor int

	// MaxDimension bounds geometry dimensions (sides, radii).
	MaxDimension int

	// MaxCoins bounds the number of coins per denomination in money questions.
	MaxCoins int

	// OptionCount is the number of multiple-choice options, correct included.
	OptionCount int
}

var profiles = map[ProfileID]Profile{
	ProfileExtraEasy: {ID: ProfileExtraEasy, MaxOperand: 10, MaxFactor: 5, MaxDimension: 6, MaxCoins: 3, OptionCount: 3},
	ProfileEasy:      {ID: ProfileEasy, MaxOperand: 20, MaxFactor: 6, MaxDimension: 10, MaxCoins: 4, OptionCount: 4},
	ProfileMedium:    {ID: ProfileMedium, MaxOperand: 100, MaxFactor: 10, MaxDimension: 15, MaxCoins: 6, OptionCount: 4},
	ProfileHard:      {ID: ProfileHard, MaxOperand: 1000, MaxFactor: 12, MaxDimension: 25, MaxCoins: 9, OptionCount: 4},
}

// ProfileByID returns the named profile, falling back to easy for
// unknown IDs so that callers never fail.
func ProfileByID(id ProfileID) Profile {
	if p, ok := profiles[id]; ok {
		return p
	}
	return profiles[ProfileEasy]
}

// ProfileIDs lists the selectable profiles in ascending difficulty.
func ProfileIDs() []ProfileID {
	return []ProfileID{ProfileExtraEasy, ProfileEasy, ProfileMedium, ProfileHard}
}

// Label returns the display name for a profile.
func (id ProfileID) Label() string {
	switch id {
	case ProfileExtraEasy:
		return "Extra Easy"
	case ProfileEasy:
		return "Easy"
	case ProfileMedium:
		return "Medium"
	case ProfileHard:
		return "Hard"
	}
	return string(id)
}

// RampProfile returns the active profile for ramp modes as a pure
// function of remaining session time: the last third of the session is
// hard, the middle third medium, the first third easy.
func RampProfile(remaining, total time.Duration) Profile {
	if total <= 0 {
		return ProfileByID(ProfileEasy)
	}
	frac := float64(remaining) / float64(total)
	switch {
	case frac <= 1.0/3.0:
		return ProfileByID(ProfileHard)
	case frac <= 2.0/3.0:
		return ProfileByID(ProfileMedium)
	default:
		return ProfileByID(ProfileEasy)
	}
}
