package challenge

import (
	"strconv"
	"testing"
	"time"
)

var allKinds = []Kind{
	KindAddition, KindSubtraction, KindMultiplication, KindDivision,
	KindShapeID, KindSymmetry, KindClockRead, KindTimeConvert,
	KindMoneyCount, KindUnitConvert, KindTriangleArea, KindRectangleArea,
	KindRectanglePerimeter, KindCircleArea, KindCircleCircumference,
	KindDayOfWeek,
}

func TestSubtraction_NeverNegative(t *testing.T) {
	for _, id := range ProfileIDs() {
		g := NewSeeded(42)
		p := ProfileByID(id)
		for i := 0; i < 200; i++ {
			ch := g.Generate(Request{Profile: p, Kind: KindSubtraction})
			n, err := strconv.Atoi(ch.Answer)
			if err != nil {
				t.Fatalf("profile %s: non-integer answer %q", id, ch.Answer)
			}
			if n < 0 {
				t.Errorf("profile %s: negative subtraction answer %d from %q", id, n, ch.Prompt)
			}
		}
	}
}

func TestDivision_AlwaysExact(t *testing.T) {
	for _, id := range ProfileIDs() {
		g := NewSeeded(7)
		p := ProfileByID(id)
		for i := 0; i < 200; i++ {
			ch := g.Generate(Request{Profile: p, Kind: KindDivision})
			if ch.AnswerType != AnswerTypeInteger {
				t.Fatalf("division answer type = %s, want integer", ch.AnswerType)
			}
			if _, err := strconv.Atoi(ch.Answer); err != nil {
				t.Errorf("profile %s: non-integer quotient %q from %q", id, ch.Answer, ch.Prompt)
			}
		}
	}
}

func TestChoices_CorrectPresentOnceNoDuplicates(t *testing.T) {
	g := NewSeeded(99)
	p := ProfileByID(ProfileMedium)
	for _, kind := range allKinds {
		for i := 0; i < 100; i++ {
			ch := g.Generate(Request{Profile: p, Kind: kind, Format: FormatMultipleChoice})
			if len(ch.Choices) == 0 {
				continue // numeric-only rendering for this kind
			}

			seen := map[string]int{}
			for _, c := range ch.Choices {
				seen[c]++
			}
			for c, n := range seen {
				if n > 1 {
					t.Errorf("kind %s: duplicate choice %q in %v", kind, c, ch.Choices)
				}
			}

			if ch.Format == FormatMultipleChoice {
				if seen[ch.Answer] != 1 {
					t.Errorf("kind %s: correct answer %q appears %d times in %v",
						kind, ch.Answer, seen[ch.Answer], ch.Choices)
				}
			}
			if ch.Format == FormatMultiSelect {
				for _, want := range ch.AnswerSet {
					if seen[want] != 1 {
						t.Errorf("kind %s: set member %q appears %d times in %v",
							kind, want, seen[want], ch.Choices)
					}
				}
			}
		}
	}
}

func TestRoundTrip_GeneratedAnswerAlwaysValidates(t *testing.T) {
	formats := []Format{FormatNumeric, FormatMultipleChoice}
	for _, format := range formats {
		for _, id := range ProfileIDs() {
			g := NewSeeded(1234)
			p := ProfileByID(id)
			for _, kind := range allKinds {
				for i := 0; i < 50; i++ {
					ch := g.Generate(Request{Profile: p, Kind: kind, Format: format})
					correct, answered := Evaluate(ch, ch.Answer)
					if !answered {
						t.Fatalf("kind %s (%s): own answer %q not accepted as input", kind, format, ch.Answer)
					}
					if !correct {
						t.Errorf("kind %s (%s): own answer %q does not validate for %q",
							kind, format, ch.Answer, ch.Prompt)
					}
				}
			}
		}
	}
}

func TestGenerate_UnknownKindFallsBack(t *testing.T) {
	g := NewSeeded(5)
	ch := g.Generate(Request{Profile: ProfileByID(ProfileEasy), Kind: Kind("juggling")})
	if ch.Kind != KindAddition {
		t.Errorf("fallback kind = %s, want %s", ch.Kind, KindAddition)
	}
}

func TestGenerate_DeterministicForSameSeed(t *testing.T) {
	a := NewSeeded(2024)
	b := NewSeeded(2024)
	p := ProfileByID(ProfileMedium)
	for i := 0; i < 50; i++ {
		kind := a.Pick(allKinds)
		ca := a.Generate(Request{Profile: p, Kind: kind})
		cb := b.Generate(Request{Profile: p, Kind: b.Pick(allKinds)})
		if ca.Prompt != cb.Prompt || ca.Answer != cb.Answer {
			t.Fatalf("seeded generators diverged at question %d: %q vs %q", i, ca.Prompt, cb.Prompt)
		}
	}
}

func TestSeedForDate(t *testing.T) {
	day := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	sameDay := time.Date(2026, 3, 14, 22, 0, 0, 0, time.UTC)
	nextDay := day.AddDate(0, 0, 1)

	if SeedForDate(day) != SeedForDate(sameDay) {
		t.Error("seed differs within the same date")
	}
	if SeedForDate(day) == SeedForDate(nextDay) {
		t.Error("seed identical across different dates")
	}
}

func TestRampProfile(t *testing.T) {
	total := 2 * time.Minute
	tests := []struct {
		remaining time.Duration
		want      ProfileID
	}{
		{2 * time.Minute, ProfileEasy},
		{100 * time.Second, ProfileEasy},
		{60 * time.Second, ProfileMedium},
		{30 * time.Second, ProfileHard},
		{0, ProfileHard},
	}
	for _, tt := range tests {
		got := RampProfile(tt.remaining, total)
		if got.ID != tt.want {
			t.Errorf("RampProfile(%v, %v) = %s, want %s", tt.remaining, total, got.ID, tt.want)
		}
	}
}

func TestSymmetry_AlwaysHasACorrectMember(t *testing.T) {
	g := NewSeeded(8)
	p := ProfileByID(ProfileEasy)
	for i := 0; i < 200; i++ {
		ch := g.Generate(Request{Profile: p, Kind: KindSymmetry})
		if len(ch.AnswerSet) == 0 {
			t.Fatal("symmetry challenge with empty answer set")
		}
		for _, want := range ch.AnswerSet {
			if !containsString(ch.Choices, want) {
				t.Errorf("answer member %q missing from choices %v", want, ch.Choices)
			}
		}
	}
}
