package game

import (
	"testing"

	"github.com/abhisek/matharcade/internal/challenge"
)

func TestPoints_StreakMultiplierSteps(t *testing.T) {
	tests := []struct {
		streak int
		want   int
	}{
		{1, 10},  // x1
		{4, 10},  // x1
		{5, 20},  // x2
		{9, 20},  // x2
		{10, 30}, // x3
		{15, 40}, // x4 (cap)
		{20, 40}, // capped
		{40, 40}, // capped
	}
	for _, tt := range tests {
		s := &Session{Scoring: DefaultScoring(), Streak: tt.streak}
		if got := s.points(); got != tt.want {
			t.Errorf("points at streak %d = %d, want %d", tt.streak, got, tt.want)
		}
	}
}

func TestPoints_DoubleWindow(t *testing.T) {
	s := &Session{Scoring: DefaultScoring(), Streak: 1, DoubleRemaining: 3}
	if got := s.points(); got != 20 {
		t.Errorf("points = %d, want 20 with double window active", got)
	}
}

func TestTimeBonus_StepFunction(t *testing.T) {
	rules := Rules{QuestionSeconds: 9, Kinds: []challenge.Kind{challenge.KindAddition}}
	tests := []struct {
		remaining int
		want      int
	}{
		{9, 5}, // full clock
		{6, 5}, // exactly two thirds
		{5, 2},
		{3, 2}, // exactly one third
		{2, 0},
		{0, 0},
	}
	for _, tt := range tests {
		s := &Session{Rules: rules, Scoring: DefaultScoring(), QuestionRemaining: tt.remaining}
		if got := s.timeBonus(); got != tt.want {
			t.Errorf("timeBonus with %d/9 left = %d, want %d", tt.remaining, got, tt.want)
		}
	}
}

func TestTimeBonus_DisabledWithoutQuestionClock(t *testing.T) {
	s := &Session{Scoring: DefaultScoring(), QuestionRemaining: 100}
	if got := s.timeBonus(); got != 0 {
		t.Errorf("timeBonus = %d, want 0 for clockless games", got)
	}
}
