package challenge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate_Integer(t *testing.T) {
	ch := Challenge{
		Kind:       KindAddition,
		Prompt:     "2 + 2 = ?",
		Format:     FormatNumeric,
		Answer:     "4",
		AnswerType: AnswerTypeInteger,
	}

	tests := []struct {
		name     string
		input    string
		correct  bool
		answered bool
	}{
		{"exact match", "4", true, true},
		{"leading zeros", "004", true, true},
		{"surrounding whitespace", "  4  ", true, true},
		{"wrong answer", "5", false, true},
		{"empty input", "", false, false},
		{"whitespace only", "   ", false, false},
		{"non-numeric", "four", false, false},
		{"trailing garbage", "4x", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			correct, answered := Evaluate(ch, tt.input)
			assert.Equal(t, tt.correct, correct, "correct")
			assert.Equal(t, tt.answered, answered, "answered")
		})
	}
}

func TestEvaluate_DecimalTolerance(t *testing.T) {
	ch := Challenge{
		Kind:       KindCircleArea,
		Format:     FormatNumeric,
		Answer:     "12.57",
		AnswerType: AnswerTypeDecimal,
		Tolerance:  0.26,
	}

	correct, answered := Evaluate(ch, "12.56")
	assert.True(t, correct)
	assert.True(t, answered)

	correct, _ = Evaluate(ch, "12.4")
	assert.True(t, correct, "within tolerance below")

	correct, _ = Evaluate(ch, "13.0")
	assert.False(t, correct, "outside tolerance")

	_, answered = Evaluate(ch, "about twelve")
	assert.False(t, answered)
}

func TestEvaluate_TextCaseInsensitive(t *testing.T) {
	ch := Challenge{
		Kind:       KindDayOfWeek,
		Format:     FormatMultipleChoice,
		Answer:     "Tuesday",
		AnswerType: AnswerTypeText,
		Choices:    []string{"Monday", "Tuesday", "Friday", "Sunday"},
	}

	correct, answered := Evaluate(ch, "tuesday")
	assert.True(t, correct)
	assert.True(t, answered)

	correct, _ = Evaluate(ch, " TUESDAY ")
	assert.True(t, correct)

	correct, _ = Evaluate(ch, "Friday")
	assert.False(t, correct)
}

func TestEvaluate_ChoiceByIndex(t *testing.T) {
	ch := Challenge{
		Format:     FormatMultipleChoice,
		Answer:     "hexagon",
		AnswerType: AnswerTypeText,
		Choices:    []string{"square", "hexagon", "octagon"},
	}

	correct, answered := Evaluate(ch, "2")
	assert.True(t, correct)
	assert.True(t, answered)

	correct, _ = Evaluate(ch, "1")
	assert.False(t, correct)

	// Out-of-range index falls back to text comparison.
	correct, answered = Evaluate(ch, "9")
	assert.False(t, correct)
	assert.True(t, answered)
}

func TestEvaluate_NumericChoicesMatchByValueNotIndex(t *testing.T) {
	// Arithmetic games present numeric choices; a submitted value must
	// never be reinterpreted as a choice index.
	ch := Challenge{
		Format:     FormatMultipleChoice,
		Answer:     "4",
		AnswerType: AnswerTypeInteger,
		Choices:    []string{"4", "5", "3", "6"},
	}

	correct, answered := Evaluate(ch, "4")
	assert.True(t, correct, "the correct value must win even when it is a valid index")
	assert.True(t, answered)

	correct, _ = Evaluate(ch, "3")
	assert.False(t, correct, "a wrong value must not be promoted to index 3")

	// Input matching no choice value still works as an index.
	correct, _ = Evaluate(ch, "1")
	assert.True(t, correct)
}

func TestEvaluateSet_ExactEqualityOnly(t *testing.T) {
	ch := Challenge{
		Format:     FormatMultiSelect,
		Answer:     "square, triangle",
		AnswerSet:  []string{"square", "triangle"},
		AnswerType: AnswerTypeSet,
		Choices:    []string{"square", "parallelogram", "triangle", "right trapezoid"},
	}

	assert.True(t, EvaluateSet(ch, []string{"triangle", "square"}), "order must not matter")
	assert.True(t, EvaluateSet(ch, []string{" Square ", "TRIANGLE"}), "case and whitespace ignored")
	assert.False(t, EvaluateSet(ch, []string{"square"}), "no partial credit")
	assert.False(t, EvaluateSet(ch, []string{"square", "triangle", "parallelogram"}), "extra selection fails")
	assert.False(t, EvaluateSet(ch, nil))
}
