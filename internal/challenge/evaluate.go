package challenge

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Evaluate compares the player's input against the challenge's answer.
//
// The second return value reports whether the input counted as an
// answer at all: empty or unparseable numeric input is not an answer,
// and must not mutate session state.
//
// Normalization rules:
//   - Whitespace is trimmed, comparison is case-insensitive
//   - Integers ignore leading zeros ("007" matches "7")
//   - Decimals compare within the challenge tolerance
//   - Multiple choice matches by choice value, or by 1-based index
//     when the input is not itself a choice value
//   - Multi-select input is a comma-separated list compared by exact
//     set equality; partial credit is never given
func Evaluate(ch Challenge, input string) (correct, answered bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return false, false
	}

	switch ch.Format {
	case FormatMultipleChoice:
		return evaluateChoice(ch, input), true
	case FormatMultiSelect:
		return EvaluateSet(ch, strings.Split(input, ",")), true
	}

	switch ch.AnswerType {
	case AnswerTypeInteger:
		user, err := strconv.ParseInt(input, 10, 64)
		if err != nil {
			return false, false
		}
		expected, err := strconv.ParseInt(strings.TrimSpace(ch.Answer), 10, 64)
		if err != nil {
			return false, false
		}
		return user == expected, true

	case AnswerTypeDecimal:
		user, err := strconv.ParseFloat(input, 64)
		if err != nil {
			return false, false
		}
		expected, err := strconv.ParseFloat(strings.TrimSpace(ch.Answer), 64)
		if err != nil {
			return false, false
		}
		return math.Abs(user-expected) <= ch.Tolerance, true

	default:
		return strings.EqualFold(input, strings.TrimSpace(ch.Answer)), true
	}
}

// evaluateChoice matches multiple-choice input. Input naming a choice
// value is judged by that value; only input that matches no choice is
// read as a 1-based index. Numeric choices (arithmetic games) would
// otherwise collide with small indexes and flip the verdict.
func evaluateChoice(ch Challenge, input string) bool {
	answer := strings.TrimSpace(ch.Answer)
	if strings.EqualFold(input, answer) {
		return true
	}
	for _, c := range ch.Choices {
		if strings.EqualFold(input, strings.TrimSpace(c)) {
			// A wrong choice picked by value.
			return false
		}
	}
	if idx, err := strconv.Atoi(input); err == nil && idx >= 1 && idx <= len(ch.Choices) {
		return strings.EqualFold(strings.TrimSpace(ch.Choices[idx-1]), answer)
	}
	return false
}

// EvaluateSet checks a multi-select answer by exact set equality
// between the selected values and the correct members.
func EvaluateSet(ch Challenge, selected []string) bool {
	cleaned := make([]string, 0, len(selected))
	for _, s := range selected {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			cleaned = append(cleaned, s)
		}
	}
	if len(cleaned) != len(ch.AnswerSet) {
		return false
	}
	sort.Strings(cleaned)

	want := make([]string, len(ch.AnswerSet))
	for i, s := range ch.AnswerSet {
		want[i] = strings.ToLower(strings.TrimSpace(s))
	}
	sort.Strings(want)

	for i := range want {
		if cleaned[i] != want[i] {
			return false
		}
	}
	return true
}
