package challenge

import (
	"math"
	"strconv"
)

// numericChoices builds a multiple-choice option set around the correct
// answer: the correct value plus distractors produced by small
// deterministic offsets, duplicate-free and order-shuffled. Distractors
// never go negative, matching the generated answers.
func (g *Generator) numericChoices(answer string, typ AnswerType, count int) []string {
	if count < 2 {
		count = 4
	}

	if typ == AnswerTypeDecimal {
		correct, err := strconv.ParseFloat(answer, 64)
		if err != nil {
			return []string{answer}
		}
		return g.decimalChoices(correct, count)
	}

	correct, err := strconv.ParseInt(answer, 10, 64)
	if err != nil {
		return []string{answer}
	}

	choices := []string{answer}
	seen := map[int64]bool{correct: true}

	// Offset ladder: near misses first, then wider ones as fallback.
	offsets := []int64{1, -1, 2, -2, 10, -10, 3, 5, -5, 20, 100}
	for _, off := range offsets {
		if len(choices) >= count {
			break
		}
		v := correct + off
		if v < 0 || seen[v] {
			continue
		}
		seen[v] = true
		choices = append(choices, strconv.FormatInt(v, 10))
	}
	g.shuffle(choices)
	return choices
}

// decimalChoices offsets by a few percent of the magnitude so the
// distractors stay plausible for tolerance-compared answers.
func (g *Generator) decimalChoices(correct float64, count int) []string {
	step := math.Abs(correct) * 0.1
	if step < 1 {
		step = 1
	}

	choices := []string{formatDecimal(correct)}
	seen := map[string]bool{choices[0]: true}
	for _, mult := range []float64{1, -1, 2, -2, 3, -3} {
		if len(choices) >= count {
			break
		}
		v := correct + mult*step
		if v < 0 {
			continue
		}
		s := formatDecimal(v)
		if seen[s] {
			continue
		}
		seen[s] = true
		choices = append(choices, s)
	}
	g.shuffle(choices)
	return choices
}

// shuffle order-shuffles in place with the injected random source.
func (g *Generator) shuffle(ss []string) {
	g.rnd.Shuffle(len(ss), func(i, j int) {
		ss[i], ss[j] = ss[j], ss[i]
	})
}
