package challenge

import (
	"fmt"
	"strconv"
)

func (g *Generator) addition(p Profile) Challenge {
	a := g.intBetween(2, p.MaxOperand)
	b := g.intBetween(2, p.MaxOperand)
	return Challenge{
		Kind:       KindAddition,
		Prompt:     fmt.Sprintf("%d + %d = ?", a, b),
		Format:     FormatNumeric,
		Answer:     strconv.Itoa(a + b),
		AnswerType: AnswerTypeInteger,
		Hint:       fmt.Sprintf("Start at %d and count up %d.", a, b),
	}
}

// subtraction swaps operands when needed so the result is never negative.
func (g *Generator) subtraction(p Profile) Challenge {
	a := g.intBetween(2, p.MaxOperand)
	b := g.intBetween(2, p.MaxOperand)
	if b > a {
		a, b = b, a
	}
	return Challenge{
		Kind:       KindSubtraction,
		Prompt:     fmt.Sprintf("%d - %d = ?", a, b),
		Format:     FormatNumeric,
		Answer:     strconv.Itoa(a - b),
		AnswerType: AnswerTypeInteger,
		Hint:       fmt.Sprintf("Count down from %d.", a),
	}
}

func (g *Generator) multiplication(p Profile) Challenge {
	a := g.intBetween(2, p.MaxFactor)
	b := g.intBetween(2, p.MaxFactor)
	return Challenge{
		Kind:       KindMultiplication,
		Prompt:     fmt.Sprintf("%d x %d = ?", a, b),
		Format:     FormatNumeric,
		Answer:     strconv.Itoa(a * b),
		AnswerType: AnswerTypeInteger,
		Hint:       fmt.Sprintf("%d groups of %d.", a, b),
	}
}

// division builds the dividend backward from a chosen divisor and
// quotient, so the result is always a whole number.
func (g *Generator) division(p Profile) Challenge {
	divisor := g.intBetween(2, p.MaxFactor)
	quotient := g.intBetween(2, p.MaxFactor)
	dividend := divisor * quotient
	return Challenge{
		Kind:       KindDivision,
		Prompt:     fmt.Sprintf("%d / %d = ?", dividend, divisor),
		Format:     FormatNumeric,
		Answer:     strconv.Itoa(quotient),
		AnswerType: AnswerTypeInteger,
		Hint:       fmt.Sprintf("How many %ds fit into %d?", divisor, dividend),
	}
}
