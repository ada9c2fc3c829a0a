package challenge

import (
	"fmt"
	"math"
	"strconv"
)

// triangleArea uses an even base so base*height/2 is always a whole
// number.
func (g *Generator) triangleArea(p Profile) Challenge {
	base := 2 * g.intBetween(1, p.MaxDimension/2)
	height := g.intBetween(2, p.MaxDimension)
	return Challenge{
		Kind:       KindTriangleArea,
		Prompt:     fmt.Sprintf("A triangle has a base of %d and a height of %d. What is its area?", base, height),
		Format:     FormatNumeric,
		Answer:     strconv.Itoa(base * height / 2),
		AnswerType: AnswerTypeInteger,
		Hint:       "Area = base x height / 2.",
	}
}

func (g *Generator) rectangleArea(p Profile) Challenge {
	w := g.intBetween(2, p.MaxDimension)
	h := g.intBetween(2, p.MaxDimension)
	return Challenge{
		Kind:       KindRectangleArea,
		Prompt:     fmt.Sprintf("A rectangle is %d wide and %d tall. What is its area?", w, h),
		Format:     FormatNumeric,
		Answer:     strconv.Itoa(w * h),
		AnswerType: AnswerTypeInteger,
		Hint:       "Area = width x height.",
	}
}

func (g *Generator) rectanglePerimeter(p Profile) Challenge {
	w := g.intBetween(2, p.MaxDimension)
	h := g.intBetween(2, p.MaxDimension)
	return Challenge{
		Kind:       KindRectanglePerimeter,
		Prompt:     fmt.Sprintf("A rectangle is %d wide and %d tall. What is its perimeter?", w, h),
		Format:     FormatNumeric,
		Answer:     strconv.Itoa(2 * (w + h)),
		AnswerType: AnswerTypeInteger,
		Hint:       "Perimeter = 2 x (width + height).",
	}
}

// circleArea answers are irrational, so the challenge carries a decimal
// tolerance proportional to the answer magnitude.
func (g *Generator) circleArea(p Profile) Challenge {
	r := g.intBetween(2, p.MaxDimension)
	area := math.Pi * float64(r) * float64(r)
	return Challenge{
		Kind:       KindCircleArea,
		Prompt:     fmt.Sprintf("A circle has a radius of %d. What is its area? (use pi = 3.14)", r),
		Format:     FormatNumeric,
		Answer:     formatDecimal(area),
		AnswerType: AnswerTypeDecimal,
		Tolerance:  g.decimalTolerance(area),
		Hint:       "Area = pi x radius x radius.",
	}
}

func (g *Generator) circleCircumference(p Profile) Challenge {
	r := g.intBetween(2, p.MaxDimension)
	circ := 2 * math.Pi * float64(r)
	return Challenge{
		Kind:       KindCircleCircumference,
		Prompt:     fmt.Sprintf("A circle has a radius of %d. What is its circumference? (use pi = 3.14)", r),
		Format:     FormatNumeric,
		Answer:     formatDecimal(circ),
		AnswerType: AnswerTypeDecimal,
		Tolerance:  g.decimalTolerance(circ),
		Hint:       "Circumference = 2 x pi x radius.",
	}
}

// decimalTolerance scales with the answer magnitude but never drops
// below the configured floor. The pi = 3.14 approximation alone is off
// by about 0.05%, so the floor matters for small radii.
func (g *Generator) decimalTolerance(answer float64) float64 {
	tol := math.Abs(answer) * g.cfg.CircleTolerancePct
	if tol < g.cfg.MinDecimalTolerance {
		tol = g.cfg.MinDecimalTolerance
	}
	return tol
}

func formatDecimal(f float64) string {
	return strconv.FormatFloat(math.Round(f*100)/100, 'f', -1, 64)
}
