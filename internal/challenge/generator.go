// Package challenge generates and evaluates practice questions.
//
// Generation is constructive: operands are built so that the expected
// answer satisfies the question's constraints (non-negative differences,
// exact quotients, clean unit conversions) instead of generating freely
// and rejecting afterwards. Generation never fails; unknown kinds fall
// back to addition.
package challenge

import (
	"math/rand"
	"time"
)

// Config holds the generator tunables.
type Config struct {
	// CircleTolerancePct is the decimal tolerance for pi-based answers,
	// as a fraction of the answer magnitude.
	CircleTolerancePct float64

	// MinDecimalTolerance is the floor for any decimal tolerance.
	MinDecimalTolerance float64
}

// DefaultConfig returns the recommended generator defaults.
func DefaultConfig() Config {
	return Config{
		CircleTolerancePct:  0.02,
		MinDecimalTolerance: 0.1,
	}
}

// Generator produces randomized challenges from an injected random
// source. Inject a seeded rand for reproducible output (daily mode).
type Generator struct {
	rnd *rand.Rand
	cfg Config
}

// New returns a Generator using the given random source and config.
// A nil rnd gets a time-seeded source.
func New(rnd *rand.Rand, cfg Config) *Generator {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Generator{rnd: rnd, cfg: cfg}
}

// NewSeeded returns a Generator with a deterministic source,
// for daily challenges and tests.
func NewSeeded(seed int64) *Generator {
	return New(rand.New(rand.NewSource(seed)), DefaultConfig())
}

// Request describes one challenge to generate.
type Request struct {
	Profile Profile
	Kind    Kind

	// Format is the preferred answer format. Kinds with an inherent
	// format (shape identification, symmetry, clock reading) override it.
	Format Format
}

// Generate produces a single challenge. It never fails: an unknown kind
// falls back to addition.
func (g *Generator) Generate(req Request) Challenge {
	p := req.Profile
	if p.ID == "" {
		p = ProfileByID(ProfileEasy)
	}
	format := req.Format
	if format == "" {
		format = FormatNumeric
	}

	var ch Challenge
	switch req.Kind {
	case KindAddition:
		ch = g.addition(p)
	case KindSubtraction:
		ch = g.subtraction(p)
	case KindMultiplication:
		ch = g.multiplication(p)
	case KindDivision:
		ch = g.division(p)
	case KindShapeID:
		ch = g.shapeID(p)
	case KindSymmetry:
		ch = g.symmetry(p)
	case KindClockRead:
		ch = g.clockRead(p)
	case KindTimeConvert:
		ch = g.timeConvert(p)
	case KindMoneyCount:
		ch = g.moneyCount(p)
	case KindUnitConvert:
		ch = g.unitConvert(p)
	case KindTriangleArea:
		ch = g.triangleArea(p)
	case KindRectangleArea:
		ch = g.rectangleArea(p)
	case KindRectanglePerimeter:
		ch = g.rectanglePerimeter(p)
	case KindCircleArea:
		ch = g.circleArea(p)
	case KindCircleCircumference:
		ch = g.circleCircumference(p)
	case KindDayOfWeek:
		ch = g.dayOfWeek(p)
	default:
		ch = g.addition(p)
	}

	ch.Difficulty = p.ID

	// Numeric kinds can be rendered as multiple choice on request.
	if format == FormatMultipleChoice && ch.Format == FormatNumeric {
		ch.Format = FormatMultipleChoice
		ch.Choices = g.numericChoices(ch.Answer, ch.AnswerType, p.OptionCount)
	}

	return ch
}

// Pick selects a random kind from the given set. An empty set yields
// addition.
func (g *Generator) Pick(kinds []Kind) Kind {
	if len(kinds) == 0 {
		return KindAddition
	}
	return kinds[g.rnd.Intn(len(kinds))]
}

// intBetween returns a uniform int in [lo, hi]. Callers guarantee lo <= hi.
func (g *Generator) intBetween(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + g.rnd.Intn(hi-lo+1)
}
