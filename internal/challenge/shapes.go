package challenge

import (
	"fmt"
	"sort"
	"strings"
)

// shapeInfo describes one shape known to the generator.
type shapeInfo struct {
	name      string
	sides     int
	symmetric bool // has at least one line of symmetry
	art       string
}

// Sides are unique among polygon entries so side-count prompts have a
// single correct answer.
var shapes = []shapeInfo{
	{name: "triangle", sides: 3, symmetric: true, art: "▲"},
	{name: "square", sides: 4, symmetric: true, art: "■"},
	{name: "pentagon", sides: 5, symmetric: true, art: "⬟"},
	{name: "hexagon", sides: 6, symmetric: true, art: "⬢"},
	{name: "heptagon", sides: 7, symmetric: true, art: "⯄"},
	{name: "octagon", sides: 8, symmetric: true, art: "⯃"},
}

// asymmetricShapes are only used by symmetry questions.
var asymmetricShapes = []string{
	"scalene triangle",
	"parallelogram",
	"right trapezoid",
	"irregular pentagon",
}

// shapeID asks the player to name a shape by its side count.
func (g *Generator) shapeID(p Profile) Challenge {
	n := p.OptionCount
	if n > len(shapes) {
		n = len(shapes)
	}

	// Pick n distinct shapes; the first is the subject.
	perm := g.rnd.Perm(len(shapes))
	picked := make([]shapeInfo, n)
	for i := 0; i < n; i++ {
		picked[i] = shapes[perm[i]]
	}
	subject := picked[0]

	choices := make([]string, n)
	for i, s := range picked {
		choices[i] = s.name
	}
	g.shuffle(choices)

	return Challenge{
		Kind:       KindShapeID,
		Prompt:     fmt.Sprintf("Which shape has %d sides?", subject.sides),
		Format:     FormatMultipleChoice,
		Answer:     subject.name,
		AnswerType: AnswerTypeText,
		Choices:    choices,
		Visual:     subject.art,
		Hint:       fmt.Sprintf("Count the corners: there are %d.", subject.sides),
	}
}

// symmetry asks the player to select every shape with a line of
// symmetry. At least one symmetric shape is always included.
func (g *Generator) symmetry(p Profile) Challenge {
	n := p.OptionCount
	if n < 3 {
		n = 3
	}

	// One guaranteed symmetric shape, then a mix.
	var choices []string
	correct := map[string]bool{}

	sym := shapes[g.rnd.Intn(len(shapes))]
	choices = append(choices, sym.name)
	correct[sym.name] = true

	asymPerm := g.rnd.Perm(len(asymmetricShapes))
	symPerm := g.rnd.Perm(len(shapes))
	ai, si := 0, 0
	for len(choices) < n {
		if g.rnd.Intn(2) == 0 && ai < len(asymmetricShapes) {
			choices = append(choices, asymmetricShapes[asymPerm[ai]])
			ai++
		} else if si < len(shapes) {
			s := shapes[symPerm[si]]
			si++
			if correct[s.name] {
				continue
			}
			choices = append(choices, s.name)
			correct[s.name] = true
		} else if ai < len(asymmetricShapes) {
			choices = append(choices, asymmetricShapes[asymPerm[ai]])
			ai++
		} else {
			break
		}
	}
	g.shuffle(choices)

	answerSet := make([]string, 0, len(correct))
	for name := range correct {
		answerSet = append(answerSet, name)
	}
	sort.Strings(answerSet)

	return Challenge{
		Kind:       KindSymmetry,
		Prompt:     "Select every shape that has a line of symmetry.",
		Format:     FormatMultiSelect,
		Answer:     strings.Join(answerSet, ", "),
		AnswerSet:  answerSet,
		AnswerType: AnswerTypeSet,
		Choices:    choices,
		Hint:       "A line of symmetry folds the shape onto itself exactly.",
	}
}
