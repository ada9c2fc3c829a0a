package challenge

// Kind identifies the question family a Challenge belongs to.
type Kind string

const (
	KindAddition            Kind = "addition"
	KindSubtraction         Kind = "subtraction"
	KindMultiplication      Kind = "multiplication"
	KindDivision            Kind = "division"
	KindShapeID             Kind = "shape_id"
	KindSymmetry            Kind = "symmetry"
	KindClockRead           Kind = "clock_read"
	KindTimeConvert         Kind = "time_convert"
	KindMoneyCount          Kind = "money_count"
	KindUnitConvert         Kind = "unit_convert"
	KindTriangleArea        Kind = "triangle_area"
	KindRectangleArea       Kind = "rectangle_area"
	KindRectanglePerimeter  Kind = "rectangle_perimeter"
	KindCircleArea          Kind = "circle_area"
	KindCircleCircumference Kind = "circle_circumference"
	KindDayOfWeek           Kind = "day_of_week"
)

// AnswerType describes the representation of the correct answer.
type AnswerType string

const (
	AnswerTypeInteger AnswerType = "integer" // e.g. "623"
	AnswerTypeDecimal AnswerType = "decimal" // e.g. "3.75", compared with tolerance
	AnswerTypeText    AnswerType = "text"    // e.g. "Tuesday", case-insensitive
	AnswerTypeSet     AnswerType = "set"     // multi-select, exact set equality
)

// Format describes how the player provides their answer.
type Format string

const (
	// FormatNumeric means the player types a numeric answer.
	FormatNumeric Format = "numeric"

	// FormatMultipleChoice means the player picks one of the listed choices.
	FormatMultipleChoice Format = "multiple_choice"

	// FormatMultiSelect means the player toggles any subset of the choices.
	FormatMultiSelect Format = "multi_select"
)

// Challenge is one generated question with a known correct answer.
// It is immutable once generated: the generator creates it, the evaluator
// and the presentation layer consume it, and it is discarded afterwards.
type Challenge struct {
	// Kind is the question family.
	Kind Kind

	// Prompt is the question text displayed to the player.
	Prompt string

	// Format indicates how the player answers.
	Format Format

	// Answer is the canonical correct answer as a string.
	// For multi-select it is the sorted, comma-joined member list.
	Answer string

	// AnswerSet holds the correct members for multi-select questions.
	AnswerSet []string

	// AnswerType describes how Answer should be compared.
	AnswerType AnswerType

	// Choices is populated for multiple-choice and multi-select formats.
	// Contains the correct answer(s) plus distractors, order-shuffled,
	// with no duplicate values.
	Choices []string

	// Tolerance is the absolute tolerance for decimal answers.
	// Zero for exact kinds.
	Tolerance float64

	// Visual is an optional rendering hint (clock face, coin list, shape art).
	Visual string

	// Hint is an optional short hint the player can request.
	Hint string

	// Difficulty is the profile the challenge was generated under.
	Difficulty ProfileID
}
