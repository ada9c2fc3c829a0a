package challenge

import (
	"fmt"
	"strconv"
)

// clockRead shows a time on a clock face and asks what time it is.
func (g *Generator) clockRead(p Profile) Challenge {
	hour := g.intBetween(1, 12)
	minuteSteps := []int{0, 30}
	if p.ID == ProfileMedium || p.ID == ProfileHard {
		minuteSteps = []int{0, 15, 30, 45}
	}
	minute := minuteSteps[g.rnd.Intn(len(minuteSteps))]

	correct := clockLabel(hour, minute)
	choices := []string{correct}

	// Distractors: nearby times and the hour/minute swap trap.
	candidates := []string{
		clockLabel(hour%12+1, minute),
		clockLabel(hour, (minute+15)%60),
		clockLabel((hour+10)%12+1, minute),
		clockLabel(hour, (minute+30)%60),
	}
	for _, c := range candidates {
		if len(choices) >= p.OptionCount {
			break
		}
		if !containsString(choices, c) {
			choices = append(choices, c)
		}
	}
	g.shuffle(choices)

	return Challenge{
		Kind:       KindClockRead,
		Prompt:     "What time does the clock show?",
		Format:     FormatMultipleChoice,
		Answer:     correct,
		AnswerType: AnswerTypeText,
		Choices:    choices,
		Visual:     fmt.Sprintf("🕒 hour hand at %d, minute hand at %d", hour, minute),
		Hint:       "The short hand shows the hour, the long hand the minutes.",
	}
}

func clockLabel(hour, minute int) string {
	return fmt.Sprintf("%d:%02d", hour, minute)
}

// timeUnits are the conversions used by time questions. Factors go from
// the big unit to the small one, so answers are always whole numbers.
var timeUnits = []struct {
	big, small string
	factor     int
	maxValue   int
}{
	{"minutes", "seconds", 60, 10},
	{"hours", "minutes", 60, 12},
	{"days", "hours", 24, 7},
	{"weeks", "days", 7, 8},
}

func (g *Generator) timeConvert(p Profile) Challenge {
	u := timeUnits[g.rnd.Intn(len(timeUnits))]
	maxV := u.maxValue
	if p.ID == ProfileExtraEasy || p.ID == ProfileEasy {
		maxV = (maxV + 1) / 2
	}
	v := g.intBetween(2, maxV)
	return Challenge{
		Kind:       KindTimeConvert,
		Prompt:     fmt.Sprintf("How many %s are in %d %s?", u.small, v, u.big),
		Format:     FormatNumeric,
		Answer:     strconv.Itoa(v * u.factor),
		AnswerType: AnswerTypeInteger,
		Hint:       fmt.Sprintf("1 %s = %d %s.", singular(u.big), u.factor, u.small),
	}
}

// coins are US denominations in cents.
var coins = []struct {
	name   string
	plural string
	cents  int
}{
	{"quarter", "quarters", 25},
	{"dime", "dimes", 10},
	{"nickel", "nickels", 5},
	{"penny", "pennies", 1},
}

// moneyCount builds a coin pile and asks for the total. Totals are
// constructed from the pile, so the expected answer is always exact.
func (g *Generator) moneyCount(p Profile) Challenge {
	denoms := 2
	if p.ID == ProfileMedium {
		denoms = 3
	}
	if p.ID == ProfileHard {
		denoms = 4
	}

	perm := g.rnd.Perm(len(coins))
	total := 0
	pile := ""
	for i := 0; i < denoms; i++ {
		c := coins[perm[i]]
		count := g.intBetween(1, p.MaxCoins)
		total += count * c.cents
		if pile != "" {
			if i == denoms-1 {
				pile += " and "
			} else {
				pile += ", "
			}
		}
		if count == 1 {
			pile += fmt.Sprintf("1 %s", c.name)
		} else {
			pile += fmt.Sprintf("%d %s", count, c.plural)
		}
	}

	// Hard profile asks in dollars; the answer is an exact decimal.
	if p.ID == ProfileHard {
		return Challenge{
			Kind:       KindMoneyCount,
			Prompt:     fmt.Sprintf("You have %s. How many dollars is that?", pile),
			Format:     FormatNumeric,
			Answer:     strconv.FormatFloat(float64(total)/100, 'f', -1, 64),
			AnswerType: AnswerTypeDecimal,
			Tolerance:  0.001,
			Visual:     pile,
			Hint:       "100 cents make a dollar.",
		}
	}

	return Challenge{
		Kind:       KindMoneyCount,
		Prompt:     fmt.Sprintf("You have %s. How many cents in total?", pile),
		Format:     FormatNumeric,
		Answer:     strconv.Itoa(total),
		AnswerType: AnswerTypeInteger,
		Visual:     pile,
		Hint:       "Add the biggest coins first.",
	}
}

// lengthUnits convert a big unit to a small one by a whole factor.
var lengthUnits = []struct {
	big, small string
	factor     int
	maxValue   int
}{
	{"meters", "centimeters", 100, 9},
	{"kilometers", "meters", 1000, 9},
	{"kilograms", "grams", 1000, 9},
	{"liters", "milliliters", 1000, 9},
	{"centimeters", "millimeters", 10, 25},
}

func (g *Generator) unitConvert(p Profile) Challenge {
	u := lengthUnits[g.rnd.Intn(len(lengthUnits))]
	v := g.intBetween(2, u.maxValue)
	return Challenge{
		Kind:       KindUnitConvert,
		Prompt:     fmt.Sprintf("Convert %d %s to %s.", v, u.big, u.small),
		Format:     FormatNumeric,
		Answer:     strconv.Itoa(v * u.factor),
		AnswerType: AnswerTypeInteger,
		Hint:       fmt.Sprintf("1 %s = %d %s.", singular(u.big), u.factor, u.small),
	}
}

var weekdays = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// dayOfWeek asks which day falls a few days after a given day.
func (g *Generator) dayOfWeek(p Profile) Challenge {
	start := g.rnd.Intn(len(weekdays))
	offset := 1
	if p.ID == ProfileMedium {
		offset = g.intBetween(2, 4)
	}
	if p.ID == ProfileHard {
		offset = g.intBetween(3, 6)
	}
	correct := weekdays[(start+offset)%7]

	choices := []string{correct}
	for _, d := range g.rnd.Perm(len(weekdays)) {
		if len(choices) >= p.OptionCount {
			break
		}
		if !containsString(choices, weekdays[d]) {
			choices = append(choices, weekdays[d])
		}
	}
	g.shuffle(choices)

	prompt := fmt.Sprintf("What day comes after %s?", weekdays[start])
	if offset > 1 {
		prompt = fmt.Sprintf("What day is %d days after %s?", offset, weekdays[start])
	}

	return Challenge{
		Kind:       KindDayOfWeek,
		Prompt:     prompt,
		Format:     FormatMultipleChoice,
		Answer:     correct,
		AnswerType: AnswerTypeText,
		Choices:    choices,
		Hint:       "Count forward through the week, wrapping after Saturday.",
	}
}

// singular trims the plural "s" from a unit name for hint text.
func singular(unit string) string {
	if len(unit) > 1 && unit[len(unit)-1] == 's' {
		return unit[:len(unit)-1]
	}
	return unit
}

func containsString(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
