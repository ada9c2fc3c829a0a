// Package share formats a finished session for sharing and copies it
// to the system clipboard. The clipboard write is best-effort: callers
// surface a failure as a transient notice and move on.
package share

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/abhisek/matharcade/internal/game"
)

// Format renders a shareable text summary of a finished session.
func Format(sum *game.Summary, title string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s — %s\n", title, sum.Difficulty.Label())
	fmt.Fprintf(&b, "Score: %d\n", sum.Score)
	fmt.Fprintf(&b, "Correct: %d/%d (%.0f%%)\n", sum.CorrectCount, sum.TotalQuestions, sum.Accuracy()*100)
	fmt.Fprintf(&b, "Best streak: %d\n", sum.BestStreak)
	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	fmt.Fprintf(&b, "Time: %d:%02d\n", mins, secs)
	if sum.RacePlace > 0 {
		fmt.Fprintf(&b, "Finished %s\n", place(sum.RacePlace))
	}
	return b.String()
}

// Copy writes text to the system clipboard.
func Copy(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	return nil
}

func place(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return fmt.Sprintf("%dth", n)
	}
}
