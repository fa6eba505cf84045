package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderCreditBar draws total credits against the maxCredits ceiling, e.g.
// [██████░░] 12/16 cr. The fill is colored by CreditStyle.
func RenderCreditBar(total, minCredits, maxCredits, width int) string {
	if width < 2 {
		width = 2
	}
	pct := 1.0
	if maxCredits > 0 {
		pct = float64(total) / float64(maxCredits)
	}
	pct = min(max(pct, 0), 1)

	filled := int(pct * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return fmt.Sprintf("[%s] %d/%d cr", CreditStyle(total, minCredits, maxCredits).Render(bar), total, maxCredits)
}
