package ui

import (
	"fmt"
	"time"
)

func fmtMoney(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}

func fmtMoneyPtr(v *float64) string {
	if v == nil {
		return ""
	}
	return fmtMoney(*v)
}

func fmtDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Local().Format("2006-01-02")
}

// progressBar renders a fixed-width utilization bar; pct must already be
// clamped to [0, 100]
func progressBar(pct float64, width int) string {
	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	bar := ""
	for i := 0; i < width; i++ {
		if i < filled {
			bar += barFilledStyle.Render("█")
		} else {
			bar += barEmptyStyle.Render("░")
		}
	}
	return bar
}
