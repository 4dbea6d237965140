package ui

import (
	"fmt"
	"math"
	"strings"
)

// TruncateText truncates text to the specified length, adding "..." if truncated
func TruncateText(text string, maxLen int) string {
	if text == "" {
		return ""
	}

	// Clean up newlines and extra spaces
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.ReplaceAll(text, "\r", " ")
	text = strings.Join(strings.Fields(text), " ")

	if len(text) <= maxLen {
		return text
	}

	if maxLen <= 3 {
		return text[:maxLen]
	}

	return text[:maxLen-3] + "..."
}

// FormatAmount renders a monetary amount with thousands separators
func FormatAmount(amount float64) string {
	cents := int64(math.Round(amount * 100))
	negative := cents < 0
	if negative {
		cents = -cents
	}

	digits := fmt.Sprintf("%d", cents/100)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}

	out := fmt.Sprintf("%s.%02d", b.String(), cents%100)
	if negative {
		out = "-" + out
	}
	return out
}

// ProgressBar renders a fixed-width textual progress bar for a percentage
func ProgressBar(percent float64, width int) string {
	if width <= 0 {
		width = 20
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	filled := int(percent / 100 * float64(width))
	return fmt.Sprintf("[%s%s] %.0f%%",
		strings.Repeat("#", filled),
		strings.Repeat("-", width-filled),
		percent)
}
