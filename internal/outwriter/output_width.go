// Package outwriter has output and writer logic.
package outwriter

import (
	"os"

	"golang.org/x/term"

	"github.com/commitlens/commitlens/internal/contract"
)

// GetMaxContributorWidth calculates the maximum width for contributor
// names in table output based on terminal width and the fixed numeric
// columns.
func GetMaxContributorWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		// Get terminal width
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the three numeric columns plus borders and padding
	baseWidth := 45

	available := termWidth - baseWidth
	if available < 12 {
		// Minimum reasonable name width
		return 12
	}
	if available > 50 {
		// Maximum name width to prevent overly wide tables
		return 50
	}
	return available
}

// truncateName truncates a contributor name to a maximum width with an
// ellipsis suffix.
func truncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}
