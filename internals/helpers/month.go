package helper

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseMonth parses a strict "YYYY-MM" filter into (year, month).
// Anything else is rejected; callers surface this as a 400, never a default.
func ParseMonth(s string) (int, int, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("month filter must be in 'YYYY-MM' format")
	}
	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("month filter must be in 'YYYY-MM' format")
	}
	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("month filter must be in 'YYYY-MM' format")
	}
	if year < 1 || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("month filter must be in 'YYYY-MM' format")
	}
	return year, month, nil
}

// MonthKey renders (year, month) back into the canonical "YYYY-MM" draft key.
func MonthKey(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}
