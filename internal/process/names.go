package process

import (
	"fmt"
	"strings"
	"unicode"
)

const maxLabelLen = 64

// NormalizeLabel trims the label and checks that it can be used as a host
// name component.
func NormalizeLabel(raw string) (string, error) {
	label := strings.TrimSpace(raw)
	if label == "" {
		return "", fmt.Errorf("label must not be empty")
	}
	if len(label) > maxLabelLen {
		return "", fmt.Errorf("label %q is too long (max %d characters)", label, maxLabelLen)
	}
	for _, r := range label {
		if isAllowedLabelRune(r) {
			continue
		}
		return "", fmt.Errorf("label %q contains invalid character %q (allowed: letters, digits, '.', '-', '_')", label, r)
	}
	return label, nil
}

func isAllowedLabelRune(r rune) bool {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return true
	}
	switch r {
	case '-', '_', '.':
		return true
	default:
		return false
	}
}
