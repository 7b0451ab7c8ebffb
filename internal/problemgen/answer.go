package problemgen

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

// CheckAnswer compares the player's input against the problem's answer.
// Returns true if the answer is correct.
//
// Normalization rules:
// - Full-width digits and signs are folded to ASCII
// - Whitespace and thousands separators are ignored
// - Leading zeros are ignored (e.g., "007" matches "7")
func CheckAnswer(input string, p Problem) bool {
	got, err := normalizeAnswer(input)
	if err != nil {
		return false
	}
	want, err := normalizeAnswer(p.Answer)
	if err != nil {
		return false
	}
	return got == want
}

// normalizeAnswer turns typed input into a canonical integer string.
func normalizeAnswer(answer string) (string, error) {
	answer = width.Narrow.String(answer)
	answer = strings.Map(func(r rune) rune {
		switch r {
		case ',', '_', ' ', '\t', '\n', '　':
			return -1
		}
		return r
	}, answer)
	if answer == "" {
		return "", fmt.Errorf("empty answer")
	}
	n, err := strconv.ParseInt(answer, 10, 64)
	if err != nil {
		return "", fmt.Errorf("invalid integer: %w", err)
	}
	return strconv.FormatInt(n, 10), nil
}

// parseTerm reads one rendered line of a vertical problem.
func parseTerm(line string) (int64, error) {
	line = strings.TrimRight(line, " ")
	if line == "" {
		return 0, fmt.Errorf("empty line")
	}
	neg := line[0] == '-'
	digits := strings.ReplaceAll(strings.TrimSpace(line[1:]), ",", "")
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid term %q: %w", line, err)
	}
	if neg {
		n = -n
	}
	return n, nil
}
