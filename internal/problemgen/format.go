package problemgen

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatThousands renders n with comma thousands separators, e.g. 12,345.
func FormatThousands(n int64) string {
	return printer.Sprintf("%d", n)
}

// ColumnWidth is the display width of the largest value with the given
// number of digits. Every term of a vertical problem is padded to it.
func ColumnWidth(digitsMax int) int {
	if digitsMax < 1 {
		digitsMax = 1
	}
	return len(FormatThousands(maxForDigits(digitsMax)))
}

// RenderTerm renders one line of a vertical problem: a sign glyph
// (space or '-') followed by the magnitude right-aligned to width.
func RenderTerm(v int64, width int) string {
	sign := " "
	if v < 0 {
		sign = "-"
		v = -v
	}
	s := FormatThousands(v)
	if pad := width - len(s); pad > 0 {
		s = strings.Repeat(" ", pad) + s
	}
	return sign + s
}

func renderColumn(terms []int64, digitsMax int) string {
	width := ColumnWidth(digitsMax)
	lines := make([]string, len(terms))
	for i, v := range terms {
		lines[i] = RenderTerm(v, width)
	}
	return strings.Join(lines, "\n")
}

var pow10 = func() [19]int64 {
	var p [19]int64
	p[0] = 1
	for i := 1; i < len(p); i++ {
		p[i] = p[i-1] * 10
	}
	return p
}()

func maxForDigits(d int) int64 {
	return pow10[d] - 1
}

// digitRange returns the inclusive bounds of d-digit numbers. zeroOK
// lets a one-digit range start at 0.
func digitRange(d int, zeroOK bool) (int64, int64) {
	if d <= 1 {
		if zeroOK {
			return 0, 9
		}
		return 1, 9
	}
	return pow10[d-1], pow10[d] - 1
}

// digitCount returns the number of decimal digits of |n|; 0 has one digit.
func digitCount(n int64) int {
	if n < 0 {
		n = -n
	}
	c := 1
	for n >= 10 {
		n /= 10
		c++
	}
	return c
}
