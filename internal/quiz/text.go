package quiz

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

func blankCorrect(blank Blank, typed string) bool {
	got := normalizeText(typed, false)
	if got == "" {
		return false
	}
	if got == normalizeText(blank.Answer, false) {
		return true
	}
	for _, alt := range blank.AcceptableAnswers {
		if got == normalizeText(alt, false) {
			return true
		}
	}
	return false
}

func (q TypeIn) evaluate(sub Submission) bool {
	text, ok := sub.(TextSubmission)
	if !ok {
		return false
	}
	input := strings.TrimSpace(string(text))
	if input == "" {
		return false
	}

	if q.Validation == nil {
		return q.matchesText(input)
	}

	switch q.Validation.Type {
	case "number":
		return q.numberCorrect(input)
	case "text":
		if q.Validation.Pattern != "" {
			re, err := regexp.Compile(q.Validation.Pattern)
			if err != nil || !re.MatchString(input) {
				return false
			}
		}
		return q.matchesText(input)
	case "formula":
		return q.formulaCorrect(input)
	default:
		return false
	}
}

// matchesText compares the input against the main answer and every
// acceptable alternative under trim/whitespace/case normalization.
func (q TypeIn) matchesText(input string) bool {
	got := normalizeText(input, q.CaseSensitive)
	if got == normalizeText(q.CorrectAnswer, q.CaseSensitive) {
		return true
	}
	for _, alt := range q.AcceptableAnswers {
		if got == normalizeText(alt, q.CaseSensitive) {
			return true
		}
	}
	return false
}

// numberCorrect parses and range-checks the input, then compares it to
// the numeric answer, within tolerance when one is configured.
func (q TypeIn) numberCorrect(input string) bool {
	v := q.Validation
	num, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return false
	}
	if v.Integer && num != math.Trunc(num) {
		return false
	}
	if v.Min != nil && num < *v.Min {
		return false
	}
	if v.Max != nil && num > *v.Max {
		return false
	}
	if v.Precision != nil && decimalPlaces(input) > *v.Precision {
		return false
	}

	want, err := strconv.ParseFloat(strings.TrimSpace(q.CorrectAnswer), 64)
	if err != nil {
		return false
	}
	if v.Tolerance != nil {
		return math.Abs(num-want) <= *v.Tolerance
	}
	return num == want
}

func (q TypeIn) formulaCorrect(input string) bool {
	got := NormalizeFormula(input)
	if got == "" {
		return false
	}
	if got == NormalizeFormula(q.CorrectAnswer) {
		return true
	}
	for _, alt := range q.AcceptableAnswers {
		if got == NormalizeFormula(alt) {
			return true
		}
	}
	return false
}

// normalizeText trims, collapses inner whitespace and optionally
// case-folds. Applying it twice yields the same string.
func normalizeText(s string, caseSensitive bool) string {
	s = strings.Join(strings.Fields(s), " ")
	if !caseSensitive {
		s = strings.ToLower(s)
	}
	return s
}

// NormalizeFormula rewrites a math expression into a canonical form so
// that notational variants compare equal: whitespace stripped, case
// folded, multiplication/division/minus glyphs unified, ^ rewritten to
// **, implicit multiplication made explicit and redundant sign sequences
// collapsed. Idempotent: normalizing a normalized string is a no-op.
func NormalizeFormula(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch r {
		case ' ', '\t', '\n', '\r':
		case '×', '·':
			b.WriteRune('*')
		case '÷':
			b.WriteRune('/')
		case '−':
			b.WriteRune('-')
		case 'π':
			b.WriteString("pi")
		case 'θ':
			b.WriteString("theta")
		default:
			b.WriteRune(r)
		}
	}
	out := strings.ReplaceAll(b.String(), "^", "**")
	out = insertImplicitMul(out)
	return collapseSigns(out)
}

// insertImplicitMul writes a * between adjacent tokens that imply
// multiplication: 2x, 2(, )(, )x. Function applications like sin( are
// left alone.
func insertImplicitMul(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && impliesMul(runes[i-1], r) {
			b.WriteRune('*')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func impliesMul(prev, cur rune) bool {
	switch {
	case isDigit(prev) && isLetter(cur):
		return true
	case isDigit(prev) && cur == '(':
		return true
	case prev == ')' && (isDigit(cur) || isLetter(cur) || cur == '('):
		return true
	}
	return false
}

// collapseSigns reduces sign runs to a single sign: +- and -+ become -,
// -- and ++ become +. Repeats until stable so arbitrarily long runs
// collapse.
func collapseSigns(s string) string {
	for {
		next := strings.NewReplacer("+-", "-", "-+", "-", "--", "+", "++", "+").Replace(s)
		if next == s {
			return s
		}
		s = next
	}
}

// decimalPlaces counts the digits after the decimal point as typed.
func decimalPlaces(s string) int {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		s = s[:i]
	}
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return 0
	}
	return len(s) - dot - 1
}

func isDigit(r rune) bool  { return r >= '0' && r <= '9' }
func isLetter(r rune) bool { return r >= 'a' && r <= 'z' }
