package quiz

import (
	"fmt"
	"math"
	"strconv"
)

// EvalExpression evaluates a symbolic math expression at the given x.
// The expression is normalized first, so user glyphs (×, ÷, ^, π) and
// implicit multiplication are accepted. Supported beyond arithmetic:
// parentheses, unary minus, **, the constants pi and e, and the
// functions sin, cos, tan, sqrt and abs.
func EvalExpression(expr string, x float64) (float64, error) {
	src := NormalizeFormula(expr)
	if src == "" {
		return 0, fmt.Errorf("empty expression")
	}
	p := &exprParser{src: []rune(src), x: x}
	v, err := p.parseSum()
	if err != nil {
		return 0, err
	}
	if p.pos != len(p.src) {
		return 0, fmt.Errorf("unexpected %q at offset %d", string(p.src[p.pos]), p.pos)
	}
	return v, nil
}

// exprParser is a recursive-descent parser over a normalized expression.
// Precedence, loosest to tightest: + -, * /, unary minus, **.
type exprParser struct {
	src []rune
	pos int
	x   float64
}

func (p *exprParser) peek() rune {
	if p.pos >= len(p.src) {
		return 0
	}
	return p.src[p.pos]
}

func (p *exprParser) parseSum() (float64, error) {
	v, err := p.parseProduct()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '+':
			p.pos++
			rhs, err := p.parseProduct()
			if err != nil {
				return 0, err
			}
			v += rhs
		case '-':
			p.pos++
			rhs, err := p.parseProduct()
			if err != nil {
				return 0, err
			}
			v -= rhs
		default:
			return v, nil
		}
	}
}

func (p *exprParser) parseProduct() (float64, error) {
	v, err := p.parseUnary()
	if err != nil {
		return 0, err
	}
	for {
		switch p.peek() {
		case '*':
			p.pos++
			rhs, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			v *= rhs
		case '/':
			p.pos++
			rhs, err := p.parseUnary()
			if err != nil {
				return 0, err
			}
			v /= rhs
		default:
			return v, nil
		}
	}
}

func (p *exprParser) parseUnary() (float64, error) {
	switch p.peek() {
	case '-':
		p.pos++
		v, err := p.parseUnary()
		return -v, err
	case '+':
		p.pos++
		return p.parseUnary()
	}
	return p.parsePower()
}

func (p *exprParser) parsePower() (float64, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return 0, err
	}
	// Right-associative: x**2**3 is x**(2**3).
	if p.peek() == '*' && p.pos+1 < len(p.src) && p.src[p.pos+1] == '*' {
		p.pos += 2
		exp, err := p.parseUnary()
		if err != nil {
			return 0, err
		}
		return math.Pow(base, exp), nil
	}
	return base, nil
}

func (p *exprParser) parsePrimary() (float64, error) {
	r := p.peek()
	switch {
	case r == '(':
		p.pos++
		v, err := p.parseSum()
		if err != nil {
			return 0, err
		}
		if p.peek() != ')' {
			return 0, fmt.Errorf("missing closing parenthesis at offset %d", p.pos)
		}
		p.pos++
		return v, nil
	case isDigit(r) || r == '.':
		return p.parseNumber()
	case isLetter(r):
		return p.parseIdent()
	}
	return 0, fmt.Errorf("unexpected %q at offset %d", string(r), p.pos)
}

func (p *exprParser) parseNumber() (float64, error) {
	start := p.pos
	for p.pos < len(p.src) && (isDigit(p.src[p.pos]) || p.src[p.pos] == '.') {
		p.pos++
	}
	v, err := strconv.ParseFloat(string(p.src[start:p.pos]), 64)
	if err != nil {
		return 0, fmt.Errorf("bad number %q", string(p.src[start:p.pos]))
	}
	return v, nil
}

func (p *exprParser) parseIdent() (float64, error) {
	start := p.pos
	for p.pos < len(p.src) && isLetter(p.src[p.pos]) {
		p.pos++
	}
	name := string(p.src[start:p.pos])

	switch name {
	case "x":
		return p.x, nil
	case "pi":
		return math.Pi, nil
	case "e":
		return math.E, nil
	}

	fn, ok := exprFuncs[name]
	if !ok {
		return 0, fmt.Errorf("unknown identifier %q", name)
	}
	if p.peek() != '(' {
		return 0, fmt.Errorf("function %q requires an argument", name)
	}
	p.pos++
	arg, err := p.parseSum()
	if err != nil {
		return 0, err
	}
	if p.peek() != ')' {
		return 0, fmt.Errorf("missing closing parenthesis at offset %d", p.pos)
	}
	p.pos++
	return fn(arg), nil
}

var exprFuncs = map[string]func(float64) float64{
	"sin":  math.Sin,
	"cos":  math.Cos,
	"tan":  math.Tan,
	"sqrt": math.Sqrt,
	"abs":  math.Abs,
}
