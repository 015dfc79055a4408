package quiz

import (
	"math"
	"testing"
)

func TestEvalExpression(t *testing.T) {
	tests := []struct {
		expr string
		x    float64
		want float64
	}{
		{"2x", 3, 6},
		{"2*x + 1", 4, 9},
		{"x^2", 3, 9},
		{"x**2", -2, 4},
		{"x^2 - 1", 2, 3},
		{"(x+1)(x-1)", 3, 8},
		{"-x", 5, -5},
		{"10 - 2 - 3", 0, 5}, // left-associative subtraction
		{"2^3^2", 0, 512},    // right-associative exponent
		{"6 ÷ 2", 0, 3},
		{"2π", 0, 2 * math.Pi},
		{"sqrt(16)", 0, 4},
		{"abs(-3)", 0, 3},
		{"sin(0)", 0, 0},
		{"2sin(x)", math.Pi / 2, 2},
		{"e", 0, math.E},
		{"0.5x", 10, 5},
	}

	for _, tc := range tests {
		got, err := EvalExpression(tc.expr, tc.x)
		if err != nil {
			t.Errorf("EvalExpression(%q, %g) error: %v", tc.expr, tc.x, err)
			continue
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("EvalExpression(%q, %g) = %g, want %g", tc.expr, tc.x, got, tc.want)
		}
	}
}

func TestEvalExpression_Errors(t *testing.T) {
	exprs := []string{
		"",
		"2 +",
		"(x + 1",
		"foo(3)",
		"y + 1",
		"sin",
		"1..2",
	}
	for _, expr := range exprs {
		if _, err := EvalExpression(expr, 1); err == nil {
			t.Errorf("EvalExpression(%q) succeeded, want error", expr)
		}
	}
}

func TestGraphPlot_CheckPoints(t *testing.T) {
	q := GraphPlot{
		Base:            Base{ID: "gp", Difficulty: 3, Points: 10, Text: "Slope 2 through origin."},
		CorrectFunction: "2x",
		Grid:            GridConfig{XMin: -5, XMax: 5, YMin: -10, YMax: 10},
		CheckPoints:     []Point{{X: -1, Y: -2}, {X: 0, Y: 0}, {X: 2, Y: 4}},
	}

	tests := []struct {
		fn   string
		want bool
	}{
		{"2x", true},
		{"2*x", true},
		{"x+x", true}, // judged by values, not syntax
		{"2x+0.05", true},
		{"2x+1", false},
		{"3x", false},
		{"nonsense(", false},
		{"", false},
	}

	for _, tc := range tests {
		got := Evaluate(q, TextSubmission(tc.fn)).Correct
		if got != tc.want {
			t.Errorf("plot %q = %v, want %v", tc.fn, got, tc.want)
		}
	}
}

func TestGraphPlot_Sampled(t *testing.T) {
	q := GraphPlot{
		Base:            Base{ID: "gp2", Difficulty: 4, Points: 10, Text: "x squared minus one."},
		CorrectFunction: "x^2 - 1",
		Grid:            GridConfig{XMin: -3, XMax: 3, YMin: -2, YMax: 8},
	}

	if !Evaluate(q, TextSubmission("x*x - 1")).Correct {
		t.Error("algebraically equal function judged incorrect")
	}
	if !Evaluate(q, TextSubmission("(x+1)(x-1)")).Correct {
		t.Error("factored form judged incorrect")
	}
	if Evaluate(q, TextSubmission("x^2")).Correct {
		t.Error("offset function judged correct")
	}
}

func TestGraphPlot_RejectsDivergence(t *testing.T) {
	q := GraphPlot{
		Base:            Base{ID: "gp3", Difficulty: 4, Points: 10, Text: "Reciprocal."},
		CorrectFunction: "1/x",
		Grid:            GridConfig{XMin: 1, XMax: 5, YMin: 0, YMax: 1},
		CheckPoints:     []Point{{X: 2, Y: 0.5}},
	}
	// 1/(x-2) is infinite at the check point; must be incorrect, not a panic.
	if Evaluate(q, TextSubmission("1/(x-2)")).Correct {
		t.Error("divergent function judged correct")
	}
}
