package quiz

import (
	"testing"
	"time"
)

func mcQuestion() MultipleChoice {
	return MultipleChoice{
		Base:           Base{ID: "mc-1", Difficulty: 1, Points: 10, Text: "What is 2+2?"},
		Options:        []Item{Text("4"), Text("5"), Text("6")},
		CorrectAnswers: []string{"4"},
	}
}

func TestEvaluateMultipleChoice(t *testing.T) {
	q := mcQuestion()

	tests := []struct {
		name     string
		selected ChoiceSubmission
		want     bool
	}{
		{"exact match", ChoiceSubmission{"4"}, true},
		{"wrong option", ChoiceSubmission{"5"}, false},
		{"extra selection", ChoiceSubmission{"4", "5"}, false},
		{"empty", ChoiceSubmission{}, false},
		{"duplicate selection", ChoiceSubmission{"4", "4"}, false},
	}

	for _, tc := range tests {
		got := Evaluate(q, tc.selected).Correct
		if got != tc.want {
			t.Errorf("%s: Evaluate = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestEvaluateMultipleChoice_MultiSelect(t *testing.T) {
	q := MultipleChoice{
		Base:           Base{ID: "mc-2", Difficulty: 2, Points: 10, Text: "Pick the even numbers."},
		Options:        []Item{Text("3"), Text("8"), Text("11"), Text("14")},
		CorrectAnswers: []string{"8", "14"},
		MultiSelect:    true,
	}

	tests := []struct {
		name     string
		selected ChoiceSubmission
		want     bool
	}{
		{"both, in key order", ChoiceSubmission{"8", "14"}, true},
		{"both, reversed", ChoiceSubmission{"14", "8"}, true},
		{"only one", ChoiceSubmission{"8"}, false},
		{"one right one wrong", ChoiceSubmission{"8", "3"}, false},
	}

	for _, tc := range tests {
		got := Evaluate(q, tc.selected).Correct
		if got != tc.want {
			t.Errorf("%s: Evaluate = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestEvaluateDragDrop(t *testing.T) {
	q := DragDrop{
		Base:  Base{ID: "dd-1", Difficulty: 2, Points: 10, Text: "Place the fractions."},
		Items: []Item{Text("1/2"), Text("1/4")},
		DropZones: []DropZone{
			{ID: "z-half", CorrectItemID: "item-0"},
			{ID: "z-quarter", CorrectItemID: "item-1"},
		},
	}

	correct := PlacementSubmission{"z-half": "1/2", "z-quarter": "1/4"}
	if !Evaluate(q, correct).Correct {
		t.Error("correct placement judged incorrect")
	}

	swapped := PlacementSubmission{"z-half": "1/4", "z-quarter": "1/2"}
	if Evaluate(q, swapped).Correct {
		t.Error("swapped placement judged correct")
	}

	partial := PlacementSubmission{"z-half": "1/2"}
	if Evaluate(q, partial).Correct {
		t.Error("partial placement judged correct")
	}
}

func TestEvaluateGraph_Tolerance(t *testing.T) {
	q := Graph{
		Base:          Base{ID: "g-1", Difficulty: 2, Points: 10, Text: "Plot (2, 4)."},
		CorrectPoints: []Point{{X: 2, Y: 4}},
		Grid:          GridConfig{XMin: -5, XMax: 5, YMin: -10, YMax: 10},
	}
	// 2% of the x-range 10 is exactly the 0.2 cap.

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"exact", Point{2, 4}, true},
		{"inside tolerance", Point{2.1, 3.9}, true},
		{"on the boundary", Point{2.2, 4}, false},
		{"outside", Point{2.5, 4}, false},
		{"y off", Point{2, 4.3}, false},
	}

	for _, tc := range tests {
		got := Evaluate(q, PointsSubmission{tc.p}).Correct
		if got != tc.want {
			t.Errorf("%s: point (%g, %g) = %v, want %v", tc.name, tc.p.X, tc.p.Y, got, tc.want)
		}
	}

	if Evaluate(q, PointsSubmission{}).Correct {
		t.Error("empty point set judged correct")
	}
}

func TestGraphTolerance_Clamp(t *testing.T) {
	tests := []struct {
		xMin, xMax float64
		want       float64
	}{
		{0, 1, 0.1},    // tiny range clamps up
		{-5, 5, 0.2},   // 2% of 10 hits the cap
		{0, 100, 0.2},  // huge range clamps down
		{0, 7.5, 0.15}, // inside the band
	}

	for _, tc := range tests {
		got := graphTolerance(GridConfig{XMin: tc.xMin, XMax: tc.xMax})
		if got != tc.want {
			t.Errorf("graphTolerance([%g, %g]) = %g, want %g", tc.xMin, tc.xMax, got, tc.want)
		}
	}
}

func TestEvaluateOrder_Numeric(t *testing.T) {
	asc := Order{
		Base:      Base{ID: "o-1", Difficulty: 1, Points: 10, Text: "Sort ascending."},
		Numbers:   []float64{7, 2, 9},
		Direction: Ascending,
	}
	if !Evaluate(asc, NumberOrderSubmission{2, 7, 9}).Correct {
		t.Error("sorted ascending judged incorrect")
	}
	if Evaluate(asc, NumberOrderSubmission{9, 7, 2}).Correct {
		t.Error("descending arrangement judged correct for ascending question")
	}
	if Evaluate(asc, NumberOrderSubmission{2, 7}).Correct {
		t.Error("short arrangement judged correct")
	}

	desc := asc
	desc.Direction = Descending
	if !Evaluate(desc, NumberOrderSubmission{9, 7, 2}).Correct {
		t.Error("sorted descending judged incorrect")
	}
}

func TestEvaluateOrder_Steps(t *testing.T) {
	q := Order{
		Base: Base{ID: "o-2", Difficulty: 3, Points: 10, Text: "Arrange the steps."},
		Steps: []Step{
			{Text: "Divide both sides by 2", Equation: "x = 3"},
			{Text: "Subtract 4 from both sides", Equation: "2x = 6"},
		},
		StepOrder: []int{1, 0},
	}
	if !Evaluate(q, StepOrderSubmission{1, 0}).Correct {
		t.Error("canonical step order judged incorrect")
	}
	if Evaluate(q, StepOrderSubmission{0, 1}).Correct {
		t.Error("reversed step order judged correct")
	}
}

func TestEvaluateFillBlank(t *testing.T) {
	q := FillBlank{
		Base: Base{ID: "fb-1", Difficulty: 2, Points: 10, Text: "5 x {0} = 35 and {1} / 4 = 6"},
		Blanks: []Blank{
			{ID: "b1", Answer: "7", Position: 0},
			{ID: "b2", Answer: "24", Position: 1, AcceptableAnswers: []string{"twenty-four"}},
		},
	}

	tests := []struct {
		name string
		sub  BlankSubmission
		want bool
	}{
		{"both right", BlankSubmission{"b1": "7", "b2": "24"}, true},
		{"whitespace and case forgiven", BlankSubmission{"b1": " 7 ", "b2": "Twenty-Four"}, true},
		{"one wrong", BlankSubmission{"b1": "7", "b2": "25"}, false},
		{"one missing", BlankSubmission{"b1": "7"}, false},
	}

	for _, tc := range tests {
		got := Evaluate(q, tc.sub).Correct
		if got != tc.want {
			t.Errorf("%s: Evaluate = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestEvaluateLineMatch(t *testing.T) {
	q := LineMatch{
		Base:       Base{ID: "lm-1", Difficulty: 3, Points: 10, Text: "Match."},
		LeftItems:  []Item{Text("6x7"), Text("8x8")},
		RightItems: []Item{Text("64"), Text("42")},
		Connections: []Connection{
			{From: 0, To: 1},
			{From: 1, To: 0},
		},
	}

	full := MatchSubmission{{From: 1, To: 0}, {From: 0, To: 1}}
	if !Evaluate(q, full).Correct {
		t.Error("complete correct matching judged incorrect")
	}

	partial := MatchSubmission{{From: 0, To: 1}}
	if Evaluate(q, partial).Correct {
		t.Error("incomplete matching judged correct")
	}

	wrong := MatchSubmission{{From: 0, To: 0}, {From: 1, To: 1}}
	if Evaluate(q, wrong).Correct {
		t.Error("crossed matching judged correct")
	}
}

func quickTapQuestion(mode TapMode) QuickTap {
	return QuickTap{
		Base: Base{ID: "qt-1", Difficulty: 2, Points: 10, Text: "Tap the primes."},
		Items: []TapItem{
			{Text: Text("2"), IsCorrect: true},
			{Text: Text("4"), IsCorrect: false},
			{Text: Text("7"), IsCorrect: true},
			{Text: Text("9"), IsCorrect: false},
		},
		TimeLimit:  10,
		MinCorrect: 2,
		Mode:       mode,
	}
}

func TestEvaluateQuickTap_Exact(t *testing.T) {
	q := quickTapQuestion(TapExact)

	tests := []struct {
		name   string
		tapped []int
		want   bool
	}{
		{"all correct items", []int{0, 2}, true},
		{"order irrelevant", []int{2, 0}, true},
		{"missing one", []int{0}, false},
		{"stray tap", []int{0, 2, 1}, false},
		{"duplicate taps collapse", []int{0, 0, 2}, true},
		{"out of range ignored", []int{0, 2, 99}, true},
	}

	for _, tc := range tests {
		got := Evaluate(q, TapSubmission{Tapped: tc.tapped, Elapsed: time.Second}).Correct
		if got != tc.want {
			t.Errorf("%s: Evaluate = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestEvaluateQuickTap_Threshold(t *testing.T) {
	q := quickTapQuestion(TapThreshold)

	tests := []struct {
		name    string
		tapped  []int
		elapsed time.Duration
		want    bool
	}{
		{"threshold met in time", []int{0, 2}, 5 * time.Second, true},
		{"stray taps forgiven", []int{0, 1, 2, 3}, 5 * time.Second, true},
		{"too few correct", []int{0, 1}, 5 * time.Second, false},
		{"too slow", []int{0, 2}, 11 * time.Second, false},
		{"exactly at the limit", []int{0, 2}, 10 * time.Second, true},
	}

	for _, tc := range tests {
		got := Evaluate(q, TapSubmission{Tapped: tc.tapped, Elapsed: tc.elapsed}).Correct
		if got != tc.want {
			t.Errorf("%s: Evaluate = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestEvaluateSlider(t *testing.T) {
	q := SliderInput{
		Base:          Base{ID: "sl-1", Difficulty: 1, Points: 10, Text: "Half of 60."},
		Min:           0,
		Max:           90,
		CorrectAnswer: 30,
		Tolerance:     2,
	}

	tests := []struct {
		value float64
		want  bool
	}{
		{30, true},
		{31, true},
		{28, true},
		{32, true}, // inclusive boundary
		{33, false},
		{27, false},
	}

	for _, tc := range tests {
		got := Evaluate(q, ValueSubmission(tc.value)).Correct
		if got != tc.want {
			t.Errorf("slider value %g = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestEvaluateSlider_DefaultTolerance(t *testing.T) {
	q := SliderInput{
		Base:          Base{ID: "sl-2", Difficulty: 1, Points: 10, Text: "Pick 50."},
		Min:           0,
		Max:           100,
		CorrectAnswer: 50,
	}
	// Unset tolerance falls back to 1, never to exact-only.
	if !Evaluate(q, ValueSubmission(51)).Correct {
		t.Error("value within default tolerance judged incorrect")
	}
	if Evaluate(q, ValueSubmission(52)).Correct {
		t.Error("value outside default tolerance judged correct")
	}
}

func TestEvaluate_MismatchedSubmission(t *testing.T) {
	// A submission of the wrong shape is incorrect, never a panic.
	questions := []Question{
		mcQuestion(),
		Graph{Base: Base{ID: "g"}, CorrectPoints: []Point{{1, 1}}, Grid: GridConfig{XMin: 0, XMax: 10, YMin: 0, YMax: 10}},
		SliderInput{Base: Base{ID: "s"}, Min: 0, Max: 10, CorrectAnswer: 5},
		TypeIn{Base: Base{ID: "t"}, CorrectAnswer: "yes"},
	}
	for _, q := range questions {
		if Evaluate(q, TapSubmission{Tapped: []int{0}}).Correct {
			t.Errorf("%s: mismatched submission judged correct", q.Type())
		}
		if Evaluate(q, nil).Correct {
			t.Errorf("%s: nil submission judged correct", q.Type())
		}
	}
}

func TestEvaluate_NormalizedEcho(t *testing.T) {
	formula := TypeIn{
		Base:          Base{ID: "f", Difficulty: 3, Points: 10, Text: "Expand 2(x+3)."},
		CorrectAnswer: "2x + 6",
		Validation:    &Validation{Type: "formula"},
	}
	res := Evaluate(formula, TextSubmission("2 X + 6"))
	if !res.Correct {
		t.Fatal("equivalent formula judged incorrect")
	}
	if res.Normalized != "2*x+6" {
		t.Errorf("Normalized = %q, want %q", res.Normalized, "2*x+6")
	}

	plain := TypeIn{Base: Base{ID: "p"}, CorrectAnswer: "x-axis"}
	res = Evaluate(plain, TextSubmission("  x-axis  "))
	if res.Normalized != "x-axis" {
		t.Errorf("Normalized = %q, want trimmed input", res.Normalized)
	}
}

func TestCorrectSubmissionEvaluates(t *testing.T) {
	for _, q := range sampleQuestions() {
		sub := CorrectSubmission(q)
		if sub == nil {
			t.Errorf("%s: no key-derived submission", q.Type())
			continue
		}
		if !Evaluate(q, sub).Correct {
			t.Errorf("%s: key-derived submission judged incorrect", q.Type())
		}
	}
}
