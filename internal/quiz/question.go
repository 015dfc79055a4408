package quiz

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
)

// Type discriminates the question variants.
type Type string

const (
	TypeMultipleChoice Type = "multiple-choice"
	TypeDragDrop       Type = "drag-drop"
	TypeGraph          Type = "graph"
	TypeOrder          Type = "order"
	TypeFillBlank      Type = "fill-blank"
	TypeLineMatch      Type = "line-match"
	TypeQuickTap       Type = "quick-tap"
	TypeTypeIn         Type = "type-in"
	TypeGraphPlot      Type = "graph-plot"
	TypeSliderInput    Type = "slider-input"
)

// Question is the sum type over all variants. The unexported methods keep
// the set of implementations closed: a new variant cannot be added without
// also providing its evaluation and shuffle rules in this package.
type Question interface {
	// Meta returns the fields shared by every variant.
	Meta() Base

	// Type returns the variant discriminant.
	Type() Type

	evaluate(sub Submission) bool
	shuffle(rng *rand.Rand) Question
}

// Base holds the fields common to every question variant.
type Base struct {
	// ID is unique within a bank and stable across shuffles.
	ID string `json:"id"`

	// Difficulty ranges from 1 (easiest) to 4 (hardest).
	Difficulty int `json:"difficulty"`

	// Points is the score value of a correct answer. Always positive.
	Points int `json:"points"`

	// Text is the question prompt. For fill-blank questions it embeds
	// placeholder markers like {0} and {1}.
	Text string `json:"question"`

	// Explanation is optional display text shown after answering.
	// It plays no role in evaluation.
	Explanation string `json:"explanation,omitempty"`
}

// Meta implements part of the Question interface for every variant.
func (b Base) Meta() Base { return b }

// MultipleChoice presents a list of options; one or more are correct.
type MultipleChoice struct {
	Base
	Options []Item `json:"options"`

	// CorrectAnswers holds the textual content of each correct option.
	// Matching is by content, not by position, so shuffling the options
	// never invalidates the key.
	CorrectAnswers []string `json:"correctAnswers"`

	MultiSelect bool `json:"multiSelect,omitempty"`
}

func (MultipleChoice) Type() Type { return TypeMultipleChoice }

// DropZone names the item that belongs in it by position-encoded id.
type DropZone struct {
	ID string `json:"id"`

	// CorrectItemID references an item as "item-<index>".
	CorrectItemID string `json:"correctItemId"`

	Placeholder string `json:"placeholder,omitempty"`
}

// DragDrop asks the user to place items into drop zones.
type DragDrop struct {
	Base
	Items     []Item     `json:"items"`
	DropZones []DropZone `json:"dropZones"`
}

func (DragDrop) Type() Type { return TypeDragDrop }

// Point is a coordinate on the question grid.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// GridConfig bounds the visible coordinate range of a graph.
type GridConfig struct {
	XMin     float64 `json:"xMin"`
	XMax     float64 `json:"xMax"`
	YMin     float64 `json:"yMin"`
	YMax     float64 `json:"yMax"`
	ShowGrid bool    `json:"showGrid,omitempty"`
}

// Graph asks the user to place one or more points on a grid.
type Graph struct {
	Base
	CorrectPoints []Point    `json:"correctPoints"`
	Grid          GridConfig `json:"gridConfig"`
}

func (Graph) Type() Type { return TypeGraph }

// Direction orders a numeric sequence.
type Direction string

const (
	Ascending  Direction = "ascending"
	Descending Direction = "descending"
)

// Step is one step in a worked solution sequence.
type Step struct {
	Text        string `json:"text"`
	Equation    string `json:"equation"`
	Explanation string `json:"explanation,omitempty"`
}

// Order covers two sequencing modes: sorting a list of numbers into
// ascending or descending order, or arranging solution steps into the
// canonical StepOrder permutation. Exactly one mode is populated.
type Order struct {
	Base

	// Numeric mode.
	Numbers   []float64 `json:"numbers,omitempty"`
	Direction Direction `json:"direction,omitempty"`

	// Step mode. StepOrder[i] is the index into Steps of the step that
	// belongs at position i.
	Steps     []Step `json:"steps,omitempty"`
	StepOrder []int  `json:"stepOrder,omitempty"`

	InitialEquation string `json:"initialEquation,omitempty"`
}

func (Order) Type() Type { return TypeOrder }

// IsStepMode reports whether this order question arranges steps rather
// than numbers.
func (q Order) IsStepMode() bool { return len(q.Steps) > 0 }

// Blank is a single gap in a fill-blank question.
type Blank struct {
	ID     string `json:"id"`
	Answer string `json:"answer"`

	// Position matches a {n} placeholder in the question text.
	Position int `json:"position"`

	AcceptableAnswers []string `json:"acceptableAnswers,omitempty"`
}

// FillBlank asks the user to complete one or more gaps in the prompt.
type FillBlank struct {
	Base
	Blanks []Blank `json:"blanks"`
}

func (FillBlank) Type() Type { return TypeFillBlank }

// Connection pairs a left item with a right item by index.
type Connection struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// LineMatch asks the user to connect each left item to its right item.
// Connections form a bijection over the left items.
type LineMatch struct {
	Base
	LeftItems   []Item       `json:"leftItems"`
	RightItems  []Item       `json:"rightItems"`
	Connections []Connection `json:"correctConnections"`
}

func (LineMatch) Type() Type { return TypeLineMatch }

// TapMode selects the quick-tap correctness policy.
type TapMode string

const (
	// TapExact requires tapping every correct item and no incorrect item.
	TapExact TapMode = "exact"

	// TapThreshold requires MinCorrect correct taps before time expires;
	// incorrect taps are ignored.
	TapThreshold TapMode = "threshold"
)

// TapItem is one tappable item.
type TapItem struct {
	Text      Item `json:"text"`
	IsCorrect bool `json:"isCorrect"`
}

// QuickTap asks the user to tap matching items under time pressure.
type QuickTap struct {
	Base
	Items []TapItem `json:"items"`

	// TimeLimit is in seconds.
	TimeLimit float64 `json:"timeLimit"`

	MinCorrect int `json:"minCorrect"`

	// Mode must be set explicitly; the two policies cannot be told apart
	// from MinCorrect alone.
	Mode TapMode `json:"mode"`
}

func (QuickTap) Type() Type { return TypeQuickTap }

// Validation constrains a type-in submission before comparison.
type Validation struct {
	// Type is "number", "text" or "formula".
	Type string `json:"type"`

	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
	Precision *int     `json:"precision,omitempty"`
	Integer   bool     `json:"integer,omitempty"`
	Tolerance *float64 `json:"tolerance,omitempty"`
	Pattern   string   `json:"pattern,omitempty"`
}

// TypeIn asks the user to type a free-form answer.
type TypeIn struct {
	Base
	CorrectAnswer     string      `json:"correctAnswer"`
	AcceptableAnswers []string    `json:"acceptableAnswers,omitempty"`
	CaseSensitive     bool        `json:"caseSensitive,omitempty"`
	Validation        *Validation `json:"validation,omitempty"`
}

func (TypeIn) Type() Type { return TypeTypeIn }

// GraphPlot asks the user for a symbolic function, judged by sampling.
type GraphPlot struct {
	Base
	CorrectFunction string     `json:"correctFunction"`
	Grid            GridConfig `json:"gridConfig"`

	// CheckPoints, when present, are the sample points the submitted
	// function must pass through. When absent the submission is compared
	// against CorrectFunction at evenly spaced samples over the x-range.
	CheckPoints []Point `json:"checkPoints,omitempty"`
}

func (GraphPlot) Type() Type { return TypeGraphPlot }

// SliderInput asks for a numeric value on a bounded range.
type SliderInput struct {
	Base
	Min           float64 `json:"min"`
	Max           float64 `json:"max"`
	CorrectAnswer float64 `json:"correctAnswer"`

	// Tolerance of zero means the default of 1.
	Tolerance float64 `json:"tolerance,omitempty"`

	Unit     string `json:"unit,omitempty"`
	Scenario string `json:"scenario,omitempty"`
}

func (SliderInput) Type() Type { return TypeSliderInput }

// UnmarshalQuestion decodes one question from its JSON representation,
// dispatching on the "type" discriminant.
func UnmarshalQuestion(data []byte) (Question, error) {
	var head struct {
		Type Type `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, fmt.Errorf("decode question: %w", err)
	}

	var q Question
	var err error
	switch head.Type {
	case TypeMultipleChoice:
		var v MultipleChoice
		err = json.Unmarshal(data, &v)
		q = v
	case TypeDragDrop:
		var v DragDrop
		err = json.Unmarshal(data, &v)
		q = v
	case TypeGraph:
		var v Graph
		err = json.Unmarshal(data, &v)
		q = v
	case TypeOrder:
		var v Order
		err = json.Unmarshal(data, &v)
		q = v
	case TypeFillBlank:
		var v FillBlank
		err = json.Unmarshal(data, &v)
		q = v
	case TypeLineMatch:
		var v LineMatch
		err = json.Unmarshal(data, &v)
		q = v
	case TypeQuickTap:
		var v QuickTap
		err = json.Unmarshal(data, &v)
		q = v
	case TypeTypeIn:
		var v TypeIn
		err = json.Unmarshal(data, &v)
		q = v
	case TypeGraphPlot:
		var v GraphPlot
		err = json.Unmarshal(data, &v)
		q = v
	case TypeSliderInput:
		var v SliderInput
		err = json.Unmarshal(data, &v)
		q = v
	default:
		return nil, fmt.Errorf("unknown question type %q", head.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s question: %w", head.Type, err)
	}
	return q, nil
}

// MarshalQuestion encodes a question with its "type" discriminant included.
func MarshalQuestion(q Question) ([]byte, error) {
	body, err := json.Marshal(q)
	if err != nil {
		return nil, fmt.Errorf("encode %s question: %w", q.Type(), err)
	}
	// Splice the discriminant into the variant's own object.
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		return nil, fmt.Errorf("encode %s question: %w", q.Type(), err)
	}
	obj["type"] = json.RawMessage(fmt.Sprintf("%q", q.Type()))
	return json.Marshal(obj)
}
