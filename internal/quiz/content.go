package quiz

import "encoding/json"

// ContentKind describes how a display item should be rendered.
type ContentKind string

const (
	ContentText    ContentKind = "text"
	ContentMath    ContentKind = "math"
	ContentCode    ContentKind = "code"
	ContentFormula ContentKind = "formula"
)

// Item is a display item: plain text or rich content carrying a render
// hint. Answer keys compare the Content string only, so wrapping an item
// in rich formatting never changes which answers are judged correct.
type Item struct {
	Kind    ContentKind
	Content string
}

// Text creates a plain text item.
func Text(content string) Item {
	return Item{Kind: ContentText, Content: content}
}

// Math creates a math-rendered item.
func Math(content string) Item {
	return Item{Kind: ContentMath, Content: content}
}

// String returns the textual payload used for content equality.
func (it Item) String() string { return it.Content }

// itemJSON is the rich-content wire form.
type itemJSON struct {
	Kind    ContentKind `json:"type"`
	Content string      `json:"content"`
}

// UnmarshalJSON accepts either a bare string or a rich-content object.
func (it *Item) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*it = Item{Kind: ContentText, Content: s}
		return nil
	}
	var obj itemJSON
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	if obj.Kind == "" {
		obj.Kind = ContentText
	}
	*it = Item{Kind: obj.Kind, Content: obj.Content}
	return nil
}

// MarshalJSON writes plain text items as bare strings.
func (it Item) MarshalJSON() ([]byte, error) {
	if it.Kind == "" || it.Kind == ContentText {
		return json.Marshal(it.Content)
	}
	return json.Marshal(itemJSON{Kind: it.Kind, Content: it.Content})
}

// contents extracts the textual payload of each item.
func contents(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Content
	}
	return out
}
