package quiz

import "math/rand/v2"

// Shuffle returns a presentation-randomized copy of a question. The copy
// evaluates exactly like the original: wherever a variant encodes its
// answer key by position (drag-drop item ids, line-match connections,
// step order), the key is rewritten through the same permutation that
// moved the content. The source question is never modified, so repeated
// shuffles of the same question are independent.
func Shuffle(q Question, rng *rand.Rand) Question {
	return q.shuffle(rng)
}

// ShuffleBank shuffles every question in a topic map, preserving topics
// and question order within each topic.
func ShuffleBank(byTopic map[string][]Question, rng *rand.Rand) map[string][]Question {
	out := make(map[string][]Question, len(byTopic))
	for topic, qs := range byTopic {
		shuffled := make([]Question, len(qs))
		for i, q := range qs {
			shuffled[i] = Shuffle(q, rng)
		}
		out[topic] = shuffled
	}
	return out
}

// permutation returns a uniform oldIndex→newIndex map for n elements.
// Building the map once per shuffle keeps the remapping correct even
// when two items share the same display content.
func permutation(rng *rand.Rand, n int) []int {
	return rng.Perm(n)
}

func permuteItems(items []Item, oldToNew []int) []Item {
	out := make([]Item, len(items))
	for old, it := range items {
		out[oldToNew[old]] = it
	}
	return out
}

// Options move; the answer key is content-keyed so it carries over as
// values, never as stale indices.
func (q MultipleChoice) shuffle(rng *rand.Rand) Question {
	oldToNew := permutation(rng, len(q.Options))
	q.Options = permuteItems(q.Options, oldToNew)
	q.CorrectAnswers = append([]string(nil), q.CorrectAnswers...)
	return q
}

// Items move; every drop zone's position-encoded id is recomputed to
// point at the new index of the same original item.
func (q DragDrop) shuffle(rng *rand.Rand) Question {
	oldToNew := permutation(rng, len(q.Items))
	q.Items = permuteItems(q.Items, oldToNew)

	zones := make([]DropZone, len(q.DropZones))
	for i, zone := range q.DropZones {
		old, err := parseItemID(zone.CorrectItemID)
		if err == nil && old >= 0 && old < len(oldToNew) {
			zone.CorrectItemID = itemID(oldToNew[old])
		}
		zones[i] = zone
	}
	q.DropZones = zones
	return q
}

// Both sides permute independently; every connection is rewritten
// through both index maps.
func (q LineMatch) shuffle(rng *rand.Rand) Question {
	leftMap := permutation(rng, len(q.LeftItems))
	rightMap := permutation(rng, len(q.RightItems))
	q.LeftItems = permuteItems(q.LeftItems, leftMap)
	q.RightItems = permuteItems(q.RightItems, rightMap)

	conns := make([]Connection, len(q.Connections))
	for i, c := range q.Connections {
		conns[i] = Connection{From: leftMap[c.From], To: rightMap[c.To]}
	}
	q.Connections = conns
	return q
}

// Correctness is per-item (IsCorrect travels with the item), so only the
// presentation order changes.
func (q QuickTap) shuffle(rng *rand.Rand) Question {
	oldToNew := permutation(rng, len(q.Items))
	items := make([]TapItem, len(q.Items))
	for old, it := range q.Items {
		items[oldToNew[old]] = it
	}
	q.Items = items
	return q
}

func (q Order) shuffle(rng *rand.Rand) Question {
	if q.IsStepMode() {
		// Steps move and the canonical permutation is rewritten through
		// the same index map.
		oldToNew := permutation(rng, len(q.Steps))
		steps := make([]Step, len(q.Steps))
		for old, s := range q.Steps {
			steps[oldToNew[old]] = s
		}
		order := make([]int, len(q.StepOrder))
		for i, old := range q.StepOrder {
			order[i] = oldToNew[old]
		}
		q.Steps = steps
		q.StepOrder = order
		return q
	}

	// Numeric ordering is judged against a sort of the values, so the
	// presentation order is free to change without a key rewrite.
	oldToNew := permutation(rng, len(q.Numbers))
	numbers := make([]float64, len(q.Numbers))
	for old, n := range q.Numbers {
		numbers[oldToNew[old]] = n
	}
	q.Numbers = numbers
	return q
}

// The remaining variants have no presentable list to permute.

func (q Graph) shuffle(*rand.Rand) Question       { return q }
func (q FillBlank) shuffle(*rand.Rand) Question   { return q }
func (q TypeIn) shuffle(*rand.Rand) Question      { return q }
func (q GraphPlot) shuffle(*rand.Rand) Question   { return q }
func (q SliderInput) shuffle(*rand.Rand) Question { return q }
