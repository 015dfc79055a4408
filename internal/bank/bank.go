// Package bank loads and holds the question catalogue. A bank is loaded
// once, validated, and treated as read-only for the process lifetime;
// play-through randomization happens on shuffled copies, never in place.
package bank

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/abhisek/quizkit/internal/quiz"
)

//go:embed data/*.json
var defaultData embed.FS

// topicFile is the on-disk envelope of one bank file.
type topicFile struct {
	Topic     string            `json:"topic"`
	Name      string            `json:"name"`
	Questions []json.RawMessage `json:"questions"`
}

// Bank is an immutable catalogue of questions grouped by topic.
type Bank struct {
	topics map[string][]quiz.Question
	names  map[string]string
}

// LoadDefault loads the bank embedded in the binary.
func LoadDefault() (*Bank, error) {
	sub, err := fs.Sub(defaultData, "data")
	if err != nil {
		return nil, err
	}
	return LoadFS(sub)
}

// LoadDir loads every *.json bank file in a directory.
func LoadDir(dir string) (*Bank, error) {
	return LoadFS(os.DirFS(dir))
}

// LoadFS loads every *.json bank file from a filesystem. Each file's
// envelope is checked against the bank schema before its questions are
// decoded; structural validation of individual questions is a separate
// step (Validate) so the CLI can report all problems at once.
func LoadFS(fsys fs.FS) (*Bank, error) {
	entries, err := fs.Glob(fsys, "*.json")
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("no bank files found")
	}
	sort.Strings(entries)

	b := &Bank{
		topics: make(map[string][]quiz.Question),
		names:  make(map[string]string),
	}
	for _, name := range entries {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if err := b.addFile(name, data); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *Bank) addFile(name string, data []byte) error {
	if err := checkEnvelope(data); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	var tf topicFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if _, exists := b.topics[tf.Topic]; exists {
		return fmt.Errorf("%s: duplicate topic %q", name, tf.Topic)
	}

	qs := make([]quiz.Question, 0, len(tf.Questions))
	for i, raw := range tf.Questions {
		q, err := quiz.UnmarshalQuestion(raw)
		if err != nil {
			return fmt.Errorf("%s: question %d: %w", name, i+1, err)
		}
		qs = append(qs, q)
	}

	b.topics[tf.Topic] = qs
	b.names[tf.Topic] = tf.Name
	return nil
}

// Topics returns the topic ids in sorted order.
func (b *Bank) Topics() []string {
	out := make([]string, 0, len(b.topics))
	for t := range b.topics {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// TopicName returns the display name for a topic id.
func (b *Bank) TopicName(topic string) string {
	if n := b.names[topic]; n != "" {
		return n
	}
	return topic
}

// Questions returns the questions of one topic. The returned slice is
// shared; callers must not modify it.
func (b *Bank) Questions(topic string) []quiz.Question {
	return b.topics[topic]
}

// All returns the full topic map. The map and slices are shared; callers
// must not modify them.
func (b *Bank) All() map[string][]quiz.Question {
	return b.topics
}

// Len returns the total number of questions across all topics.
func (b *Bank) Len() int {
	n := 0
	for _, qs := range b.topics {
		n += len(qs)
	}
	return n
}

// Validate runs structural checks over every question and returns the
// collected problems. A non-empty result should fail the build that
// produced the bank files.
func (b *Bank) Validate() []string {
	errs := quiz.ValidateAll(b.topics)
	sort.Strings(errs)
	return errs
}

// Describe returns a one-line summary, e.g. "3 topics, 42 questions".
func (b *Bank) Describe() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d topics, %d questions", len(b.topics), b.Len())
	return sb.String()
}
