// Package app hosts the terminal practice loop: questions come from the
// bank, the adaptive controller picks what to ask next, the quiz
// evaluator judges answers and the session keeps score.
package app

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizkit/internal/adaptive"
	"github.com/abhisek/quizkit/internal/bank"
	"github.com/abhisek/quizkit/internal/quiz"
	"github.com/abhisek/quizkit/internal/session"
	"github.com/abhisek/quizkit/internal/store"
	"github.com/abhisek/quizkit/internal/ui/components"
	"github.com/abhisek/quizkit/internal/ui/theme"
)

type phase int

const (
	phaseAsking phase = iota
	phaseFeedback
	phaseSummary
)

// Model is the root Bubble Tea model for a practice run.
type Model struct {
	topic   string
	pool    []quiz.Question
	byTopic map[string]string // question id -> topic, for per-topic tallies

	ctrl *adaptive.Controller
	sess *session.Session
	repo store.AttemptRepo // nil when history is disabled

	phase         phase
	current       quiz.Question
	questionStart time.Time

	options components.OptionList
	input   components.AnswerInput
	slider  components.Slider

	lastResp   quiz.Response
	lastEarned int
	summary    *session.Summary

	width  int
	height int
}

// renderable reports whether a variant has a terminal control.
func renderable(q quiz.Question) bool {
	switch q.Type() {
	case quiz.TypeMultipleChoice, quiz.TypeTypeIn, quiz.TypeSliderInput:
		return true
	}
	return false
}

// Options configure a practice run.
type Options struct {
	// Topic restricts practice to one topic; empty means all topics.
	Topic string

	// NoShuffle presents options and items in bank order.
	NoShuffle bool

	// Repo persists attempt history. Nil disables history.
	Repo store.AttemptRepo
}

// New builds the practice model. Questions are shuffled once at session
// start; variants without a terminal control are left out of the pool.
func New(b *bank.Bank, opts Options, rng *rand.Rand) (Model, error) {
	topics := b.Topics()
	if opts.Topic != "" {
		if len(b.Questions(opts.Topic)) == 0 {
			return Model{}, fmt.Errorf("unknown topic %q (have: %s)", opts.Topic, strings.Join(topics, ", "))
		}
		topics = []string{opts.Topic}
	}

	var pool []quiz.Question
	byTopic := make(map[string]string)
	for _, t := range topics {
		for _, q := range b.Questions(t) {
			if !renderable(q) {
				continue
			}
			if !opts.NoShuffle {
				q = quiz.Shuffle(q, rng)
			}
			pool = append(pool, q)
			byTopic[q.Meta().ID] = t
		}
	}
	if len(pool) == 0 {
		return Model{}, fmt.Errorf("no playable questions for topic %q", opts.Topic)
	}

	m := Model{
		topic:   opts.Topic,
		pool:    pool,
		byTopic: byTopic,
		ctrl:    adaptive.New(adaptive.DefaultConfig(), rng),
		sess:    session.New(opts.Topic, time.Now()),
		repo:    opts.Repo,
	}
	m.askNext()
	return m, nil
}

func (m Model) Init() tea.Cmd {
	if m.repo != nil {
		_ = m.repo.BeginSession(context.Background(), m.sess.ID, m.topic, m.sess.StartTime)
	}
	return m.input.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m.finish()
		}

		switch m.phase {
		case phaseAsking:
			return m.updateAsking(msg)
		case phaseFeedback:
			switch msg.String() {
			case "q", "esc":
				return m.finish()
			default:
				m.askNext()
				return m, m.input.Init()
			}
		case phaseSummary:
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m Model) updateAsking(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m.finish()
	case "ctrl+s":
		// A skip counts as a miss for difficulty purposes.
		if m.ctrl.OnAnswer(m.current.Meta().ID, false, time.Now()) {
			m.record(quiz.SkippedResponse(m.current))
			m.askNext()
			return m, m.input.Init()
		}
		return m, nil
	}

	var submitted bool
	var sub quiz.Submission
	var cmd tea.Cmd

	switch m.current.Type() {
	case quiz.TypeMultipleChoice:
		m.options, submitted = m.options.Update(msg)
		if submitted {
			sub = quiz.ChoiceSubmission(m.options.Chosen())
		}
	case quiz.TypeTypeIn:
		m.input, cmd, submitted = m.input.Update(msg)
		if submitted {
			sub = quiz.TextSubmission(m.input.Value())
		}
	case quiz.TypeSliderInput:
		m.slider, submitted = m.slider.Update(msg)
		if submitted {
			sub = quiz.ValueSubmission(m.slider.Value())
		}
	}
	if !submitted {
		return m, cmd
	}

	res := quiz.Evaluate(m.current, sub)

	// Debounced or locked submissions are dropped whole; the question
	// stays on screen.
	if !m.ctrl.OnAnswer(m.current.Meta().ID, res.Correct, time.Now()) {
		return m, nil
	}

	if m.current.Type() == quiz.TypeTypeIn {
		m.input.Submit(res.Correct)
	}
	m.record(quiz.NewResponse(m.current, sub, res, time.Since(m.questionStart)))
	m.phase = phaseFeedback
	return m, nil
}

// record books one response into the session and the attempt history.
// History writes are best effort; a failed insert does not interrupt the
// run.
func (m *Model) record(resp quiz.Response) {
	topic := m.byTopic[m.current.Meta().ID]
	m.lastResp = resp
	m.lastEarned = m.sess.Record(topic, m.current, resp)

	if m.repo != nil {
		_ = m.repo.Append(context.Background(), store.Attempt{
			SessionID:    m.sess.ID,
			Topic:        topic,
			QuestionID:   m.current.Meta().ID,
			QuestionType: string(m.current.Type()),
			Difficulty:   m.current.Meta().Difficulty,
			Correct:      resp.Correct,
			Skipped:      resp.Skipped,
			Points:       m.lastEarned,
			TimeTaken:    resp.TimeTaken,
			CreatedAt:    time.Now(),
		})
	}
}

// askNext pulls the next question from the controller and arms the
// matching control.
func (m *Model) askNext() {
	q := m.ctrl.SelectNext(m.pool)
	if q == nil {
		m.phase = phaseSummary
		m.summary = session.BuildSummary(m.sess, time.Now())
		if m.repo != nil {
			_ = m.repo.EndSession(context.Background(), m.sess.ID, time.Now(), m.sess.Score, m.sess.BestStreak)
		}
		return
	}
	m.current = q
	m.questionStart = time.Now()
	m.phase = phaseAsking

	switch v := q.(type) {
	case quiz.MultipleChoice:
		texts := make([]string, len(v.Options))
		for i, opt := range v.Options {
			texts[i] = opt.Content
		}
		m.options = components.NewOptionList(texts, v.MultiSelect)
	case quiz.TypeIn:
		m.input = components.NewAnswerInput("type your answer")
	case quiz.SliderInput:
		m.slider = components.NewSlider(v.Min, v.Max, v.Unit)
	}
}

// finish closes out the session and shows the summary.
func (m Model) finish() (tea.Model, tea.Cmd) {
	if m.phase == phaseSummary {
		return m, tea.Quit
	}
	m.summary = session.BuildSummary(m.sess, time.Now())
	m.phase = phaseSummary
	if m.repo != nil {
		_ = m.repo.EndSession(context.Background(), m.sess.ID, time.Now(), m.sess.Score, m.sess.BestStreak)
	}
	return m, nil
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	var b strings.Builder
	b.WriteString(m.statusBar() + "\n\n")

	switch m.phase {
	case phaseAsking:
		b.WriteString(m.viewQuestion())
		b.WriteString("\n" + theme.Hint.Render("enter submit · ctrl+s skip · q quit"))
	case phaseFeedback:
		b.WriteString(m.viewQuestion())
		b.WriteString("\n" + m.viewFeedback())
		b.WriteString("\n" + theme.Hint.Render("any key for next · q quit"))
	case phaseSummary:
		b.WriteString(m.viewSummary())
		b.WriteString("\n" + theme.Hint.Render("any key to exit"))
	}

	v.SetContent(b.String())
	return v
}

func (m Model) statusBar() string {
	label := m.topic
	if label == "" {
		label = "all topics"
	}
	return theme.StatusBar.Render(fmt.Sprintf(
		"%s · level %d · streak %d · score %d",
		label, m.ctrl.Level(), m.sess.Streak, m.sess.Score,
	))
}

func (m Model) viewQuestion() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(m.current.Meta().Text) + "\n\n")

	switch m.current.Type() {
	case quiz.TypeMultipleChoice:
		var key map[string]bool
		if m.phase == phaseFeedback {
			mc := m.current.(quiz.MultipleChoice)
			key = make(map[string]bool, len(mc.CorrectAnswers))
			for _, want := range mc.CorrectAnswers {
				key[want] = true
			}
		}
		b.WriteString(m.options.View(key))
	case quiz.TypeTypeIn:
		b.WriteString(m.input.View() + "\n")
	case quiz.TypeSliderInput:
		if sc := m.current.(quiz.SliderInput).Scenario; sc != "" {
			b.WriteString(theme.Subtitle.Render(sc) + "\n")
		}
		b.WriteString(m.slider.View() + "\n")
	}
	return b.String()
}

func (m Model) viewFeedback() string {
	var b strings.Builder
	if m.lastResp.Skipped {
		b.WriteString(theme.Subtitle.Render("Skipped."))
	} else if m.lastResp.Correct {
		b.WriteString(theme.Correct.Render(fmt.Sprintf("Correct! +%d points", m.lastEarned)))
	} else {
		b.WriteString(theme.Incorrect.Render("Not quite."))
	}
	if expl := m.current.Meta().Explanation; expl != "" {
		b.WriteString("\n" + theme.Subtitle.Render(expl))
	}
	return b.String()
}

func (m Model) viewSummary() string {
	s := m.summary
	var b strings.Builder
	b.WriteString(theme.Title.Render("Session summary") + "\n\n")
	fmt.Fprintf(&b, "Questions  %d\n", s.TotalQuestions)
	fmt.Fprintf(&b, "Correct    %d (%.0f%%)\n", s.TotalCorrect, s.Accuracy*100)
	fmt.Fprintf(&b, "Score      %d\n", s.Score)
	fmt.Fprintf(&b, "Streak     %d best\n", s.BestStreak)
	fmt.Fprintf(&b, "Time       %s\n", s.Duration.Round(time.Second))
	if len(s.TopicResults) > 1 {
		b.WriteString("\n")
		for _, tr := range s.TopicResults {
			fmt.Fprintf(&b, "  %-14s %d/%d · %d pts\n", tr.Topic, tr.Correct, tr.Attempted, tr.Points)
		}
	}
	return b.String()
}

// Run starts the practice program.
func Run(b *bank.Bank, opts Options) error {
	m, err := New(b, opts, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	if err != nil {
		return err
	}
	p := tea.NewProgram(m)
	_, err = p.Run()
	return err
}
