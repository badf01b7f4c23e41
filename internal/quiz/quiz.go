// Package quiz runs the FURIA trivia game: a rounds-based state machine
// that asks multiple-choice questions and tallies a score.
package quiz

import (
	"math/rand"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Button is a quick-reply option attached to a quiz message. Value is what
// the front-end sends back when the button is pressed.
type Button struct {
	Text  string
	Value string
}

// Reply is a quiz message plus its quick-reply buttons.
type Reply struct {
	Content string
	Buttons []Button
}

const (
	inactiveMessage = "O quiz não está ativo. Digite 'quiz' para começar!"
	invalidAnswer   = "Por favor, responda com A, B, C, D!"
)

var answerIndex = map[string]int{
	"a": 0, "b": 1, "c": 2, "d": 3,
	"1": 0, "2": 1, "3": 2, "4": 3,
}

// Engine holds the state of at most one quiz round at a time. Safe for
// concurrent use.
type Engine struct {
	mu       sync.Mutex
	rnd      *rand.Rand
	active   bool
	current  int
	score    int
	total    int
	selected []int
	answers  []int
}

func NewEngine() *Engine {
	return &Engine{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// SetRand replaces the shuffle source so tests get deterministic rounds.
func (e *Engine) SetRand(rnd *rand.Rand) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rnd = rnd
}

// Active reports whether a round is in progress.
func (e *Engine) Active() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active
}

// Options asks how long the round should be. The button values are fed
// back through the bot as quiz_<count> tokens.
func (e *Engine) Options() Reply {
	return Reply{
		Content: "📝 QUIZ FURIA - Quantas perguntas você quer responder?",
		Buttons: []Button{
			{Text: "5 perguntas", Value: "quiz_5"},
			{Text: "10 perguntas", Value: "quiz_10"},
			{Text: "15 perguntas", Value: "quiz_15"},
			{Text: "Todas (20 perguntas)", Value: "quiz_20"},
		},
	}
}

// Start begins a round with count questions, capped at the bank size, and
// returns the first question. A round already in progress is discarded.
func (e *Engine) Start(count int) Reply {
	e.mu.Lock()
	defer e.mu.Unlock()

	if count > len(questions) {
		count = len(questions)
	}

	e.active = true
	e.current = 0
	e.score = 0
	e.total = count
	e.answers = nil
	e.selected = e.pickQuestions(count)

	return e.currentQuestion()
}

// pickQuestions draws count distinct question indexes. Asking for the whole
// bank keeps its natural order; anything less is a shuffled prefix.
func (e *Engine) pickQuestions(count int) []int {
	indices := make([]int, len(questions))
	for i := range indices {
		indices[i] = i
	}
	if count >= len(questions) {
		return indices
	}
	e.rnd.Shuffle(len(indices), func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})
	return indices[:count]
}

// ProcessAnswer grades one answer token (a-d or 1-4, case-insensitive) and
// returns the verdict together with the next question, or the final score
// when the round is over. Unrecognized tokens re-ask without advancing.
func (e *Engine) ProcessAnswer(answer string) Reply {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.active {
		return Reply{
			Content: inactiveMessage,
			Buttons: []Button{{Text: "Iniciar Quiz", Value: "quiz"}},
		}
	}

	idx, ok := answerIndex[strings.ToLower(strings.TrimSpace(answer))]
	if !ok {
		return Reply{Content: invalidAnswer, Buttons: e.optionButtons()}
	}

	q := questions[e.selected[e.current]]
	correct := idx == q.Correct

	e.answers = append(e.answers, idx)
	if correct {
		e.score++
	}

	var verdict string
	if correct {
		verdict = "✅ CORRETO! "
	} else {
		verdict = "❌ INCORRETO! A resposta certa era: " + string(rune('A'+q.Correct)) + ". "
	}
	if q.Explanation != "" {
		verdict += q.Explanation + " "
	}

	e.current++
	if e.current >= e.total {
		e.active = false
		return Reply{
			Content: e.finalResults(),
			Buttons: []Button{{Text: "Jogar novamente", Value: "quiz"}},
		}
	}

	next := e.currentQuestion()
	return Reply{Content: verdict + "\n\n" + next.Content, Buttons: next.Buttons}
}

// Status describes the round progress for a user asking mid-game.
func (e *Engine) Status() string {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.active {
		return inactiveMessage
	}
	return "Você está na pergunta " + strconv.Itoa(e.current+1) + " de " +
		strconv.Itoa(e.total) + ". Pontuação atual: " + strconv.Itoa(e.score)
}

func (e *Engine) currentQuestion() Reply {
	q := questions[e.selected[e.current]]
	content := "📝 QUIZ FURIA - Pergunta " + strconv.Itoa(e.current+1) + "/" +
		strconv.Itoa(e.total) + "\n\n" + q.Text
	return Reply{Content: content, Buttons: e.optionButtons()}
}

func (e *Engine) optionButtons() []Button {
	q := questions[e.selected[e.current]]
	buttons := make([]Button, 0, len(q.Options))
	for i, option := range q.Options {
		letter := string(rune('A' + i))
		buttons = append(buttons, Button{Text: letter + " - " + option, Value: letter})
	}
	return buttons
}

func (e *Engine) finalResults() string {
	percentage := int(float64(e.score)/float64(e.total)*100 + 0.5)

	var b strings.Builder
	b.WriteString("🏆 FIM DO QUIZ FURIA! 🏆\n\n")
	b.WriteString("Sua pontuação: " + strconv.Itoa(e.score) + "/" + strconv.Itoa(e.total) +
		" (" + strconv.Itoa(percentage) + "%)\n\n")

	switch {
	case percentage >= 90:
		b.WriteString("IMPRESSIONANTE! Você é um verdadeiro FURIOSO! Conhece todos os detalhes sobre a FURIA! 🐾 🔥")
	case percentage >= 70:
		b.WriteString("MUITO BOM! Você realmente conhece a FURIA! Continue acompanhando o time! 🐾 🔥")
	case percentage >= 50:
		b.WriteString("BOM TRABALHO! Você conhece bastante sobre a FURIA, mas ainda pode aprender mais! 🐾 🔥")
	case percentage >= 30:
		b.WriteString("VOCÊ ESTÁ COMEÇANDO! Continue acompanhando a FURIA para aprender mais sobre o time! 🐾 🔥")
	default:
		b.WriteString("VOCÊ ESTÁ NO CAMINHO! A FURIA te convida a conhecer mais sobre sua história e seus jogadores! 🐾 🔥")
	}

	b.WriteString("\n\nDigite 'quiz' ou clique no botão abaixo para jogar mais uma rodada!")
	return b.String()
}
