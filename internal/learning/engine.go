package learning

import (
	"math/rand"
	"sync"
	"time"

	"deutschkurs/internal/entity"
)

// Finished is shown in place of a prompt once the working list is drained.
const Finished = "You Finished Learning This Section"

// View is the snapshot the learning page renders. During a question only
// Prompt (the word's meaning) is set; Reveal fills in the rest.
type View struct {
	Prompt      string
	WordID      int
	Name        string
	Gender      string
	Description string
}

type state struct {
	list []entity.Word
	view View
}

// Engine keeps one flashcard working list per session, keyed by the opaque
// learning id carried in the cookie session.
type Engine struct {
	mu         sync.Mutex
	sessions   map[string]*state
	randSource *rand.Rand
}

func NewEngine() *Engine {
	return &Engine{
		sessions:   make(map[string]*state),
		randSource: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (e *Engine) session(sid string) *state {
	s, ok := e.sessions[sid]
	if !ok {
		s = &state{}
		e.sessions[sid] = s
	}
	return s
}

// Load replaces the session's working list wholesale.
func (e *Engine) Load(sid string, words []entity.Word) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.session(sid)
	s.list = append([]entity.Word(nil), words...)
	s.view = View{}
}

// SelectNext picks a word uniformly at random from the working list and shows
// only its meaning. On an empty list it shows the Finished sentinel instead.
func (e *Engine) SelectNext(sid string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.selectNext(e.session(sid))
}

func (e *Engine) selectNext(s *state) {
	s.view = View{}
	if len(s.list) == 0 {
		s.view.Prompt = Finished
		return
	}

	selected := s.list[e.randSource.Intn(len(s.list))]
	s.view.Prompt = selected.Meaning
	s.view.WordID = selected.ID
}

// Current reports the id of the word under question, if any.
func (e *Engine) Current(sid string) (int, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.session(sid)
	return s.view.WordID, s.view.WordID != 0
}

// Reveal shows the answer fields of the word under question. The caller
// re-reads the word from the store; a reveal for a stale selection is ignored.
func (e *Engine) Reveal(sid string, w entity.Word) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.session(sid)
	if s.view.WordID == 0 || s.view.WordID != w.ID {
		return
	}
	s.view.Name = w.Name
	s.view.Gender = w.Gender
	s.view.Description = w.Description
}

// Discard drops the word under question from the working list and immediately
// selects the next one. Without a selection it still re-selects, so the call
// is safe on empty state.
func (e *Engine) Discard(sid string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s := e.session(sid)
	if s.view.WordID != 0 {
		for i, w := range s.list {
			if w.ID == s.view.WordID {
				s.list = append(s.list[:i], s.list[i+1:]...)
				break
			}
		}
	}
	e.selectNext(s)
}

// Remaining reports how many words are left in the working list.
func (e *Engine) Remaining(sid string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.session(sid).list)
}

func (e *Engine) View(sid string) View {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session(sid).view
}

// Drop releases the session's state, e.g. on logout.
func (e *Engine) Drop(sid string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.sessions, sid)
}
