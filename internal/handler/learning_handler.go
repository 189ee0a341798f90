package handler

import (
	"errors"
	"html/template"
	"net/http"

	"deutschkurs/internal/learning"
	"deutschkurs/internal/middleware"
	"deutschkurs/internal/repository"
)

type LearningHandler struct {
	words  WordStore
	engine *learning.Engine
	tmpl   *template.Template
}

func NewLearningHandler(words WordStore, engine *learning.Engine) *LearningHandler {
	return &LearningHandler{
		words:  words,
		engine: engine,
		tmpl:   parseTemplate("learning.html"),
	}
}

// PackWordList starts a study pass: the section's words become the session's
// working list and the first word is selected right away.
func (h *LearningHandler) PackWordList(w http.ResponseWriter, r *http.Request) {
	sectionID, err := idParam(r, "section_id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	words, err := h.words.ListBySection(sectionID)
	if err != nil {
		serverError(w, err)
		return
	}

	h.engine.Load(middleware.LearnID(w, r), words)
	http.Redirect(w, r, "/select_word", http.StatusSeeOther)
}

func (h *LearningHandler) SelectWord(w http.ResponseWriter, r *http.Request) {
	h.engine.SelectNext(middleware.LearnID(w, r))
	http.Redirect(w, r, "/show_learning", http.StatusSeeOther)
}

// ShowAnswer re-reads the selected word from the store so edits made since
// selection show up in the reveal.
func (h *LearningHandler) ShowAnswer(w http.ResponseWriter, r *http.Request) {
	sid := middleware.LearnID(w, r)

	if id, ok := h.engine.Current(sid); ok {
		word, err := h.words.GetByID(id)
		if err == nil {
			h.engine.Reveal(sid, word)
		} else if !errors.Is(err, repository.ErrNotFound) {
			serverError(w, err)
			return
		}
	}
	http.Redirect(w, r, "/show_learning", http.StatusSeeOther)
}

func (h *LearningHandler) RemoveFromList(w http.ResponseWriter, r *http.Request) {
	h.engine.Discard(middleware.LearnID(w, r))
	http.Redirect(w, r, "/show_learning", http.StatusSeeOther)
}

func (h *LearningHandler) ShowLearning(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r)
	view := h.engine.View(middleware.LearnID(w, r))

	render(w, h.tmpl, map[string]any{
		"Title":    "Learning",
		"UserName": user.Name,
		"View":     view,
		"Finished": view.WordID == 0,
	})
}
