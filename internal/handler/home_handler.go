package handler

import (
	"html/template"
	"net/http"

	"deutschkurs/internal/middleware"
)

type HomeHandler struct {
	users   UserStore
	courses CourseStore
	words   WordStore
	tmpl    *template.Template
}

func NewHomeHandler(users UserStore, courses CourseStore, words WordStore) *HomeHandler {
	return &HomeHandler{
		users:   users,
		courses: courses,
		words:   words,
		tmpl:    parseTemplate("index.html"),
	}
}

func (h *HomeHandler) Index(w http.ResponseWriter, r *http.Request) {
	userCount, err := h.users.Count()
	if err != nil {
		serverError(w, err)
		return
	}
	wordCount, err := h.words.Count()
	if err != nil {
		serverError(w, err)
		return
	}
	courseCount, err := h.courses.Count()
	if err != nil {
		serverError(w, err)
		return
	}

	user, loggedIn := middleware.CurrentUser(r)

	render(w, h.tmpl, map[string]any{
		"Title":         "Home",
		"LoggedIn":      loggedIn,
		"UserName":      user.Name,
		"UserCounter":   userCount,
		"WordCounter":   wordCount,
		"CourseCounter": courseCount,
	})
}
