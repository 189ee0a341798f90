package handler

import (
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"deutschkurs/internal/entity"
	"deutschkurs/internal/forms"
	"deutschkurs/internal/middleware"
	"deutschkurs/internal/repository"
)

type WordHandler struct {
	courses    CourseStore
	sections   SectionStore
	words      WordStore
	manageTmpl *template.Template
	editTmpl   *template.Template
}

func NewWordHandler(courses CourseStore, sections SectionStore, words WordStore) *WordHandler {
	return &WordHandler{
		courses:    courses,
		sections:   sections,
		words:      words,
		manageTmpl: parseTemplate("word_manage.html"),
		editTmpl:   parseTemplate("edit_word.html"),
	}
}

// managedSection loads the section and checks it belongs to the acting
// manager's course. A nil section pointer means the response is written.
func (h *WordHandler) managedSection(w http.ResponseWriter, r *http.Request, sectionID int) *entity.Section {
	user, _ := middleware.CurrentUser(r)

	section, err := h.sections.GetByID(sectionID)
	if errors.Is(err, repository.ErrNotFound) {
		http.NotFound(w, r)
		return nil
	} else if err != nil {
		serverError(w, err)
		return nil
	}

	owned, err := ownsSection(h.courses, user.ID, section)
	if err != nil {
		serverError(w, err)
		return nil
	}
	if !owned {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return nil
	}
	return &section
}

func (h *WordHandler) Manage(w http.ResponseWriter, r *http.Request) {
	sectionID, err := idParam(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	section := h.managedSection(w, r, sectionID)
	if section == nil {
		return
	}

	if r.Method == http.MethodPost {
		f, err := forms.ParseWord(r)
		if err != nil {
			h.renderManage(w, r, *section, "Word and meaning are required")
			return
		}

		word := entity.Word{
			Name:        f.Name,
			Meaning:     f.Meaning,
			Gender:      f.Gender,
			Description: f.Description,
			SectionID:   section.ID,
		}
		if _, err := h.words.Create(word); err != nil {
			serverError(w, err)
			return
		}
		http.Redirect(w, r, fmt.Sprintf("/word_manage/section/%d", section.ID), http.StatusSeeOther)
		return
	}

	h.renderManage(w, r, *section, "")
}

func (h *WordHandler) renderManage(w http.ResponseWriter, r *http.Request, section entity.Section, errMsg string) {
	user, _ := middleware.CurrentUser(r)

	words, err := h.words.ListBySection(section.ID)
	if err != nil {
		serverError(w, err)
		return
	}

	render(w, h.manageTmpl, map[string]any{
		"Title":       "Words",
		"UserName":    user.Name,
		"SectionName": section.Name,
		"SectionID":   section.ID,
		"Words":       words,
		"Genders":     entity.Genders,
		"Error":       errMsg,
	})
}

func (h *WordHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	sectionID, err := idParam(r, "section_id")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	wordID, err := idParam(r, "word_id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if section := h.managedSection(w, r, sectionID); section == nil {
		return
	}

	if err := h.words.Delete(wordID); err != nil {
		serverError(w, err)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/word_manage/section/%d", sectionID), http.StatusSeeOther)
}

func (h *WordHandler) EditWord(w http.ResponseWriter, r *http.Request) {
	sectionID, err := idParam(r, "section_id")
	if err != nil {
		http.NotFound(w, r)
		return
	}
	wordID, err := idParam(r, "word_id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if section := h.managedSection(w, r, sectionID); section == nil {
		return
	}

	word, err := h.words.GetByID(wordID)
	if errors.Is(err, repository.ErrNotFound) {
		http.NotFound(w, r)
		return
	} else if err != nil {
		serverError(w, err)
		return
	}

	if r.Method == http.MethodPost {
		f, err := forms.ParseWord(r)
		if err != nil {
			h.renderEdit(w, r, sectionID, word, "Word and meaning are required")
			return
		}

		word.Name = f.Name
		word.Meaning = f.Meaning
		word.Gender = f.Gender
		word.Description = f.Description
		if err := h.words.Update(word); err != nil {
			serverError(w, err)
			return
		}
		http.Redirect(w, r, fmt.Sprintf("/word_manage/section/%d", sectionID), http.StatusSeeOther)
		return
	}

	h.renderEdit(w, r, sectionID, word, "")
}

func (h *WordHandler) renderEdit(w http.ResponseWriter, r *http.Request, sectionID int, word entity.Word, errMsg string) {
	user, _ := middleware.CurrentUser(r)

	render(w, h.editTmpl, map[string]any{
		"Title":     "Edit Word",
		"UserName":  user.Name,
		"SectionID": sectionID,
		"Word":      word,
		"Genders":   entity.Genders,
		"Error":     errMsg,
	})
}
