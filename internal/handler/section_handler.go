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

type SectionHandler struct {
	courses  CourseStore
	sections SectionStore
	words    WordStore
	tmpl     *template.Template
}

func NewSectionHandler(courses CourseStore, sections SectionStore, words WordStore) *SectionHandler {
	return &SectionHandler{
		courses:  courses,
		sections: sections,
		words:    words,
		tmpl:     parseTemplate("section_manage.html"),
	}
}

func (h *SectionHandler) Manage(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r)

	course, err := h.courses.GetByOwner(user.ID)
	if errors.Is(err, repository.ErrNotFound) {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	} else if err != nil {
		serverError(w, err)
		return
	}

	if r.Method == http.MethodPost {
		f, err := forms.ParseSection(r)
		if err != nil {
			h.renderManage(w, r, user, course, "Section name is required")
			return
		}

		id, err := h.sections.Create(entity.Section{Name: f.Name, CourseID: course.ID})
		if err != nil {
			serverError(w, err)
			return
		}
		http.Redirect(w, r, fmt.Sprintf("/word_manage/section/%d", id), http.StatusSeeOther)
		return
	}

	h.renderManage(w, r, user, course, "")
}

func (h *SectionHandler) renderManage(w http.ResponseWriter, r *http.Request, user middleware.Principal, course entity.Course, errMsg string) {
	sections, err := h.sections.ListByCourse(course.ID)
	if err != nil {
		serverError(w, err)
		return
	}

	counts := make(map[int]int, len(sections))
	for _, s := range sections {
		n, err := h.words.CountBySection(s.ID)
		if err != nil {
			serverError(w, err)
			return
		}
		counts[s.ID] = n
	}

	render(w, h.tmpl, map[string]any{
		"Title":      "Sections",
		"UserName":   user.Name,
		"CourseName": course.Name,
		"Sections":   sections,
		"WordCounts": counts,
		"Error":      errMsg,
		"Flashes":    middleware.Flashes(w, r),
	})
}

func (h *SectionHandler) DeleteSection(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r)

	id, err := idParam(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	section, err := h.sections.GetByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		http.NotFound(w, r)
		return
	} else if err != nil {
		serverError(w, err)
		return
	}

	owned, err := ownsSection(h.courses, user.ID, section)
	if err != nil {
		serverError(w, err)
		return
	}
	if !owned {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	if err := h.sections.Delete(section.ID); err != nil {
		serverError(w, err)
		return
	}
	http.Redirect(w, r, "/section_manage", http.StatusSeeOther)
}
