package handler

import (
	"errors"
	"html/template"
	"net/http"

	"deutschkurs/internal/entity"
	"deutschkurs/internal/forms"
	"deutschkurs/internal/middleware"
	"deutschkurs/internal/repository"
)

type ProfileHandler struct {
	users       UserStore
	courses     CourseStore
	sections    SectionStore
	words       WordStore
	profileTmpl *template.Template
	searchTmpl  *template.Template
	chooseTmpl  *template.Template
}

func NewProfileHandler(users UserStore, courses CourseStore, sections SectionStore, words WordStore) *ProfileHandler {
	return &ProfileHandler{
		users:       users,
		courses:     courses,
		sections:    sections,
		words:       words,
		profileTmpl: parseTemplate("profile.html"),
		searchTmpl:  parseTemplate("search_result.html"),
		chooseTmpl:  parseTemplate("choose_course.html"),
	}
}

func (h *ProfileHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r)
	if user.Role == entity.RoleAdmin {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	if r.Method == http.MethodPost {
		h.search(w, r, user)
		return
	}

	course, err := h.studiedOrManagedCourse(user)
	if errors.Is(err, repository.ErrNotFound) {
		http.Redirect(w, r, "/choose_course", http.StatusSeeOther)
		return
	} else if err != nil {
		serverError(w, err)
		return
	}

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

	render(w, h.profileTmpl, map[string]any{
		"Title":      "Profile",
		"UserName":   user.Name,
		"IsManager":  user.Role == entity.RoleManager,
		"CourseName": course.Name,
		"Sections":   sections,
		"WordCounts": counts,
		"Flashes":    middleware.Flashes(w, r),
	})
}

func (h *ProfileHandler) studiedOrManagedCourse(user middleware.Principal) (entity.Course, error) {
	if user.Role == entity.RoleManager {
		return h.courses.GetByOwner(user.ID)
	}

	u, err := h.users.GetByID(user.ID)
	if err != nil {
		return entity.Course{}, err
	}
	if u.StudyCourseID == nil {
		return entity.Course{}, repository.ErrNotFound
	}
	return h.courses.GetByID(*u.StudyCourseID)
}

func (h *ProfileHandler) search(w http.ResponseWriter, r *http.Request, user middleware.Principal) {
	f, err := forms.ParseSearch(r)
	if err != nil {
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
		return
	}

	results, err := h.words.Search(f.Word)
	if err != nil {
		serverError(w, err)
		return
	}

	render(w, h.searchTmpl, map[string]any{
		"Title":       "Search",
		"UserName":    user.Name,
		"Query":       f.Word,
		"SearchList":  results,
		"AllowToEdit": user.Role == entity.RoleManager,
	})
}

func (h *ProfileHandler) ChooseCourse(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r)

	courses, err := h.courses.All()
	if err != nil {
		serverError(w, err)
		return
	}

	render(w, h.chooseTmpl, map[string]any{
		"Title":      "Choose a Course",
		"UserName":   user.Name,
		"AllCourses": courses,
	})
}

func (h *ProfileHandler) AddCourse(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r)

	course, err := h.courses.GetByName(r.PathValue("name"))
	if errors.Is(err, repository.ErrNotFound) {
		http.NotFound(w, r)
		return
	} else if err != nil {
		serverError(w, err)
		return
	}

	if err := h.users.SetStudyCourse(user.ID, course.ID); err != nil {
		serverError(w, err)
		return
	}
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}
