package handler

import (
	"errors"
	"html/template"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"deutschkurs/internal/entity"
	"deutschkurs/internal/forms"
	"deutschkurs/internal/middleware"
	"deutschkurs/internal/repository"
)

const (
	codeLength   = 20
	codeAttempts = 5
)

type AdminHandler struct {
	courses      CourseStore
	adminTmpl    *template.Template
	creationTmpl *template.Template
	randSource   *rand.Rand
}

func NewAdminHandler(courses CourseStore) *AdminHandler {
	return &AdminHandler{
		courses:      courses,
		adminTmpl:    parseTemplate("admin.html"),
		creationTmpl: parseTemplate("course_creation.html"),
		randSource:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (h *AdminHandler) AdminPage(w http.ResponseWriter, r *http.Request) {
	user, _ := middleware.CurrentUser(r)

	courses, err := h.courses.All()
	if err != nil {
		serverError(w, err)
		return
	}

	render(w, h.adminTmpl, map[string]any{
		"Title":      "Admin",
		"UserName":   user.Name,
		"AllCourses": courses,
		"Flashes":    middleware.Flashes(w, r),
	})
}

func (h *AdminHandler) CourseCreationPage(w http.ResponseWriter, r *http.Request) {
	h.renderCreation(w, r, "", nil)
}

func (h *AdminHandler) renderCreation(w http.ResponseWriter, r *http.Request, errMsg string, f *forms.Course) {
	user, _ := middleware.CurrentUser(r)
	data := map[string]any{
		"Title":    "New Course",
		"UserName": user.Name,
		"Error":    errMsg,
	}
	if f != nil {
		data["Form"] = f
	}
	render(w, h.creationTmpl, data)
}

func (h *AdminHandler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	f, err := forms.ParseCourse(r)
	if err != nil {
		h.renderCreation(w, r, "All fields are required", &f)
		return
	}

	code, err := h.uniqueCode()
	if err != nil {
		serverError(w, err)
		return
	}

	course := entity.Course{
		Name:           strings.Join([]string{f.Language, f.Level, f.Month, f.Year}, " - "),
		Language:       f.Language,
		Level:          f.Level,
		Teacher:        f.Teacher,
		Month:          f.Month,
		Year:           f.Year,
		Code:           code,
		DateOfCreation: time.Now().Format(dateLayout),
	}
	if _, err := h.courses.Create(course); err != nil {
		serverError(w, err)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *AdminHandler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "id")
	if err != nil {
		http.NotFound(w, r)
		return
	}

	course, err := h.courses.GetByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		http.NotFound(w, r)
		return
	} else if err != nil {
		serverError(w, err)
		return
	}

	if course.OwnerID != nil {
		middleware.AddFlash(w, r, "This Course Has Owner, It Can Not Be Deleted")
	} else if err := h.courses.Delete(course.ID); err != nil {
		serverError(w, err)
		return
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// uniqueCode draws join codes until one misses the courses table.
func (h *AdminHandler) uniqueCode() (string, error) {
	for i := 0; i < codeAttempts; i++ {
		code := randomCode(h.randSource, codeLength)
		exists, err := h.courses.CodeExists(code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
	return "", errors.New("could not generate a unique course code")
}

func randomCode(rnd *rand.Rand, n int) string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	b := make([]byte, n)
	for i := range b {
		b[i] = letters[rnd.Intn(len(letters))]
	}
	return string(b)
}
