package handler

import (
	"errors"
	"html/template"
	"net/http"
	"time"

	"deutschkurs/internal/entity"
	"deutschkurs/internal/forms"
	"deutschkurs/internal/learning"
	"deutschkurs/internal/middleware"
	"deutschkurs/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

const dateLayout = "January 2, 2006"

type AuthHandler struct {
	users        UserStore
	courses      CourseStore
	engine       *learning.Engine
	registerTmpl *template.Template
	loginTmpl    *template.Template
}

func NewAuthHandler(users UserStore, courses CourseStore, engine *learning.Engine) *AuthHandler {
	return &AuthHandler{
		users:        users,
		courses:      courses,
		engine:       engine,
		registerTmpl: parseTemplate("register.html"),
		loginTmpl:    parseTemplate("login.html"),
	}
}

func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.renderRegister(w, r, "", nil)
}

func (h *AuthHandler) renderRegister(w http.ResponseWriter, r *http.Request, errMsg string, f *forms.Register) {
	data := map[string]any{
		"Title":   "Register",
		"Error":   errMsg,
		"Flashes": middleware.Flashes(w, r),
	}
	if f != nil {
		data["Form"] = f
	}
	render(w, h.registerTmpl, data)
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	f, err := forms.ParseRegister(r)
	if err != nil {
		h.renderRegister(w, r, "Please fill in all required fields with a valid email", &f)
		return
	}

	if _, err := h.users.GetByEmail(f.Email); err == nil {
		middleware.AddFlash(w, r, "Your Email already has been registered")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	} else if !errors.Is(err, repository.ErrNotFound) {
		serverError(w, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(f.Password), bcrypt.DefaultCost)
	if err != nil {
		serverError(w, err)
		return
	}

	newUser := entity.User{
		Name:           f.Name,
		Email:          f.Email,
		PasswordHash:   string(hash),
		Role:           entity.RoleLearner,
		DateOfRegister: time.Now().Format(dateLayout),
	}

	if f.CourseCode == "" {
		if _, err := h.users.Create(newUser); err != nil {
			serverError(w, err)
			return
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	course, err := h.courses.GetByCode(f.CourseCode)
	if errors.Is(err, repository.ErrNotFound) {
		middleware.AddFlash(w, r, "Entered Code is Wrong")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	} else if err != nil {
		serverError(w, err)
		return
	}

	if course.OwnerID != nil {
		middleware.AddFlash(w, r, "This Course Is Belonged To Someone Else")
		http.Redirect(w, r, "/register", http.StatusSeeOther)
		return
	}

	if _, err := h.users.CreateManager(newUser, course.ID); err != nil {
		if errors.Is(err, repository.ErrCourseClaimed) {
			middleware.AddFlash(w, r, "This Course Is Belonged To Someone Else")
			http.Redirect(w, r, "/register", http.StatusSeeOther)
			return
		}
		serverError(w, err)
		return
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.renderLogin(w, r, "", nil)
}

func (h *AuthHandler) renderLogin(w http.ResponseWriter, r *http.Request, errMsg string, f *forms.Login) {
	data := map[string]any{
		"Title":   "Login",
		"Error":   errMsg,
		"Flashes": middleware.Flashes(w, r),
	}
	if f != nil {
		data["Form"] = f
	}
	render(w, h.loginTmpl, data)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	f, err := forms.ParseLogin(r)
	if err != nil {
		h.renderLogin(w, r, "Please enter a valid email and password", &f)
		return
	}

	user, err := h.users.GetByEmail(f.Email)
	if errors.Is(err, repository.ErrNotFound) {
		middleware.AddFlash(w, r, "The Entered Email Is Wrong")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	} else if err != nil {
		serverError(w, err)
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(f.Password)) != nil {
		middleware.AddFlash(w, r, "The Entered Password Is Wrong")
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := middleware.SignIn(w, r, middleware.Principal{ID: user.ID, Name: user.Name, Role: user.Role}); err != nil {
		serverError(w, err)
		return
	}

	switch {
	case user.Role == entity.RoleAdmin:
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
	case user.Role == entity.RoleManager || user.StudyCourseID != nil:
		http.Redirect(w, r, "/profile", http.StatusSeeOther)
	default:
		http.Redirect(w, r, "/choose_course", http.StatusSeeOther)
	}
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	h.engine.Drop(middleware.LearnID(w, r))
	middleware.SignOut(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
