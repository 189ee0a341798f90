package forms

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Register struct {
	Name       string `validate:"required"`
	Email      string `validate:"required,email"`
	Password   string `validate:"required"`
	CourseCode string
}

func ParseRegister(r *http.Request) (Register, error) {
	r.ParseForm()
	f := Register{
		Name:       strings.TrimSpace(r.FormValue("name")),
		Email:      strings.TrimSpace(r.FormValue("email")),
		Password:   r.FormValue("password"),
		CourseCode: strings.TrimSpace(r.FormValue("course_code")),
	}
	return f, validate.Struct(f)
}

type Login struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

func ParseLogin(r *http.Request) (Login, error) {
	r.ParseForm()
	f := Login{
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
	}
	return f, validate.Struct(f)
}

type Course struct {
	Language string `validate:"required"`
	Teacher  string `validate:"required"`
	Level    string `validate:"required"`
	Month    string `validate:"required"`
	Year     string `validate:"required"`
}

func ParseCourse(r *http.Request) (Course, error) {
	r.ParseForm()
	f := Course{
		Language: strings.TrimSpace(r.FormValue("language")),
		Teacher:  strings.TrimSpace(r.FormValue("teacher")),
		Level:    strings.TrimSpace(r.FormValue("level")),
		Month:    strings.TrimSpace(r.FormValue("month")),
		Year:     strings.TrimSpace(r.FormValue("year")),
	}
	return f, validate.Struct(f)
}

type Section struct {
	Name string `validate:"required"`
}

func ParseSection(r *http.Request) (Section, error) {
	r.ParseForm()
	f := Section{Name: strings.TrimSpace(r.FormValue("name"))}
	return f, validate.Struct(f)
}

type Word struct {
	Name        string `validate:"required"`
	Meaning     string `validate:"required"`
	Gender      string `validate:"omitempty,oneof=der die das"`
	Description string
}

func ParseWord(r *http.Request) (Word, error) {
	r.ParseForm()
	f := Word{
		Name:        strings.TrimSpace(r.FormValue("name")),
		Meaning:     strings.TrimSpace(r.FormValue("meaning")),
		Gender:      r.FormValue("gender"),
		Description: r.FormValue("description"),
	}
	return f, validate.Struct(f)
}

type Search struct {
	Word string `validate:"required"`
}

func ParseSearch(r *http.Request) (Search, error) {
	r.ParseForm()
	f := Search{Word: strings.TrimSpace(r.FormValue("word"))}
	return f, validate.Struct(f)
}
