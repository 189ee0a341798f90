package handler

import (
	"errors"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"

	"deutschkurs/internal/entity"
	"deutschkurs/internal/repository"
	"deutschkurs/internal/templates"
)

func parseTemplate(name string) *template.Template {
	return template.Must(template.ParseFS(templates.FS, name))
}

func render(w http.ResponseWriter, tmpl *template.Template, data any) {
	if err := tmpl.Execute(w, data); err != nil {
		log.Printf("render %s: %v", tmpl.Name(), err)
	}
}

func idParam(r *http.Request, name string) (int, error) {
	return strconv.Atoi(r.PathValue(name))
}

func serverError(w http.ResponseWriter, err error) {
	log.Println(err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

// ownsSection reports whether the user's owned course contains the section.
func ownsSection(courses CourseStore, userID int, s entity.Section) (bool, error) {
	course, err := courses.GetByOwner(userID)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("course by owner: %w", err)
	}
	return course.ID == s.CourseID, nil
}
