package handler

import (
	"math/rand"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"deutschkurs/internal/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomCodeShape(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	code := randomCode(rnd, codeLength)

	require.Len(t, code, 20)
	for _, c := range code {
		assert.True(t, c >= 'A' && c <= 'Z', "code must be uppercase letters, got %q", c)
	}
}

func TestUniqueCodeRetriesOnCollision(t *testing.T) {
	checks := 0
	h := NewAdminHandler(&mockCourses{
		codeExists: func(string) (bool, error) {
			checks++
			return checks == 1, nil
		},
	})

	code, err := h.uniqueCode()
	require.NoError(t, err)
	assert.Len(t, code, 20)
	assert.Equal(t, 2, checks)
}

func TestCreateCourseDerivesNameAndCode(t *testing.T) {
	var got entity.Course
	h := NewAdminHandler(&mockCourses{
		create: func(c entity.Course) (int, error) {
			got = c
			return 1, nil
		},
	})

	form := url.Values{
		"language": {"German"},
		"teacher":  {"Herr Otero"},
		"level":    {"A1"},
		"month":    {"March"},
		"year":     {"2024"},
	}
	rec := httptest.NewRecorder()
	h.CreateCourse(rec, postForm("/course_creation", form))

	assert.Equal(t, "/admin", location(t, rec))
	assert.Equal(t, "German - A1 - March - 2024", got.Name)
	assert.Len(t, got.Code, 20)
	assert.Nil(t, got.OwnerID)
}

func TestDeleteCourseWithOwnerIsKept(t *testing.T) {
	owner := 5
	deleted := 0
	h := NewAdminHandler(&mockCourses{
		getByID: func(int) (entity.Course, error) {
			return entity.Course{ID: 3, OwnerID: &owner}, nil
		},
		delete: func(int) error {
			deleted++
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/delete_course/3", nil)
	req.SetPathValue("id", "3")
	rec := httptest.NewRecorder()
	h.DeleteCourse(rec, req)

	assert.Equal(t, "/admin", location(t, rec))
	assert.Zero(t, deleted, "an owned course must not be deleted")
}

func TestDeleteUnownedCourse(t *testing.T) {
	var deleted []int
	h := NewAdminHandler(&mockCourses{
		getByID: func(id int) (entity.Course, error) {
			return entity.Course{ID: id}, nil
		},
		delete: func(id int) error {
			deleted = append(deleted, id)
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/delete_course/3", nil)
	req.SetPathValue("id", "3")
	rec := httptest.NewRecorder()
	h.DeleteCourse(rec, req)

	assert.Equal(t, "/admin", location(t, rec))
	assert.Equal(t, []int{3}, deleted)
}

func TestDeleteMissingCourseIs404(t *testing.T) {
	h := NewAdminHandler(&mockCourses{})

	req := httptest.NewRequest(http.MethodGet, "/delete_course/99", nil)
	req.SetPathValue("id", "99")
	rec := httptest.NewRecorder()
	h.DeleteCourse(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
