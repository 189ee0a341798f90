package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"deutschkurs/internal/entity"
	"deutschkurs/internal/middleware"
	"deutschkurs/internal/repository"

	"github.com/stretchr/testify/require"
)

func init() {
	middleware.Init("test-secret")
}

// signIn encodes a session cookie for the principal onto the request.
func signIn(t *testing.T, req *http.Request, p middleware.Principal) {
	t.Helper()
	rec := httptest.NewRecorder()
	base := httptest.NewRequest(http.MethodGet, "/", nil)
	require.NoError(t, middleware.SignIn(rec, base, p))
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
}

func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func location(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	require.Equal(t, http.StatusSeeOther, rec.Code)
	return rec.Header().Get("Location")
}

// browser replays cookies across requests the way a real client would.
type browser struct {
	t       *testing.T
	cookies map[string]*http.Cookie
}

func newBrowser(t *testing.T) *browser {
	return &browser{t: t, cookies: make(map[string]*http.Cookie)}
}

func (b *browser) do(h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	b.t.Helper()
	for _, c := range b.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h(rec, req)
	for _, c := range rec.Result().Cookies() {
		b.cookies[c.Name] = c
	}
	return rec
}

// --- mock stores ---

type mockUsers struct {
	getByID        func(int) (entity.User, error)
	getByEmail     func(string) (entity.User, error)
	create         func(entity.User) (int, error)
	createManager  func(entity.User, int) (int, error)
	setStudyCourse func(int, int) error
	count          func() (int, error)
}

func (m *mockUsers) GetByID(id int) (entity.User, error) {
	if m.getByID == nil {
		return entity.User{}, repository.ErrNotFound
	}
	return m.getByID(id)
}

func (m *mockUsers) GetByEmail(email string) (entity.User, error) {
	if m.getByEmail == nil {
		return entity.User{}, repository.ErrNotFound
	}
	return m.getByEmail(email)
}

func (m *mockUsers) Create(u entity.User) (int, error) {
	if m.create == nil {
		return 1, nil
	}
	return m.create(u)
}

func (m *mockUsers) CreateManager(u entity.User, courseID int) (int, error) {
	if m.createManager == nil {
		return 1, nil
	}
	return m.createManager(u, courseID)
}

func (m *mockUsers) SetStudyCourse(userID, courseID int) error {
	if m.setStudyCourse == nil {
		return nil
	}
	return m.setStudyCourse(userID, courseID)
}

func (m *mockUsers) Count() (int, error) {
	if m.count == nil {
		return 0, nil
	}
	return m.count()
}

type mockCourses struct {
	getByID    func(int) (entity.Course, error)
	getByCode  func(string) (entity.Course, error)
	getByName  func(string) (entity.Course, error)
	getByOwner func(int) (entity.Course, error)
	all        func() ([]entity.Course, error)
	create     func(entity.Course) (int, error)
	delete     func(int) error
	codeExists func(string) (bool, error)
	count      func() (int, error)
}

func (m *mockCourses) GetByID(id int) (entity.Course, error) {
	if m.getByID == nil {
		return entity.Course{}, repository.ErrNotFound
	}
	return m.getByID(id)
}

func (m *mockCourses) GetByCode(code string) (entity.Course, error) {
	if m.getByCode == nil {
		return entity.Course{}, repository.ErrNotFound
	}
	return m.getByCode(code)
}

func (m *mockCourses) GetByName(name string) (entity.Course, error) {
	if m.getByName == nil {
		return entity.Course{}, repository.ErrNotFound
	}
	return m.getByName(name)
}

func (m *mockCourses) GetByOwner(userID int) (entity.Course, error) {
	if m.getByOwner == nil {
		return entity.Course{}, repository.ErrNotFound
	}
	return m.getByOwner(userID)
}

func (m *mockCourses) All() ([]entity.Course, error) {
	if m.all == nil {
		return nil, nil
	}
	return m.all()
}

func (m *mockCourses) Create(c entity.Course) (int, error) {
	if m.create == nil {
		return 1, nil
	}
	return m.create(c)
}

func (m *mockCourses) Delete(id int) error {
	if m.delete == nil {
		return nil
	}
	return m.delete(id)
}

func (m *mockCourses) CodeExists(code string) (bool, error) {
	if m.codeExists == nil {
		return false, nil
	}
	return m.codeExists(code)
}

func (m *mockCourses) Count() (int, error) {
	if m.count == nil {
		return 0, nil
	}
	return m.count()
}

type mockSections struct {
	getByID      func(int) (entity.Section, error)
	listByCourse func(int) ([]entity.Section, error)
	create       func(entity.Section) (int, error)
	delete       func(int) error
}

func (m *mockSections) GetByID(id int) (entity.Section, error) {
	if m.getByID == nil {
		return entity.Section{}, repository.ErrNotFound
	}
	return m.getByID(id)
}

func (m *mockSections) ListByCourse(courseID int) ([]entity.Section, error) {
	if m.listByCourse == nil {
		return nil, nil
	}
	return m.listByCourse(courseID)
}

func (m *mockSections) Create(s entity.Section) (int, error) {
	if m.create == nil {
		return 1, nil
	}
	return m.create(s)
}

func (m *mockSections) Delete(id int) error {
	if m.delete == nil {
		return nil
	}
	return m.delete(id)
}

type mockWords struct {
	getByID        func(int) (entity.Word, error)
	listBySection  func(int) ([]entity.Word, error)
	create         func(entity.Word) (int, error)
	update         func(entity.Word) error
	delete         func(int) error
	search         func(string) ([]entity.Word, error)
	count          func() (int, error)
	countBySection func(int) (int, error)
}

func (m *mockWords) GetByID(id int) (entity.Word, error) {
	if m.getByID == nil {
		return entity.Word{}, repository.ErrNotFound
	}
	return m.getByID(id)
}

func (m *mockWords) ListBySection(sectionID int) ([]entity.Word, error) {
	if m.listBySection == nil {
		return nil, nil
	}
	return m.listBySection(sectionID)
}

func (m *mockWords) Create(w entity.Word) (int, error) {
	if m.create == nil {
		return 1, nil
	}
	return m.create(w)
}

func (m *mockWords) Update(w entity.Word) error {
	if m.update == nil {
		return nil
	}
	return m.update(w)
}

func (m *mockWords) Delete(id int) error {
	if m.delete == nil {
		return nil
	}
	return m.delete(id)
}

func (m *mockWords) Search(query string) ([]entity.Word, error) {
	if m.search == nil {
		return nil, nil
	}
	return m.search(query)
}

func (m *mockWords) Count() (int, error) {
	if m.count == nil {
		return 0, nil
	}
	return m.count()
}

func (m *mockWords) CountBySection(sectionID int) (int, error) {
	if m.countBySection == nil {
		return 0, nil
	}
	return m.countBySection(sectionID)
}
