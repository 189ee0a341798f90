package forms

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newForm(form url.Values) *strings.Reader {
	return strings.NewReader(form.Encode())
}

func TestParseRegister(t *testing.T) {
	req := httptest.NewRequest("POST", "/register", newForm(url.Values{
		"name":     {"  Anna "},
		"email":    {"anna@example.com"},
		"password": {"secret"},
	}))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	f, err := ParseRegister(req)
	require.NoError(t, err)
	assert.Equal(t, "Anna", f.Name)
	assert.Empty(t, f.CourseCode)
}

func TestParseRegisterRejectsBadEmail(t *testing.T) {
	req := httptest.NewRequest("POST", "/register", newForm(url.Values{
		"name":     {"Anna"},
		"email":    {"not-an-email"},
		"password": {"secret"},
	}))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	_, err := ParseRegister(req)
	assert.Error(t, err)
}

func TestParseWordGender(t *testing.T) {
	cases := []struct {
		gender string
		ok     bool
	}{
		{"", true},
		{"der", true},
		{"die", true},
		{"das", true},
		{"le", false},
	}

	for _, tc := range cases {
		req := httptest.NewRequest("POST", "/word", newForm(url.Values{
			"name":    {"Hund"},
			"meaning": {"dog"},
			"gender":  {tc.gender},
		}))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		_, err := ParseWord(req)
		if tc.ok {
			assert.NoError(t, err, "gender %q", tc.gender)
		} else {
			assert.Error(t, err, "gender %q", tc.gender)
		}
	}
}

func TestParseSectionRequiresName(t *testing.T) {
	req := httptest.NewRequest("POST", "/section_manage", newForm(url.Values{"name": {"   "}}))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	_, err := ParseSection(req)
	assert.Error(t, err)
}
