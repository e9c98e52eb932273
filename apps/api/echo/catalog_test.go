package echoapi

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/chayanin/tcasport/core/student"
)

func Test_catalogApi(t *testing.T) {
	app, _, _ := setup(t)

	get := func(t *testing.T, path string, wantCode int) []string {
		t.Helper()
		req, rec := newRequest(http.MethodGet, path)
		app.ServeHTTP(rec, req)
		checkCode(t, rec, wantCode)
		if wantCode != http.StatusOK {
			return nil
		}
		var got []string
		decodeBody(t, rec, &got)
		return got
	}

	t.Run("faculties keep display order", func(t *testing.T) {
		got := get(t, "/v1/catalog/faculties", http.StatusOK)
		assert.Equal(t, student.Faculties, got)
	})

	t.Run("departments of a faculty", func(t *testing.T) {
		path := "/v1/catalog/faculties/" + url.PathEscape("วิศวกรรมศาสตร์") + "/departments"
		got := get(t, path, http.StatusOK)
		want, _ := student.Departments("วิศวกรรมศาสตร์")
		assert.Equal(t, want, got)
	})

	t.Run("unknown faculty", func(t *testing.T) {
		path := "/v1/catalog/faculties/" + url.PathEscape("คณะลับ") + "/departments"
		get(t, path, http.StatusNotFound)
	})

	t.Run("universities", func(t *testing.T) {
		got := get(t, "/v1/catalog/universities", http.StatusOK)
		assert.Equal(t, student.Universities, got)
	})

	t.Run("genders", func(t *testing.T) {
		got := get(t, "/v1/catalog/genders", http.StatusOK)
		assert.Equal(t, student.Genders, got)
	})
}
