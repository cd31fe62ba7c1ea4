package http

import (
	"context"
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"advising-backend/internal/domain/catalog"
	"advising-backend/internal/testutil/catalogmock"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callCatalog(repo *catalogmock.Repo, path string) *httptest.ResponseRecorder {
	e := echo.New()
	h := NewCatalogHandler(repo, zerolog.Nop())
	e.GET("/catalog/courses", h.ListCourses)
	e.GET("/catalog/prereqs", h.ListPrereqs)

	req := httptest.NewRequest(stdhttp.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestListCourses_EmptyCatalogIsEmptyArray(t *testing.T) {
	repo := &catalogmock.Repo{
		ListCoursesFn: func(ctx context.Context) ([]catalog.Course, error) { return nil, nil },
	}
	rec := callCatalog(repo, "/catalog/courses")
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestListCourses_StorageFault(t *testing.T) {
	repo := &catalogmock.Repo{
		ListCoursesFn: func(ctx context.Context) ([]catalog.Course, error) {
			return nil, errors.New("down")
		},
	}
	rec := callCatalog(repo, "/catalog/courses")
	assert.Equal(t, stdhttp.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to fetch courses")
}

func TestListPrereqs_ReturnsRows(t *testing.T) {
	repo := &catalogmock.Repo{
		ListPrereqsFn: func(ctx context.Context) ([]catalog.Prereq, error) {
			return []catalog.Prereq{{CourseID: 11, PreCourseCode: "MA011", PreCourseName: "College Algebra"}}, nil
		},
	}
	rec := callCatalog(repo, "/catalog/prereqs")
	require.Equal(t, stdhttp.StatusOK, rec.Code)
	var rows []catalog.Prereq
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, "MA011", rows[0].PreCourseCode)
}
