package ui

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
)

func TestClass(t *testing.T) {
	merged := Class("px-2 py-2", "px-4")
	assert.Contains(t, merged, "px-4")
	assert.Contains(t, merged, "py-2")
	assert.NotContains(t, merged, "px-2")
}

func TestRender_Error(t *testing.T) {
	failing := templ.ComponentFunc(func(context.Context, io.Writer) error { return errors.New("boom") })

	rec := httptest.NewRecorder()
	Render(rec, httptest.NewRequest(http.MethodGet, "/", nil), failing)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRenderStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	RenderStatus(rec, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusNotFound, templ.Raw("<p>gone</p>"))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "<p>gone</p>", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
}
