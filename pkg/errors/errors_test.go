package errors_test

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arnav-motiramani/daily-doodles/pkg/errors"
	"github.com/arnav-motiramani/daily-doodles/pkg/i18n"
)

func TestNewDefaults(t *testing.T) {
	err := errors.New("Logic.Op", i18n.ERROR_INTERNAL, stderrors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, err.StatusCode())
	assert.Equal(t, i18n.ERROR_INTERNAL, err.Key())
	assert.Contains(t, err.Error(), "Logic.Op")
	assert.Contains(t, err.Error(), "boom")
}

func TestCode(t *testing.T) {
	err := errors.New("Logic.Op", i18n.ERROR_NOTFOUND, nil).Code(http.StatusNotFound)
	assert.Equal(t, http.StatusNotFound, err.StatusCode())
}

func TestTraceKeepsKeyAndCode(t *testing.T) {
	inner := errors.New("Logic.Inner", i18n.ERROR_PERMISSION_DENIED, nil).Code(http.StatusForbidden)
	wrapped := errors.Trace("Handler.Outer", inner)

	var e *errors.Error
	assert.True(t, stderrors.As(wrapped, &e))
	assert.Equal(t, http.StatusForbidden, e.StatusCode())
	assert.Equal(t, i18n.ERROR_PERMISSION_DENIED, e.Key())
	assert.Contains(t, e.Error(), "Handler.Outer")
}
