package reqcheck_test

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/reqcheck"
)

// todoHandlers mimics a handler struct whose methods get decorated at
// route-registration time.
type todoHandlers struct {
	created int
}

func (h *todoHandlers) Create(c echo.Context) error {
	h.created++
	return c.NoContent(http.StatusCreated)
}

func TestValidateBodyNeverRunsMethodOnInvalidBody(t *testing.T) {
	h := &todoHandlers{}
	requireTodo := reqcheck.ValidateBody(failSchema("title", "title is required", nil))

	c, rec := newContext(t, http.MethodPost, "/todos", `{}`)
	require.NoError(t, requireTodo(h.Create)(c))

	assert.Equal(t, 0, h.created, "decorated method body must not execute")
	assert.Equal(t, reqcheck.DefaultErrorCode, rec.Code)
	assert.Equal(t, "title is required", rec.Body.String())
}

func TestValidateBodyRunsMethodOnValidBody(t *testing.T) {
	h := &todoHandlers{}
	requireTodo := reqcheck.ValidateBody(passSchema(nil))

	c, rec := newContext(t, http.MethodPost, "/todos", `{"title":"x"}`)
	require.NoError(t, requireTodo(h.Create)(c))

	assert.Equal(t, 1, h.created)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

// A decorator is reusable: one Decorator value wraps any number of handlers
// independently.
func TestDecoratorIsReusableAcrossHandlers(t *testing.T) {
	decorate := reqcheck.ValidateParams(failSchema("id", "id must be numeric", nil))

	first := 0
	second := 0
	wrappedFirst := decorate(countingHandler(&first))
	wrappedSecond := decorate(countingHandler(&second))

	c1, rec1 := newContext(t, http.MethodGet, "/todos/x", "")
	c1.SetParamNames("id")
	c1.SetParamValues("x")
	require.NoError(t, wrappedFirst(c1))

	c2, rec2 := newContext(t, http.MethodGet, "/todos/y", "")
	c2.SetParamNames("id")
	c2.SetParamValues("y")
	require.NoError(t, wrappedSecond(c2))

	assert.Equal(t, 0, first)
	assert.Equal(t, 0, second)
	assert.Equal(t, "id must be numeric", rec1.Body.String())
	assert.Equal(t, "id must be numeric", rec2.Body.String())
}

func TestValidateQueryMatchesCheckQueryBehavior(t *testing.T) {
	invocations := 0
	decorated := reqcheck.ValidateQuery(passSchema(nil))(countingHandler(&invocations))

	c, rec := newContext(t, http.MethodGet, "/todos?page=1", "")
	require.NoError(t, decorated(c))

	assert.Equal(t, 1, invocations)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestValidateWithOptionsPassesThem(t *testing.T) {
	decorated := reqcheck.Validate(
		reqcheck.CheckSpec{Body: failSchema("title", "title is required", nil)},
		reqcheck.WithErrorCode(http.StatusBadRequest),
	)(countingHandler(new(int)))

	c, rec := newContext(t, http.MethodPost, "/todos", `{}`)
	require.NoError(t, decorated(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
