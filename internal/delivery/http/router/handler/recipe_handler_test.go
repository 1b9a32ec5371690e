package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tastebook/internal/domain/entity"
	mockusecase "tastebook/internal/mocks/usecase"
	"tastebook/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPatchContext(e *echo.Echo, id uuid.UUID, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPatch, "/recipes/"+id.String(), strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/recipes/:id")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	return c, rec
}

func TestRecipeHandler_PatchRecipe_EmptyBodyIsBadRequest(t *testing.T) {
	uc := mockusecase.NewMockRecipeUsecase(t)
	h := NewRecipeHandler(uc)
	c, rec := newPatchContext(echo.New(), uuid.New(), "")

	err := h.PatchRecipe(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
	uc.AssertNotCalled(t, "PatchRecipe", mock.Anything, mock.Anything)
}

func TestRecipeHandler_PatchRecipe_PathIDOverridesBody(t *testing.T) {
	uc := mockusecase.NewMockRecipeUsecase(t)
	h := NewRecipeHandler(uc)
	id := uuid.New()
	c, rec := newPatchContext(echo.New(), id, `{"id":"`+uuid.New().String()+`","name":"goulash"}`)

	uc.EXPECT().PatchRecipe(mock.Anything, mock.MatchedBy(func(patch *usecase.RecipePatch) bool {
		return patch.ID == id && patch.Name != nil && *patch.Name == "goulash"
	})).Return(&entity.Recipe{ID: id, Name: "goulash"}, nil)

	err := h.PatchRecipe(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecipeHandler_PatchRecipe_MalformedIDIsBadRequest(t *testing.T) {
	uc := mockusecase.NewMockRecipeUsecase(t)
	h := NewRecipeHandler(uc)
	e := echo.New()

	req := httptest.NewRequest(http.MethodPatch, "/recipes/not-a-uuid", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/recipes/:id")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	err := h.PatchRecipe(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	uc.AssertNotCalled(t, "PatchRecipe", mock.Anything, mock.Anything)
}
