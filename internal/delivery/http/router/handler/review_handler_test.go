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

func newReviewPatchContext(e *echo.Echo, id uuid.UUID, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPatch, "/reviews/"+id.String(), strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/reviews/:id")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	return c, rec
}

func TestReviewHandler_UpdateReview_EmptyBodyIsBadRequest(t *testing.T) {
	uc := mockusecase.NewMockReviewUsecase(t)
	h := NewReviewHandler(uc)
	c, rec := newReviewPatchContext(echo.New(), uuid.New(), "")

	err := h.UpdateReview(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
	uc.AssertNotCalled(t, "UpdateReview", mock.Anything, mock.Anything)
}

func TestReviewHandler_UpdateReview_PathIDOverridesBody(t *testing.T) {
	uc := mockusecase.NewMockReviewUsecase(t)
	h := NewReviewHandler(uc)
	id := uuid.New()
	c, rec := newReviewPatchContext(echo.New(), id, `{"id":"`+uuid.New().String()+`","rating":9}`)

	uc.EXPECT().UpdateReview(mock.Anything, mock.MatchedBy(func(patch *usecase.ReviewPatch) bool {
		return patch.ID == id && patch.Rating != nil && *patch.Rating == 9
	})).Return(&entity.Review{ID: id, Rating: 9}, nil)

	err := h.UpdateReview(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
