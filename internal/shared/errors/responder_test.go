package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var errSoldOut = stderrors.New("sold out")

func serve(t *testing.T, handler gin.HandlerFunc) (*httptest.ResponseRecorder, ProblemDetail) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/thing", handler)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/thing", nil))
	var problem ProblemDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	return rec, problem
}

func TestResponder_ValidationProblemCarriesAllReasons(t *testing.T) {
	responder := NewResponder("https://bites.example")
	rec, problem := serve(t, func(c *gin.Context) {
		responder.Respond(c, NewValidationProblem(
			[]string{"missing_name", "empty_cart"},
			[]string{"customer name is required", "no items in cart"},
		))
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, ContentTypeProblemJSON, rec.Header().Get("Content-Type"))
	require.Equal(t, "https://bites.example/problems/validation-error", problem.Type)
	require.Equal(t, "/thing", problem.Instance)
	require.Equal(t, []any{"missing_name", "empty_cart"}, problem.Extensions["reasons"])
	require.Contains(t, problem.Detail, "customer name is required; no items in cart")
}

func TestChainedResponder_UsesMapperThenFallsBack(t *testing.T) {
	responder := NewChainedResponder("", func(err error) (ProblemDetail, bool) {
		if stderrors.Is(err, errSoldOut) {
			return ErrNotFound.WithDetail(err.Error()), true
		}
		return ProblemDetail{}, false
	})

	rec, problem := serve(t, func(c *gin.Context) { responder.RespondError(c, errSoldOut) })
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "sold out", problem.Detail)

	rec, problem = serve(t, func(c *gin.Context) { responder.RespondError(c, stderrors.New("disk full")) })
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, TypeInternal, problem.Type)
}

func TestResponder_RespondErrorPassesProblemThrough(t *testing.T) {
	responder := NewResponder("")
	rec, problem := serve(t, func(c *gin.Context) {
		responder.RespondError(c, ErrUnauthorized.WithDetail("bad password"))
	})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "bad password", problem.Detail)
}

func TestResponder_Shortcuts(t *testing.T) {
	responder := NewResponder("")

	rec, problem := serve(t, func(c *gin.Context) { responder.NotFound(c, "order", 7) })
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "order with identifier '7' not found", problem.Detail)
	require.Equal(t, "order", problem.Extensions["resourceType"])

	rec, problem = serve(t, func(c *gin.Context) { responder.BadRequest(c, "malformed body") })
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, TypeBadRequest, problem.Type)
	require.Equal(t, "malformed body", problem.Detail)

	rec, problem = serve(t, func(c *gin.Context) { responder.Unauthorized(c, "access denied") })
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, TypeUnauthorized, problem.Type)
	require.Equal(t, "/thing", problem.Instance)
}
