package notification

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func markReadRequest(t *testing.T, repoErr error) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := new(mockNotificationRepo)
	repo.On("MarkRead", mock.Anything, int64(7), int64(3)).Return(repoErr)

	handler := NewHandler(NewService(repo, new(mockLeadSource), zap.NewNop().Sugar()))

	r := gin.New()
	r.POST("/notifications/:id/read", func(c *gin.Context) {
		c.Set("user_id", int64(7))
		handler.MarkRead(c)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/notifications/3/read", nil)
	r.ServeHTTP(w, req)
	return w
}

func TestMarkRead_NotFoundIs404(t *testing.T) {
	w := markReadRequest(t, ErrNotificationNotFound)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMarkRead_RepoFailureIs500(t *testing.T) {
	w := markReadRequest(t, errors.New("connection reset"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestMarkRead_SuccessIs200(t *testing.T) {
	w := markReadRequest(t, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
