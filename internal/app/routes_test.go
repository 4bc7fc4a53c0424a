package app

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestTimestampHandler(t *testing.T) {
	t.Parallel()

	router := gin.New()
	router.GET("/timestamp", timestampHandler)

	before := time.Now().UnixMilli()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/timestamp", nil)
	router.ServeHTTP(w, req)

	after := time.Now().UnixMilli()

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/plain")

	ms, err := strconv.ParseInt(w.Body.String(), 10, 64)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, ms, before)
	assert.LessOrEqual(t, ms, after)
}

func TestHomeHandler(t *testing.T) {
	t.Parallel()

	router := gin.New()
	router.GET("/", homeHandler)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/auth/steam/login")
}
