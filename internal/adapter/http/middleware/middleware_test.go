package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wallet-faucet/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRequestID_GeneratesWhenMissing(t *testing.T) {
	var captured string
	router := gin.New()
	router.Use(RequestID())
	router.GET("/test", func(c *gin.Context) {
		captured = c.GetString(response.CtxRequestID)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.NotEmpty(t, captured)
	assert.Equal(t, captured, w.Header().Get(HeaderRequestID))
}

func TestRequestID_PropagatesCallerID(t *testing.T) {
	router := gin.New()
	router.Use(RequestID())
	router.GET("/test", func(c *gin.Context) {
		response.OK(c, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(HeaderRequestID, "req-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "req-123", resp["request_id"])
	assert.Equal(t, "req-123", w.Header().Get(HeaderRequestID))
}

func TestRequestLogger_LogsStatus(t *testing.T) {
	var buf bytes.Buffer
	router := gin.New()
	router.Use(RequestLogger(zerolog.New(&buf)))
	router.GET("/missing", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "/missing", entry["path"])
	assert.Equal(t, float64(404), entry["status"])
}

func TestMaxBodySize(t *testing.T) {
	tests := []struct {
		name       string
		limit      int64
		body       []byte
		hideLength bool
		wantCode   int
	}{
		{name: "allowed", limit: 1024, body: []byte("hello world"), wantCode: http.StatusOK},
		{name: "exact_limit", limit: 5, body: []byte("12345"), wantCode: http.StatusOK},
		{name: "declared_too_large", limit: 16, body: bytes.Repeat([]byte("A"), 100), wantCode: http.StatusRequestEntityTooLarge},
		{name: "streamed_too_large", limit: 16, body: bytes.Repeat([]byte("A"), 100), hideLength: true, wantCode: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(MaxBodySize(tt.limit))
			r.POST("/test", func(c *gin.Context) {
				b, err := io.ReadAll(c.Request.Body)
				if err != nil {
					c.String(http.StatusRequestEntityTooLarge, "too large")
					return
				}
				c.String(http.StatusOK, string(b))
			})

			var body io.Reader = bytes.NewReader(tt.body)
			if tt.hideLength {
				body = io.MultiReader(strings.NewReader(""), bytes.NewReader(tt.body))
			}
			req := httptest.NewRequest(http.MethodPost, "/test", body)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, string(tt.body), w.Body.String())
			}
		})
	}
}

func TestMaxBodySize_NilBody(t *testing.T) {
	r := gin.New()
	r.Use(MaxBodySize(1024))
	r.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRecovery_PanicRecovered(t *testing.T) {
	router := gin.New()
	router.Use(Recovery(zerolog.Nop()))
	router.GET("/panic", func(c *gin.Context) {
		panic("something went wrong")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "SYS_001", resp["error_code"])
}
