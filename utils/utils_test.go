package utils

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestPlainText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text unchanged", input: "How do goroutines work?", want: "How do goroutines work?"},
		{name: "surrounding space trimmed", input: "  padded  ", want: "padded"},
		{name: "tags stripped", input: "<b>bold</b> move", want: "bold move"},
		{name: "script removed", input: "<script>alert(1)</script>", want: ""},
		{name: "quotes and ampersands preserved", input: `Tom & Jerry's "show"`, want: `Tom & Jerry's "show"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainText(tt.input))
		})
	}
}

func TestHasText(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "Is a<b && b>c valid?", want: true},
		{input: "Vec<String> vs &str", want: true},
		{input: "  padded  ", want: true},
		{input: "&lt;", want: true},
		{input: "", want: false},
		{input: " \t\n ", want: false},
		{input: "<p></p>", want: false},
		{input: "<script>alert(1)</script>", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, HasText(tt.input))
		})
	}
}

func TestRespondEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	Created(ctx, gin.H{"question": gin.H{"id": 7}})

	require.Equal(t, http.StatusCreated, w.Code)
	var body struct {
		Code    int                       `json:"code"`
		Message string                    `json:"message"`
		Data    map[string]map[string]int `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 0, body.Code)
	assert.Equal(t, 7, body.Data["question"]["id"])
}

func TestErrorOmitsData(t *testing.T) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)

	Error(ctx, http.StatusNotFound, 40410, "question not found")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"code":40410,"message":"question not found"}`, w.Body.String())
}

func TestRecoveryWithZap(t *testing.T) {
	r := gin.New()
	r.Use(RecoveryWithZap(zap.NewNop(), true))
	r.GET("/boom", func(ctx *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"code":50000,"message":"internal server error"}`, w.Body.String())
}

func TestServerServeShutsDownAndRunsHooks(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	srv := NewServer(ln.Addr().String(), handler, time.Second, time.Second, time.Second)

	hookRan := make(chan struct{})
	srv.OnShutdown(func(ctx context.Context) error {
		close(hookRan)
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String())
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
	<-hookRan
}

func TestServerServeReportsHookError(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := NewServer(ln.Addr().String(), http.NotFoundHandler(), 0, 0, time.Second)
	hookErr := errors.New("close failed")
	srv.OnShutdown(func(context.Context) error { return hookErr })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = srv.Serve(ctx, ln)
	assert.ErrorIs(t, err, hookErr)
}
