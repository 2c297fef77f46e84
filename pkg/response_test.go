package pkg

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteResponse(t *testing.T) {
	w := httptest.NewRecorder()
	WriteResponse(w, ContentType.JSON, `{"msg":"ok"}`, http.StatusCreated)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, ContentType.JSON, resp.Header.Get("Content-Type"))
	assert.Equal(t, `{"msg":"ok"}`, w.Body.String())
}

func TestWriteTextResponseOK(t *testing.T) {
	w := httptest.NewRecorder()
	WriteTextResponseOK(w, "all good")

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, ContentType.Text, resp.Header.Get("Content-Type"))
	assert.Equal(t, "all good", w.Body.String())
}

func TestWriteJSONResponseOK(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSONResponseOK(w, `{"ok":true}`)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, ContentType.JSON, resp.Header.Get("Content-Type"))
	assert.Equal(t, `{"ok":true}`, w.Body.String())
}

func TestWriteResponseBytes_noContentType(t *testing.T) {
	w := httptest.NewRecorder()
	WriteResponseBytes(w, "", []byte("raw"), http.StatusAccepted)

	resp := w.Result()
	defer resp.Body.Close()

	require.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Empty(t, resp.Header.Get("Content-Type"))
	assert.Equal(t, "raw", w.Body.String())
}
