package misc

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/posturelab/posturecheck/internal/auth"
	"github.com/posturelab/posturecheck/internal/middleware"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testHandler(t *testing.T, authService loginService) *Handler {
	t.Helper()

	path := filepath.Join(t.TempDir(), "tips.csv")
	require.NoError(t, os.WriteFile(path, []byte(`tip,category
only tip,testing
`), 0o600))

	tm, err := NewTipsManager(path)
	require.NoError(t, err)

	return NewHandler(tm, authService, "v1.2.3")
}

func testMiscRouter(handler *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", handler.HandleRoot).Methods("GET")
	r.HandleFunc("/version", handler.HandleVersion).Methods("GET")
	r.HandleFunc("/tip/random", handler.HandleRandomTip).Methods("GET")
	r.HandleFunc("/a/login", handler.HandleLogin).Methods("POST")
	r.HandleFunc("/a/logout", handler.HandleLogout).Methods("GET")
	return r
}

func TestHandleRoot(t *testing.T) {
	r := testMiscRouter(testHandler(t, nil))

	req, err := http.NewRequest("GET", "/", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "I am the Posture Check server, how can I help you?", rr.Body.String())
}

func TestHandleVersion(t *testing.T) {
	r := testMiscRouter(testHandler(t, nil))

	req, err := http.NewRequest("GET", "/version", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "v1.2.3", rr.Body.String())
}

func TestHandleRandomTip(t *testing.T) {
	r := testMiscRouter(testHandler(t, nil))

	req, err := http.NewRequest("GET", "/tip/random", nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var tip Tip
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &tip))
	assert.Equal(t, "only tip", tip.Text)
}

func TestHandleLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authServiceMock := NewMockloginService(ctrl)
	authServiceMock.
		EXPECT().
		Login(gomock.Any(), auth.Credentials{Username: "admin", Password: "s3cret"}, gomock.Any()).
		Return("new-session-token", nil)

	r := testMiscRouter(testHandler(t, authServiceMock))

	body := bytes.NewBufferString(`{"username":"admin","password":"s3cret"}`)
	req, err := http.NewRequest("POST", "/a/login", body)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, `{"token":"new-session-token"}`, rr.Body.String())
}

func TestHandleLogin_wrongCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authServiceMock := NewMockloginService(ctrl)
	authServiceMock.
		EXPECT().
		Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", auth.ErrWrongCredentials)

	r := testMiscRouter(testHandler(t, authServiceMock))

	body := bytes.NewBufferString(`{"username":"admin","password":"wrong"}`)
	req, err := http.NewRequest("POST", "/a/login", body)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestHandleLogin_serviceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authServiceMock := NewMockloginService(ctrl)
	authServiceMock.
		EXPECT().
		Login(gomock.Any(), gomock.Any(), gomock.Any()).
		Return("", errors.New("redis down"))

	r := testMiscRouter(testHandler(t, authServiceMock))

	body := bytes.NewBufferString(`{"username":"admin","password":"s3cret"}`)
	req, err := http.NewRequest("POST", "/a/login", body)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestHandleLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authServiceMock := NewMockloginService(ctrl)
	authServiceMock.
		EXPECT().
		Logout(gomock.Any(), "active-token").
		Return(nil)

	r := testMiscRouter(testHandler(t, authServiceMock))

	req, err := http.NewRequest("GET", "/a/logout", nil)
	require.NoError(t, err)
	req.Header.Set(middleware.AuthTokenHeader, "active-token")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "logged-out", rr.Body.String())
}

func TestHandleLogout_noToken(t *testing.T) {
	r := testMiscRouter(testHandler(t, nil))

	req, err := http.NewRequest("GET", "/a/logout", nil)
	require.NoError(t, err)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestHandleLogout_unknownToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	authServiceMock := NewMockloginService(ctrl)
	authServiceMock.
		EXPECT().
		Logout(gomock.Any(), "stale-token").
		Return(auth.ErrNotLoggedIn)

	r := testMiscRouter(testHandler(t, authServiceMock))

	req, err := http.NewRequest("GET", "/a/logout", nil)
	require.NoError(t, err)
	req.Header.Set(middleware.AuthTokenHeader, "stale-token")

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
