package misc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/posturelab/posturecheck/internal/auth"
	"github.com/posturelab/posturecheck/internal/middleware"
	"github.com/posturelab/posturecheck/internal/telemetry/tracing"
	"github.com/posturelab/posturecheck/pkg"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=misc

type loginService interface {
	Login(ctx context.Context, credentials auth.Credentials, createdAt time.Time) (string, error)
	Logout(ctx context.Context, token string) error
}

type Handler struct {
	tips        *TipsManager
	authService loginService
	versionInfo string
}

func NewHandler(tips *TipsManager, authService loginService, versionInfo string) *Handler {
	return &Handler{
		tips:        tips,
		authService: authService,
		versionInfo: versionInfo,
	}
}

func (handler *Handler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	pkg.WriteTextResponseOK(w, "I am the Posture Check server, how can I help you?")
}

func (handler *Handler) HandleVersion(w http.ResponseWriter, r *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}

func (handler *Handler) HandleRandomTip(w http.ResponseWriter, r *http.Request) {
	tip := handler.tips.RandomTip()
	b, err := json.Marshal(tip)
	if err != nil {
		log.Errorf("random tip: marshal: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, b, http.StatusOK)
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.login")
	var err error
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var credentials auth.Credentials
	if err = json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Errorf("login: decode request: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	token, err := handler.authService.Login(ctx, credentials, time.Now())
	if err != nil {
		if errors.Is(err, auth.ErrWrongCredentials) {
			log.Tracef("login failed for user %s", credentials.Username)
			http.Error(w, "no can do", http.StatusUnauthorized)
			return
		}
		log.Errorf("login: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.Debugf("user %s logged in", credentials.Username)
	pkg.WriteJSONResponseOK(w, fmt.Sprintf(`{"token":"%s"}`, token))
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.logout")
	var err error
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	token := r.Header.Get(middleware.AuthTokenHeader)
	if token == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if err = handler.authService.Logout(ctx, token); err != nil {
		if errors.Is(err, auth.ErrNotLoggedIn) {
			http.Error(w, "no can do", http.StatusUnauthorized)
			return
		}
		log.Errorf("logout: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}
