package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"
	"time"

	"newsroom-cms/internal/handler/http/respond"
	authservice "newsroom-cms/internal/service/auth"

	"github.com/golang-jwt/jwt/v5"
)

const tokenTTL = time.Hour

type tokenRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}

// TokenHandler exchanges principal credentials for a signed bearer token.
// The token carries the principal ID and role so request handling never has
// to hit the principal store again before expiry.
func TokenHandler(svc *authservice.AuthService, logger *slog.Logger) http.Handler {
	secret := []byte(os.Getenv("JWT_SECRET"))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		var req tokenRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			RecordAuthRequest("", "bad_request")
			respond.SafeError(w, http.StatusBadRequest, err)
			return
		}

		principal, err := svc.Authenticate(r.Context(), authservice.Credentials{
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			RecordAuthRequest("", "denied")
			logger.WarnContext(r.Context(), "authentication failed",
				slog.String("remote_addr", r.RemoteAddr),
			)
			respond.Domain(w, err)
			return
		}

		now := time.Now()
		claims := jwt.MapClaims{
			"sub":  principal.ID,
			"role": string(principal.Role),
			"iat":  now.Unix(),
			"exp":  now.Add(tokenTTL).Unix(),
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
		if err != nil {
			RecordAuthRequest(string(principal.Role), "error")
			respond.SafeError(w, http.StatusInternalServerError, err)
			return
		}

		RecordAuthRequest(string(principal.Role), "granted")
		RecordAuthDuration(string(principal.Role), time.Since(start))
		logger.InfoContext(r.Context(), "token issued",
			slog.String("principal_id", principal.ID),
			slog.String("role", string(principal.Role)),
		)
		respond.JSON(w, http.StatusOK, tokenResponse{
			Token:     signed,
			ExpiresIn: int(tokenTTL.Seconds()),
		})
	})
}
