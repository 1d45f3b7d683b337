package middleware

import (
	"net/http"

	"github.com/fieldhr/hrms-backend-go/internal/domain/auth"
	"github.com/fieldhr/hrms-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// AuthRequired rejects requests whose bearer token is missing, invalid,
// or not an access token. Refresh tokens carry type "refresh" and must
// not reach the API surface.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if !isAccessToken(r, token) {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isAccessToken(r *http.Request, token jwt.Token) bool {
	if token == nil {
		return false
	}
	claims, err := token.AsMap(r.Context())
	if err != nil {
		return false
	}
	tokenType, ok := claims["type"].(string)
	return ok && tokenType == "access"
}
