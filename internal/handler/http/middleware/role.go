package middleware

import (
	"net/http"

	"github.com/fieldhr/hrms-backend-go/internal/domain/auth"
	"github.com/fieldhr/hrms-backend-go/internal/domain/user"
	"github.com/fieldhr/hrms-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AdminOnly requires the admin role
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		if role != user.RoleAdmin {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// HROrAdmin requires the hr or admin role
func HROrAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, ok := roleFromContext(r)
		if !ok {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		if role != user.RoleHR && role != user.RoleAdmin {
			response.HandleError(w, user.ErrHRPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func roleFromContext(r *http.Request) (user.Role, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", false
	}
	roleStr, ok := claims["role"].(string)
	if !ok {
		return "", false
	}
	return user.Role(roleStr), true
}

// Identity extracts the requester's user id and role from JWT claims.
func Identity(r *http.Request) (userID string, role user.Role, ok bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return "", "", false
	}
	userID, okID := claims["user_id"].(string)
	roleStr, okRole := claims["role"].(string)
	if !okID || !okRole {
		return "", "", false
	}
	return userID, user.Role(roleStr), true
}
