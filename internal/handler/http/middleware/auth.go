package middleware

import (
	"net/http"

	"github.com/ethekwini-metro/pts-backend-go/internal/domain/auth"
	"github.com/ethekwini-metro/pts-backend-go/internal/domain/user"
	"github.com/ethekwini-metro/pts-backend-go/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())

			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}

			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}
			tokenType, ok := claims["type"].(string)
			if tokenType != "access" || !ok {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}

// IdentityFromRequest builds the caller identity from the verified token
// claims. The zero identity comes back when no valid token is present;
// services treat that as unauthenticated.
func IdentityFromRequest(r *http.Request) user.Identity {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return user.Identity{}
	}

	userID, _ := claims["user_id"].(string)
	role, _ := claims["role"].(string)

	return user.Identity{
		UserID:        userID,
		Role:          user.Role(role),
		SourceAddress: r.RemoteAddr,
	}
}
