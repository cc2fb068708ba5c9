package main

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ServiceKey is the context key type for the authenticated caller name.
type ServiceKey string

const serviceKey ServiceKey = "service"

// jwtSecret verifies the HS256 service tokens internal callers present.
// Set from config at startup; overridden in tests.
var jwtSecret []byte

// authenticate guards an endpoint with service-to-service bearer auth: the
// caller presents an HS256 JWT carrying a "svc" claim naming itself. Policy
// beyond "token is valid" is out of scope here.
func authenticate(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "missing_token")
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
			return jwtSecret, nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil || !token.Valid {
			writeError(w, http.StatusUnauthorized, "invalid_token")
			return
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			writeError(w, http.StatusUnauthorized, "invalid_token_claims")
			return
		}
		svc, ok := claims["svc"].(string)
		if !ok || svc == "" {
			writeError(w, http.StatusUnauthorized, "invalid_service_claim")
			return
		}
		next(w, r.WithContext(context.WithValue(r.Context(), serviceKey, svc)))
	}
}
