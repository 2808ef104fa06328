package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// Auth failure messages returned to the tablet
const (
	MsgTokenMissing = "Token mancante"
	MsgTokenExpired = "Token scaduto"
	MsgTokenInvalid = "Token non valido"
)

// Claims is the payload of a tablet bearer token
type Claims struct {
	UserID interface{} `json:"user_id"`
	jwt.RegisteredClaims
}

// IssueToken signs a token for userID valid for ttl
func IssueToken(secret, userID string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("secret key is not set")
	}
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

// ParseToken verifies a bearer token and returns the caller id. The returned
// error is one of the Msg* messages.
func ParseToken(secret, raw string) (string, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithJSONNumber(), jwt.WithExpirationRequired())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", errors.New(MsgTokenExpired)
		}
		return "", errors.New(MsgTokenInvalid)
	}

	var userID string
	switch v := claims.UserID.(type) {
	case string:
		userID = v
	case json.Number:
		userID = v.String()
	}
	if userID == "" {
		return "", errors.New(MsgTokenInvalid)
	}
	return userID, nil
}

// AuthMiddleware only lets requests with a valid bearer token through and
// exposes the caller id to the wrapped handler through the request context
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")

			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				unauthorized(w, r, MsgTokenMissing)
				return
			}

			userID, err := ParseToken(secret, strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				unauthorized(w, r, err.Error())
				return
			}
			zap.S().Debugw("user authenticated", "userId", userID)
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

func unauthorized(w http.ResponseWriter, r *http.Request, message string) {
	zap.S().Warnw("unauthorized", "url", r.URL.String(), "reason", message)
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(fmt.Sprintf(`{"error": %q}`, message)))
}

// LogAllowList restricts log ingestion to the game server address. A "*"
// entry in either list matches anything.
func LogAllowList(ips, ports []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")

			host, port, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil || !contains(ips, host) || !contains(ports, port) {
				zap.S().Warnw("log ingestion refused", "remoteAddr", r.RemoteAddr, "url", r.URL.String())
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"error": "Accesso non autorizzato"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == "*" || item == v {
			return true
		}
	}
	return false
}

// JSONMiddleware marks every response as JSON
func JSONMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// CORS allows the tablet front-end to call the API from the browser
func CORS(origins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})
	return c.Handler
}
