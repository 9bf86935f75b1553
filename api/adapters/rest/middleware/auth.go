package middleware

import (
	"fmt"
	"keyword-index/api/core"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	bearerPrefix = "Bearer "
	tokenIssuer  = "keyword-index"
	// admin tokens only unlock indexing, drop and reference reload
	adminAudience = "keyword-index-admin"
)

// JwtAuthenticator issues HS256 admin tokens and guards the write routes of the gateway.
type JwtAuthenticator struct {
	log           *slog.Logger
	adminUser     string
	adminPassword string
	secret        []byte
	ttl           time.Duration
}

func NewJwtAuthenticator(
	log *slog.Logger, adminUser, adminPassword, jwtSecret string, ttl time.Duration,
) (*JwtAuthenticator, error) {
	if adminUser == "" || jwtSecret == "" {
		return nil, fmt.Errorf("admin user and jwt secret are required: %w", core.ErrBadArguments)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("token ttl %s: %w", ttl, core.ErrBadArguments)
	}
	return &JwtAuthenticator{
		log:           log,
		adminUser:     adminUser,
		adminPassword: adminPassword,
		secret:        []byte(jwtSecret),
		ttl:           ttl,
	}, nil
}

func (a *JwtAuthenticator) CreateToken(name, password string) (string, error) {
	if name != a.adminUser || password != a.adminPassword {
		return "", core.ErrInvalidCredentials
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   a.adminUser,
		Audience:  jwt.ClaimStrings{adminAudience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
	})
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (a *JwtAuthenticator) ValidateToken(tokenString string) error {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(adminAudience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return fmt.Errorf("%v: %w", err, core.ErrInvalidCredentials)
	}
	if claims.Subject != a.adminUser {
		return fmt.Errorf("token subject %q: %w", claims.Subject, core.ErrInvalidCredentials)
	}
	return nil
}

// CheckToken lets a request through only with a valid "Authorization: Bearer" admin token.
func (a *JwtAuthenticator) CheckToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, found := strings.CutPrefix(r.Header.Get("Authorization"), bearerPrefix)
		if !found {
			a.reject(w, r, core.ErrInvalidCredentials)
			return
		}
		if err := a.ValidateToken(token); err != nil {
			a.reject(w, r, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (a *JwtAuthenticator) reject(w http.ResponseWriter, r *http.Request, err error) {
	a.log.Debug("admin request rejected", "method", r.Method, "path", r.URL.Path, "error", err)
	w.Header().Set("WWW-Authenticate", `Bearer realm="`+adminAudience+`"`)
	writeStatus(w, http.StatusUnauthorized)
}
