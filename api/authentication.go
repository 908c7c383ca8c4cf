package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/keej24/visita-bohol-system-sub001/models"
	"github.com/keej24/visita-bohol-system-sub001/utils"
)

type claims struct {
	Role      string `json:"role"`
	DioceseId string `json:"diocese_id"`
	jwt.RegisteredClaims
}

// Authentication validates the bearer token and stores the actor's
// credentials in the request context.
type Authentication struct {
	signingSecret []byte
}

func NewAuthentication(signingSecret []byte) Authentication {
	return Authentication{signingSecret: signingSecret}
}

func parseAuthorizationBearerHeader(header http.Header) (string, error) {
	authorization := header.Get("Authorization")
	if authorization == "" {
		return "", fmt.Errorf("missing Authorization header: %w", models.UnAuthorizedError)
	}
	token, found := strings.CutPrefix(authorization, "Bearer ")
	if !found {
		return "", fmt.Errorf("malformed Authorization header: %w", models.UnAuthorizedError)
	}
	return token, nil
}

func (a Authentication) validateToken(tokenString string) (models.Credentials, error) {
	var tokenClaims claims
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return a.signingSecret, nil
		})
	if err != nil || !token.Valid {
		return models.Credentials{}, fmt.Errorf("invalid token: %w", models.UnAuthorizedError)
	}

	role, err := models.RoleFrom(tokenClaims.Role)
	if err != nil {
		return models.Credentials{}, fmt.Errorf("invalid role in token: %w", models.UnAuthorizedError)
	}
	return models.Credentials{
		ActorId:   tokenClaims.Subject,
		Role:      role,
		DioceseId: tokenClaims.DioceseId,
	}, nil
}

func (a Authentication) Middleware(c *gin.Context) {
	tokenString, err := parseAuthorizationBearerHeader(c.Request.Header)
	if presentError(c.Request.Context(), c, err) {
		return
	}
	creds, err := a.validateToken(tokenString)
	if presentError(c.Request.Context(), c, err) {
		return
	}

	ctx := utils.StoreCredentialsInContext(c.Request.Context(), creds)
	logger := utils.LoggerFromContext(ctx).With(
		slog.String("actor_id", creds.ActorId),
		slog.String("role", string(creds.Role)),
	)
	ctx = utils.StoreLoggerInContext(ctx, logger)
	c.Request = c.Request.WithContext(ctx)
	c.Next()
}

// EncodeToken issues a signed token for the given credentials.
func (a Authentication) EncodeToken(creds models.Credentials, expiresAt time.Time) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role:      string(creds.Role),
		DioceseId: creds.DioceseId,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   creds.ActorId,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})
	return token.SignedString(a.signingSecret)
}
