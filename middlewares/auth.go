package middlewares

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func parseBearerToken(ctx *gin.Context) (jwt.MapClaims, error) {
	authHeader := ctx.GetHeader("Authorization")
	if authHeader == "" {
		return nil, fmt.Errorf("missing authorization header")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, fmt.Errorf("malformed authorization header")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// RequireAuth rejects requests without a valid Bearer token and stores
// the claims on the context as "user".
func RequireAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		claims, err := parseBearerToken(ctx)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}
		ctx.Set("user", claims)
		ctx.Next()
	}
}

// OptionalAuth stores claims when a valid Bearer token is present but
// lets anonymous requests through. Cart and checkout work for guests;
// a logged-in shopper just gets the cart attached to their account.
func OptionalAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if claims, err := parseBearerToken(ctx); err == nil {
			ctx.Set("user", claims)
		}
		ctx.Next()
	}
}
