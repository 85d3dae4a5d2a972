package middleware

import (
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/galaxybooks/bookstore-backend/pkg/token"
)

// Client type values carried on the X-Client-Type header.
const (
	ClientWeb     = "Web"
	ClientIOS     = "iOS"
	ClientAndroid = "Android"
	// ClientInternal marks gateway-to-backend traffic. Backends trust it
	// and do not re-challenge for end-user claims.
	ClientInternal = "Internal"
)

// ClaimsContextKey is the gin context key under which validated token
// claims are stored for downstream handlers.
const ClaimsContextKey = "token_claims"

// AuthConfig parameterizes the authentication middleware per deployment.
// The same middleware serves the backends and both gateways; only the
// accepted client types differ.
type AuthConfig struct {
	// AllowedClientTypes is the set of public client types this
	// deployment serves.
	AllowedClientTypes []string

	// TrustInternal accepts "Internal" as a pass-through trust signal
	// from a gateway, skipping token validation. Only backends set this.
	TrustInternal bool
}

// Auth returns the authentication middleware: it enforces the
// X-Client-Type contract, then decodes and validates the bearer token.
// Requests failing either gate never reach a handler. Health endpoints
// are registered outside the guarded route group and bypass this
// middleware entirely.
func Auth(cfg AuthConfig, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientType := c.GetHeader("X-Client-Type")
		if clientType == "" {
			c.AbortWithStatusJSON(400, gin.H{"message": "Missing X-Client-Type header"})
			return
		}

		if cfg.TrustInternal && clientType == ClientInternal {
			// Gateway traffic: the edge already validated the end user.
			c.Next()
			return
		}

		if !contains(cfg.AllowedClientTypes, clientType) {
			c.AbortWithStatusJSON(400, gin.H{
				"message": fmt.Sprintf("Invalid X-Client-Type. Must be one of %v", cfg.AllowedClientTypes),
			})
			return
		}

		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(401, gin.H{"message": "Missing or invalid Authorization header"})
			return
		}

		raw := strings.TrimPrefix(authHeader, "Bearer ")

		// A decode failure leaves claims nil; Validate turns that into
		// the same "Invalid token format" outcome a structurally broken
		// payload gets.
		claims, _ := token.Decode(raw)

		ok, reason := token.Validate(claims, time.Now())
		if !ok {
			logger.Debug("Rejected bearer token",
				zap.String("reason", reason),
				zap.String("client_type", clientType),
			)
			c.AbortWithStatusJSON(401, gin.H{"message": reason})
			return
		}

		c.Set(ClaimsContextKey, claims)
		c.Next()
	}
}

func contains(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
