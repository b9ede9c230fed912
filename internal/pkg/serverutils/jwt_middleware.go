// FILE: internal/pkg/serverutils/jwt_middleware.go
package serverutils

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// JwtMiddleware resolves the trusted caller identity. Identity issuance
// itself is an external collaborator; all we do here is verify the token
// and stash the user_id claim for controllers.
func JwtMiddleware(ctx *fiber.Ctx) error {
	authHeader := ctx.Get("Authorization")
	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse("Missing token"))
	}

	userId, ok := parseUserId(authHeader[7:])
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse("Invalid token"))
	}

	ctx.Locals("user_id", userId)
	return ctx.Next()
}

// WsJwtMiddleware authenticates websocket upgrades. Browsers cannot set an
// Authorization header on a WebSocket handshake, so the token rides in the
// query string.
func WsJwtMiddleware(ctx *fiber.Ctx) error {
	tokenStr := ctx.Query("token")
	if tokenStr == "" {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse("Missing token"))
	}

	userId, ok := parseUserId(tokenStr)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(ErrorResponse("Invalid token"))
	}

	ctx.Locals("user_id", userId)
	return ctx.Next()
}

func parseUserId(tokenStr string) (string, bool) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}

	userId, ok := claims["user_id"].(string)
	if !ok || userId == "" {
		return "", false
	}
	return userId, true
}
