package middleware

import (
	"careerhub-backend/lib/authz"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

func getClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok {
		return jwt.MapClaims{}
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return jwt.MapClaims{}
	}
	return claims
}

func GetUserID(ctx *fiber.Ctx) string {
	userID, _ := getClaims(ctx)["sub"].(string)
	return userID
}

func GetUserName(ctx *fiber.Ctx) string {
	name, _ := getClaims(ctx)["name"].(string)
	return name
}

func IsAdmin(ctx *fiber.Ctx) bool {
	isAdmin, _ := getClaims(ctx)["admin"].(bool)
	return isAdmin
}

// GetActor собирает субъекта запроса из JWT клеймов.
func GetActor(ctx *fiber.Ctx) authz.Actor {
	return authz.Actor{
		ID:      GetUserID(ctx),
		IsAdmin: IsAdmin(ctx),
	}
}
