package middleware

import (
	"careerhub-backend/lib/authz"
	apimodels "careerhub-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

func AdminRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		if !authz.AdminOnly(GetActor(ctx)) {
			return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
		}
		return ctx.Next()
	}
}
