package middleware

import (
	"careerhub-backend/lib/authz"
	matchinghandler "careerhub-backend/lib/matching"
	vacancyhandler "careerhub-backend/lib/vacancy"
	apimodels "careerhub-backend/models/api"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// VacancyAuthorRequired допускает к подбору только автора вакансии и
// администратора. Авторство проверяется раньше существования вакансии.
func VacancyAuthorRequired() fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		vacancyID := ctx.Params("vacancy_id")
		authorID, found, err := vacancyhandler.Instance.GetAuthorID(vacancyID)
		if err != nil {
			log.
				WithField("vacancy_id", vacancyID).
				WithError(err).
				Error("ошибка проверки автора вакансии")
			return ctx.Status(fiber.StatusInternalServerError).JSON(apimodels.NewError(err.Error()))
		}
		if !authz.VacancyAuthorForMatching(GetActor(ctx), authorID) {
			return ctx.Status(fiber.StatusForbidden).
				JSON(apimodels.NewError("Вы не автор этой вакансии или её не существует. Доступ запрещен."))
		}
		if !found {
			return ctx.Status(fiber.StatusNotFound).
				JSON(apimodels.NewError(matchinghandler.ErrVacancyNotFound.Error()))
		}
		return ctx.Next()
	}
}
