package apiv1

import (
	"careerhub-backend/controllers"
	matchinghandler "careerhub-backend/lib/matching"
	"careerhub-backend/middleware"
	apimodels "careerhub-backend/models/api"
	matchingapimodels "careerhub-backend/models/api/matching"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type matchingApiController struct {
	controllers.BaseAPIController
}

func InitMatchingApiRouters(app *fiber.App) {
	controller := matchingApiController{}
	app.Route("matching", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Use("/:vacancy_id", middleware.VacancyAuthorRequired())
		router.Get(":vacancy_id", controller.list)
		router.Get(":vacancy_id/export", controller.export)
	})
}

// @Summary Подбор студентов по вакансии
// @Tags Подбор
// @Description Студенты с пересечением скиллов вакансии, по убыванию числа совпадений. Доступно автору вакансии и администратору
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   vacancy_id   		path    string 	true	"vacancy ID"
// @Param   location		query	string	false	"фильтр по локации"
// @Param   education_level	query	string	false	"фильтр по грейду"
// @Param   schedule		query	string	false	"фильтр по графику работы"
// @Success 200 {object} apimodels.Response{data=[]matchingapimodels.StudentMatchView}
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/matching/{vacancy_id} [get]
func (c *matchingApiController) list(ctx *fiber.Ctx) error {
	vacancyID, err := c.GetParamID(ctx, "vacancy_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var filter matchingapimodels.MatchingFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := matchinghandler.Instance.List(vacancyID, filter)
	if err != nil {
		if errors.Is(err, matchinghandler.ErrVacancyNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка подбора студентов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Выгрузка подбора в xlsx
// @Tags Подбор
// @Description Выгрузка подбора по вакансии в xlsx. Доступно автору вакансии и администратору
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   vacancy_id   		path    string 	true	"vacancy ID"
// @Param   location		query	string	false	"фильтр по локации"
// @Param   education_level	query	string	false	"фильтр по грейду"
// @Param   schedule		query	string	false	"фильтр по графику работы"
// @Success 200 {file} binary
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/matching/{vacancy_id}/export [get]
func (c *matchingApiController) export(ctx *fiber.Ctx) error {
	vacancyID, err := c.GetParamID(ctx, "vacancy_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var filter matchingapimodels.MatchingFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	buf, err := matchinghandler.Instance.Export(vacancyID, filter)
	if err != nil {
		if errors.Is(err, matchinghandler.ErrVacancyNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка выгрузки подбора")
	}
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="matching.xlsx"`)
	return ctx.Status(fiber.StatusOK).Send(buf.Bytes())
}
