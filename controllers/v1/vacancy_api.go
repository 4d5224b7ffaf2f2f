package apiv1

import (
	"careerhub-backend/controllers"
	"careerhub-backend/lib/authz"
	vacancyhandler "careerhub-backend/lib/vacancy"
	"careerhub-backend/middleware"
	apimodels "careerhub-backend/models/api"
	vacancyapimodels "careerhub-backend/models/api/vacancy"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type vacancyApiController struct {
	controllers.BaseAPIController
}

func InitVacancyApiRouters(app *fiber.App) {
	controller := vacancyApiController{}
	app.Route("vacancies", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.list)
		router.Get(":id", controller.get)
		router.Post("", controller.create)
		router.Put(":id", controller.update)
		router.Patch(":id", controller.update)
		router.Delete(":id", controller.delete)
	})
}

// @Summary Список вакансий
// @Tags Вакансии
// @Description Список вакансий с фильтрами и пагинацией
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   search		query	string	false	"поиск по названию"
// @Param   author		query	string	false	"фильтр по автору"
// @Param   location	query	string	false	"фильтр по локации"
// @Param   page	query	int	false	"Страница"
// @Param   limit	query	int	false	"Записей на странице"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]vacancyapimodels.VacancyView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/vacancies [get]
func (c *vacancyApiController) list(ctx *fiber.Ctx) error {
	var filter vacancyapimodels.VacancyFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := vacancyhandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка вакансий")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Карточка вакансии
// @Tags Вакансии
// @Description Полные данные вакансии
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string 	true	"vacancy ID"
// @Success 200 {object} apimodels.Response{data=vacancyapimodels.VacancyView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/vacancies/{id} [get]
func (c *vacancyApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := vacancyhandler.Instance.Get(id)
	if err != nil {
		if errors.Is(err, vacancyhandler.ErrVacancyNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения данных вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Создание вакансии
// @Tags Вакансии
// @Description Создание вакансии со связями за одну операцию
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body	body	vacancyapimodels.VacancyData	true	"request body"
// @Success 201 {object} apimodels.Response{data=vacancyapimodels.VacancyView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/vacancies [post]
func (c *vacancyApiController) create(ctx *fiber.Ctx) error {
	var payload vacancyapimodels.VacancyData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := vacancyhandler.Instance.Create(middleware.GetUserID(ctx), payload)
	if err != nil {
		var validationErr apimodels.ValidationError
		if errors.As(err, &validationErr) {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания вакансии")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(resp))
}

// @Summary Изменение вакансии
// @Tags Вакансии
// @Description Частичное изменение, переданные наборы связей заменяются целиком. Доступно автору и администратору
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string 	true	"vacancy ID"
// @Param	body	body	vacancyapimodels.VacancyUpdateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=vacancyapimodels.VacancyView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/vacancies/{id} [put]
func (c *vacancyApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if allowed, res := c.checkAuthor(ctx, id); !allowed {
		return res
	}
	var payload vacancyapimodels.VacancyUpdateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := vacancyhandler.Instance.Update(id, payload)
	if err != nil {
		if errors.Is(err, vacancyhandler.ErrVacancyNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		var validationErr apimodels.ValidationError
		if errors.As(err, &validationErr) {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления вакансии")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Удаление вакансии
// @Tags Вакансии
// @Description Удаление вакансии, доступно автору и администратору
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string 	true	"vacancy ID"
// @Success 204
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/vacancies/{id} [delete]
func (c *vacancyApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if allowed, res := c.checkAuthor(ctx, id); !allowed {
		return res
	}
	err = vacancyhandler.Instance.Delete(id)
	if err != nil {
		if errors.Is(err, vacancyhandler.ErrVacancyNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления вакансии")
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}

// checkAuthor пропускает автора вакансии и администратора, для остальных
// пишет отказ в ответ. Отсутствующая вакансия дает 404.
func (c *vacancyApiController) checkAuthor(ctx *fiber.Ctx, vacancyID string) (allowed bool, res error) {
	authorID, found, err := vacancyhandler.Instance.GetAuthorID(vacancyID)
	if err != nil {
		return false, c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка проверки автора вакансии")
	}
	if !found {
		return false, ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(vacancyhandler.ErrVacancyNotFound.Error()))
	}
	if !authz.OwnerOrAdmin(middleware.GetActor(ctx), authorID) {
		return false, ctx.Status(fiber.StatusForbidden).
			JSON(apimodels.NewError("Только автор и администратор могут редактировать этот объект."))
	}
	return true, nil
}
