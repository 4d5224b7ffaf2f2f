package dict

import (
	"careerhub-backend/controllers"
	courseprovider "careerhub-backend/lib/dicts/course"
	"careerhub-backend/middleware"
	apimodels "careerhub-backend/models/api"
	dictapimodels "careerhub-backend/models/api/dict"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type courseDictApiController struct {
	controllers.BaseAPIController
}

func InitCourseDictApiRouters(app *fiber.App) {
	controller := courseDictApiController{}
	app.Route("course", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get(":id", controller.get)
		router.Post("", middleware.AdminRequired(), controller.create)
		router.Put(":id", middleware.AdminRequired(), controller.update)
		router.Delete(":id", middleware.AdminRequired(), controller.delete)
	})
}

// @Summary Список
// @Tags Справочник. Курсы
// @Description Список, поиск по подстроке названия
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   name	query	string	false	"фильтр по названию"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.DictItemView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/dict/course [get]
func (c *courseDictApiController) list(ctx *fiber.Ctx) error {
	list, err := courseprovider.Instance.List(ctx.Query("name"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка курсов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Получение по ИД
// @Tags Справочник. Курсы
// @Description Получение по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string 	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=dictapimodels.DictItemView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/dict/course/{id} [get]
func (c *courseDictApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := courseprovider.Instance.Get(id)
	if err != nil {
		if errors.Is(err, courseprovider.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения данных по курсу")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Создание
// @Tags Справочник. Курсы
// @Description Создание, только для администратора
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body	body	dictapimodels.DictItemData	true	"request body"
// @Success 201 {object} apimodels.Response{data=dictapimodels.DictItemView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @router /api/v1/dict/course [post]
func (c *courseDictApiController) create(ctx *fiber.Ctx) error {
	var payload dictapimodels.DictItemData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := courseprovider.Instance.Create(payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(resp))
}

// @Summary Изменение
// @Tags Справочник. Курсы
// @Description Изменение, только для администратора
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string 	true	"rec ID"
// @Param	body	body	dictapimodels.DictItemData	true	"request body"
// @Success 200 {object} apimodels.Response{data=dictapimodels.DictItemView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/dict/course/{id} [put]
func (c *courseDictApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload dictapimodels.DictItemData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := courseprovider.Instance.Update(id, payload)
	if err != nil {
		if errors.Is(err, courseprovider.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Удаление
// @Tags Справочник. Курсы
// @Description Удаление, только для администратора
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string 	true	"rec ID"
// @Success 204
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/dict/course/{id} [delete]
func (c *courseDictApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = courseprovider.Instance.Delete(id)
	if err != nil {
		if errors.Is(err, courseprovider.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления курса")
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
