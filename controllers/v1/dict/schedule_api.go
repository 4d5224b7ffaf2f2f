package dict

import (
	"careerhub-backend/controllers"
	scheduleprovider "careerhub-backend/lib/dicts/schedule"
	"careerhub-backend/middleware"
	apimodels "careerhub-backend/models/api"
	dictapimodels "careerhub-backend/models/api/dict"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type scheduleDictApiController struct {
	controllers.BaseAPIController
}

func InitScheduleDictApiRouters(app *fiber.App) {
	controller := scheduleDictApiController{}
	app.Route("schedule", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get(":id", controller.get)
		router.Post("", middleware.AdminRequired(), controller.create)
		router.Put(":id", middleware.AdminRequired(), controller.update)
		router.Delete(":id", middleware.AdminRequired(), controller.delete)
	})
}

// @Summary Список
// @Tags Справочник. Графики работы
// @Description Список, поиск по подстроке названия
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   name	query	string	false	"фильтр по названию"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.DictItemView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/dict/schedule [get]
func (c *scheduleDictApiController) list(ctx *fiber.Ctx) error {
	list, err := scheduleprovider.Instance.List(ctx.Query("name"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка графиков работы")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Получение по ИД
// @Tags Справочник. Графики работы
// @Description Получение по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string 	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=dictapimodels.DictItemView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/dict/schedule/{id} [get]
func (c *scheduleDictApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := scheduleprovider.Instance.Get(id)
	if err != nil {
		if errors.Is(err, scheduleprovider.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения данных по графику работы")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Создание
// @Tags Справочник. Графики работы
// @Description Создание, только для администратора
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body	body	dictapimodels.DictItemData	true	"request body"
// @Success 201 {object} apimodels.Response{data=dictapimodels.DictItemView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @router /api/v1/dict/schedule [post]
func (c *scheduleDictApiController) create(ctx *fiber.Ctx) error {
	var payload dictapimodels.DictItemData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := scheduleprovider.Instance.Create(payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(resp))
}

// @Summary Изменение
// @Tags Справочник. Графики работы
// @Description Изменение, только для администратора
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string 	true	"rec ID"
// @Param	body	body	dictapimodels.DictItemData	true	"request body"
// @Success 200 {object} apimodels.Response{data=dictapimodels.DictItemView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/dict/schedule/{id} [put]
func (c *scheduleDictApiController) update(ctx *fiber.Ctx) error {
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
	resp, err := scheduleprovider.Instance.Update(id, payload)
	if err != nil {
		if errors.Is(err, scheduleprovider.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Удаление
// @Tags Справочник. Графики работы
// @Description Удаление, только для администратора
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string 	true	"rec ID"
// @Success 204
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/dict/schedule/{id} [delete]
func (c *scheduleDictApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = scheduleprovider.Instance.Delete(id)
	if err != nil {
		if errors.Is(err, scheduleprovider.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления графика работы")
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
