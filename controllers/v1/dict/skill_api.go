package dict

import (
	"careerhub-backend/controllers"
	skillprovider "careerhub-backend/lib/dicts/skill"
	"careerhub-backend/middleware"
	apimodels "careerhub-backend/models/api"
	dictapimodels "careerhub-backend/models/api/dict"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type skillDictApiController struct {
	controllers.BaseAPIController
}

func InitSkillDictApiRouters(app *fiber.App) {
	controller := skillDictApiController{}
	app.Route("skill", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Get(":id", controller.get)
		router.Post("", middleware.AdminRequired(), controller.create)
		router.Put(":id", middleware.AdminRequired(), controller.update)
		router.Delete(":id", middleware.AdminRequired(), controller.delete)
	})
}

// @Summary Список
// @Tags Справочник. Скиллы
// @Description Список, поиск по подстроке названия
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   name	query	string	false	"фильтр по названию"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.DictItemView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/dict/skill [get]
func (c *skillDictApiController) list(ctx *fiber.Ctx) error {
	list, err := skillprovider.Instance.List(ctx.Query("name"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка скиллов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Получение по ИД
// @Tags Справочник. Скиллы
// @Description Получение по ИД
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string 	true	"rec ID"
// @Success 200 {object} apimodels.Response{data=dictapimodels.DictItemView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/dict/skill/{id} [get]
func (c *skillDictApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := skillprovider.Instance.Get(id)
	if err != nil {
		if errors.Is(err, skillprovider.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения данных по скиллу")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Создание
// @Tags Справочник. Скиллы
// @Description Создание, только для администратора
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body	body	dictapimodels.DictItemData	true	"request body"
// @Success 201 {object} apimodels.Response{data=dictapimodels.DictItemView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @router /api/v1/dict/skill [post]
func (c *skillDictApiController) create(ctx *fiber.Ctx) error {
	var payload dictapimodels.DictItemData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := skillprovider.Instance.Create(payload)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(resp))
}

// @Summary Изменение
// @Tags Справочник. Скиллы
// @Description Изменение, только для администратора
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string 	true	"rec ID"
// @Param	body	body	dictapimodels.DictItemData	true	"request body"
// @Success 200 {object} apimodels.Response{data=dictapimodels.DictItemView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/dict/skill/{id} [put]
func (c *skillDictApiController) update(ctx *fiber.Ctx) error {
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
	resp, err := skillprovider.Instance.Update(id, payload)
	if err != nil {
		if errors.Is(err, skillprovider.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Удаление
// @Tags Справочник. Скиллы
// @Description Удаление, только для администратора
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string 	true	"rec ID"
// @Success 204
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/dict/skill/{id} [delete]
func (c *skillDictApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = skillprovider.Instance.Delete(id)
	if err != nil {
		if errors.Is(err, skillprovider.ErrNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления скилла")
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
