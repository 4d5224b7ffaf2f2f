package apiv1

import (
	"careerhub-backend/controllers"
	"careerhub-backend/lib/authz"
	usershandler "careerhub-backend/lib/users"
	"careerhub-backend/middleware"
	apimodels "careerhub-backend/models/api"
	userapimodels "careerhub-backend/models/api/users"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type userApiController struct {
	controllers.BaseAPIController
}

func InitUserApiRouters(app *fiber.App) {
	controller := userApiController{}
	app.Route("users", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", middleware.AdminRequired(), controller.list)
		router.Get(":id", controller.get)
		router.Put(":id", controller.update)
		router.Delete(":id", middleware.AdminRequired(), controller.delete)
	})
}

// @Summary Список пользователей
// @Tags Пользователи
// @Description Список пользователей, только для администратора
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   page	query	int	false	"Страница"
// @Param   limit	query	int	false	"Записей на странице"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]userapimodels.UserView}
// @Failure 403 {object} apimodels.Response
// @router /api/v1/users [get]
func (c *userApiController) list(ctx *fiber.Ctx) error {
	var pagination apimodels.Pagination
	if err := c.QueryParser(ctx, &pagination); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	page, limit := pagination.GetPage()
	list, rowCount, err := usershandler.Instance.GetList(page, limit)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка пользователей")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Получение пользователя
// @Tags Пользователи
// @Description Данные пользователя, доступно владельцу и администратору
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string 	true	"user ID"
// @Success 200 {object} apimodels.Response{data=userapimodels.UserView}
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/users/{id} [get]
func (c *userApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if !authz.OwnerOrAdmin(middleware.GetActor(ctx), id) {
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
	}
	resp, err := usershandler.Instance.GetByID(id)
	if err != nil {
		if errors.Is(err, usershandler.ErrUserNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения данных пользователя")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Изменение пользователя
// @Tags Пользователи
// @Description Изменение пользователя, доступно владельцу и администратору
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string 	true	"user ID"
// @Param	body				body	userapimodels.UserUpdateRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=userapimodels.UserView}
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/users/{id} [put]
func (c *userApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if !authz.OwnerOrAdmin(middleware.GetActor(ctx), id) {
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
	}
	var payload userapimodels.UserUpdateRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = usershandler.Instance.Update(id, payload)
	if err != nil {
		if errors.Is(err, usershandler.ErrUserNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления пользователя")
	}
	resp, err := usershandler.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения данных пользователя")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Удаление пользователя
// @Tags Пользователи
// @Description Удаление пользователя вместе с его вакансиями, только для администратора
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string 	true	"user ID"
// @Success 204
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/users/{id} [delete]
func (c *userApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = usershandler.Instance.Delete(id)
	if err != nil {
		if errors.Is(err, usershandler.ErrUserNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления пользователя")
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
