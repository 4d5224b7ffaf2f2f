package apiv1

import (
	"fmt"

	"careerhub-backend/controllers"
	studentlisthandler "careerhub-backend/lib/student-list"
	"careerhub-backend/middleware"
	"careerhub-backend/models"
	apimodels "careerhub-backend/models/api"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type studentListApiController struct {
	controllers.BaseAPIController
	kind models.ListKind
}

func InitFavoriteApiRouters(app *fiber.App) {
	initStudentListRouters(app, "favorite", models.ListKindFavorite)
}

func InitCompareApiRouters(app *fiber.App) {
	initStudentListRouters(app, "compare", models.ListKindCompare)
}

func initStudentListRouters(app *fiber.App, route string, kind models.ListKind) {
	controller := studentListApiController{kind: kind}
	app.Route(route, func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.list)
		router.Post(":student_id", controller.add)
		router.Delete(":student_id", controller.remove)
	})
}

// @Summary Список избранного/сравнения
// @Tags Списки студентов
// @Description Студенты в списке пользователя, в порядке добавления
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]studentapimodels.StudentView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/favorite [get]
func (c *studentListApiController) list(ctx *fiber.Ctx) error {
	list, err := studentlisthandler.Instance.List(c.kind, middleware.GetUserID(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, fmt.Sprintf("Ошибка получения списка %s", c.kind.ToHuman()))
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Добавление студента в список
// @Tags Списки студентов
// @Description Добавление студента в избранное или сравнение
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   student_id   		path    string 	true	"student ID"
// @Success 201 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/favorite/{student_id} [post]
func (c *studentListApiController) add(ctx *fiber.Ctx) error {
	studentID, err := c.GetParamID(ctx, "student_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = studentlisthandler.Instance.Add(c.kind, middleware.GetUserID(ctx), studentID)
	if err != nil {
		if errors.Is(err, studentlisthandler.ErrStudentNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		if errors.Is(err, studentlisthandler.ErrAlreadyInList) {
			return ctx.Status(fiber.StatusBadRequest).
				JSON(apimodels.NewError(fmt.Sprintf("Студент уже %s", c.kind.ToPrepositional())))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, fmt.Sprintf("Ошибка добавления студента %s", c.kind.ToAccusative()))
	}
	return ctx.Status(fiber.StatusCreated).
		JSON(apimodels.NewMessage(fmt.Sprintf("Студент добавлен %s", c.kind.ToAccusative())))
}

// @Summary Удаление студента из списка
// @Tags Списки студентов
// @Description Удаление студента из избранного или сравнения
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   student_id   		path    string 	true	"student ID"
// @Success 204
// @Failure 404 {object} apimodels.Response
// @router /api/v1/favorite/{student_id} [delete]
func (c *studentListApiController) remove(ctx *fiber.Ctx) error {
	studentID, err := c.GetParamID(ctx, "student_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = studentlisthandler.Instance.Remove(c.kind, middleware.GetUserID(ctx), studentID)
	if err != nil {
		if errors.Is(err, studentlisthandler.ErrStudentNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		if errors.Is(err, studentlisthandler.ErrNotInList) {
			return ctx.Status(fiber.StatusNotFound).
				JSON(apimodels.NewError(fmt.Sprintf("Студент не найден %s", c.kind.ToPrepositional())))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, fmt.Sprintf("Ошибка удаления студента из списка %s", c.kind.ToHuman()))
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
