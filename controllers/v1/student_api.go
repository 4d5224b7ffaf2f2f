package apiv1

import (
	"careerhub-backend/controllers"
	pdfexport "careerhub-backend/lib/export/pdf"
	studenthandler "careerhub-backend/lib/student"
	"careerhub-backend/middleware"
	apimodels "careerhub-backend/models/api"
	studentapimodels "careerhub-backend/models/api/student"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type studentApiController struct {
	controllers.BaseAPIController
}

func InitStudentApiRouters(app *fiber.App) {
	controller := studentApiController{}
	app.Route("students", func(router fiber.Router) {
		router.Use(middleware.AuthorizationRequired())
		router.Get("", controller.list)
		router.Get(":id", controller.get)
		router.Get(":id/pdf", controller.exportPdf)
		router.Post("", middleware.AdminRequired(), controller.create)
		router.Put(":id", middleware.AdminRequired(), controller.update)
		router.Patch(":id", middleware.AdminRequired(), controller.update)
		router.Delete(":id", middleware.AdminRequired(), controller.delete)
	})
}

// @Summary Список студентов
// @Tags Студенты
// @Description Список студентов с фильтрами и пагинацией
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   search			query	string	false	"поиск по ФИО и почте"
// @Param   location		query	string	false	"фильтр по локации"
// @Param   education_level	query	string	false	"фильтр по грейду"
// @Param   schedule		query	string	false	"фильтр по графику работы"
// @Param   page	query	int	false	"Страница"
// @Param   limit	query	int	false	"Записей на странице"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]studentapimodels.StudentView}
// @Failure 400 {object} apimodels.Response
// @router /api/v1/students [get]
func (c *studentApiController) list(ctx *fiber.Ctx) error {
	var filter studentapimodels.StudentFilter
	if err := c.QueryParser(ctx, &filter); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := studenthandler.Instance.List(filter)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения списка студентов")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Карточка студента
// @Tags Студенты
// @Description Полные данные студента
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string 	true	"student ID"
// @Success 200 {object} apimodels.Response{data=studentapimodels.StudentDetailView}
// @Failure 404 {object} apimodels.Response
// @router /api/v1/students/{id} [get]
func (c *studentApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := studenthandler.Instance.Get(id)
	if err != nil {
		if errors.Is(err, studenthandler.ErrStudentNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения данных студента")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary PDF карточка студента
// @Tags Студенты
// @Description Выгрузка карточки студента в pdf
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string 	true	"student ID"
// @Success 200 {file} binary
// @Failure 404 {object} apimodels.Response
// @router /api/v1/students/{id}/pdf [get]
func (c *studentApiController) exportPdf(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	student, err := studenthandler.Instance.Get(id)
	if err != nil {
		if errors.Is(err, studenthandler.ErrStudentNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения данных студента")
	}
	pdfFile, err := pdfexport.GenerateStudentCard(student)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка формирования pdf карточки студента")
	}
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="student.pdf"`)
	return ctx.Status(fiber.StatusOK).Send(pdfFile)
}

// @Summary Создание студента
// @Tags Студенты
// @Description Создание студента, только для администратора
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body	body	studentapimodels.StudentData	true	"request body"
// @Success 201 {object} apimodels.Response{data=studentapimodels.StudentDetailView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @router /api/v1/students [post]
func (c *studentApiController) create(ctx *fiber.Ctx) error {
	var payload studentapimodels.StudentData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := studenthandler.Instance.Create(payload)
	if err != nil {
		var validationErr apimodels.ValidationError
		if errors.As(err, &validationErr) || errors.Is(err, studenthandler.ErrEmailExists) {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка создания студента")
	}
	return ctx.Status(fiber.StatusCreated).JSON(apimodels.NewResponse(resp))
}

// @Summary Изменение студента
// @Tags Студенты
// @Description Частичное изменение, переданные наборы скиллов и графиков заменяются целиком
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string 	true	"student ID"
// @Param	body	body	studentapimodels.StudentUpdateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=studentapimodels.StudentDetailView}
// @Failure 400 {object} apimodels.Response
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/students/{id} [put]
func (c *studentApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload studentapimodels.StudentUpdateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := studenthandler.Instance.Update(id, payload)
	if err != nil {
		if errors.Is(err, studenthandler.ErrStudentNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		var validationErr apimodels.ValidationError
		if errors.As(err, &validationErr) {
			return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка обновления студента")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Удаление студента
// @Tags Студенты
// @Description Удаление студента, только для администратора
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string 	true	"student ID"
// @Success 204
// @Failure 403 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/students/{id} [delete]
func (c *studentApiController) delete(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = studenthandler.Instance.Delete(id)
	if err != nil {
		if errors.Is(err, studenthandler.ErrStudentNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(err.Error()))
		}
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка удаления студента")
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
