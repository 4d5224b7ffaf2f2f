package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	TagStatus  = "status"
	TagLatency = "latency"
	TagMethod  = "method"
	TagPath    = "path"
	TagBody    = "body"
	TagResBody = "res_body"
	RequestID  = "request_id"
)

type timing struct {
	start time.Time
	end   time.Time
}

// FuncTag вычисляет значение поля лога по контексту запроса
type FuncTag func(c *fiber.Ctx, t *timing) interface{}

var funcTags = map[string]FuncTag{
	TagStatus: func(c *fiber.Ctx, t *timing) interface{} {
		return c.Response().StatusCode()
	},
	TagLatency: func(c *fiber.Ctx, t *timing) interface{} {
		return t.end.Sub(t.start).String()
	},
	TagMethod: func(c *fiber.Ctx, t *timing) interface{} {
		return c.Method()
	},
	TagPath: func(c *fiber.Ctx, t *timing) interface{} {
		return c.Path()
	},
	TagBody: func(c *fiber.Ctx, t *timing) interface{} {
		return string(c.Body())
	},
	TagResBody: func(c *fiber.Ctx, t *timing) interface{} {
		return string(c.Response().Body())
	},
	RequestID: func(c *fiber.Ctx, t *timing) interface{} {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		return id
	},
}

func selectFuncTags(tags []string) map[string]FuncTag {
	result := make(map[string]FuncTag, len(tags))
	for _, tag := range tags {
		if ft, exist := funcTags[tag]; exist {
			result[tag] = ft
		}
	}
	return result
}
