package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
)

// New возвращает access-лог middleware. OPTIONS запросы не логируются,
// ответы со статусом 300+ пишутся как warning.
func New(config ...Config) fiber.Handler {
	cfg := configDefault(config...)
	ftm := selectFuncTags(cfg.Tags)
	return func(c *fiber.Ctx) error {
		t := timing{start: time.Now()}
		err := c.Next()
		t.end = time.Now()
		if c.Method() == fiber.MethodOptions {
			return err
		}

		fields := collectFields(ftm, c, &t)
		if cfg.Logger == nil {
			log.WithFields(fields).Info("запрос api")
			return err
		}
		entry := cfg.Logger.WithFields(fields)
		if c.Response().StatusCode() >= 300 {
			entry.Warn("запрос api")
		} else {
			entry.Info("запрос api")
		}
		return err
	}
}

// collectFields пропускает пустые строковые значения, чтобы не писать
// пустые поля в JSON
func collectFields(ftm map[string]FuncTag, c *fiber.Ctx, t *timing) log.Fields {
	fields := make(log.Fields, len(ftm))
	for tag, ft := range ftm {
		value := ft(c, t)
		if strValue, ok := value.(string); ok {
			if strValue != "" {
				fields[tag] = strValue
			}
			continue
		}
		fields[tag] = value
	}
	return fields
}
