package fiberlog

import "github.com/sirupsen/logrus"

// Config настраивает access-лог api.
type Config struct {
	// Logger пишет записи; nil означает стандартный logrus.
	Logger *logrus.Logger
	// Tags перечисляет поля записи, неизвестные теги игнорируются.
	Tags []string
}

var ConfigDefault = Config{
	Tags: []string{
		TagStatus,
		TagLatency,
		TagMethod,
		TagPath,
		RequestID,
	},
}

func configDefault(config ...Config) Config {
	if len(config) == 0 {
		return ConfigDefault
	}
	cfg := config[0]
	if len(cfg.Tags) == 0 {
		cfg.Tags = ConfigDefault.Tags
	}
	return cfg
}
