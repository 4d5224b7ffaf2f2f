package gpthandler

import (
	"errors"
	"fmt"

	"careerhub-backend/config"
	yagptclient "careerhub-backend/lib/gpt/yagpt-client"
	gptmodels "careerhub-backend/models/api/gpt"

	log "github.com/sirupsen/logrus"
)

type Provider interface {
	GenerateVacancyDescription(text string) (resp gptmodels.GenVacancyDescResponse, err error)
}

type impl struct{}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

func (i impl) GenerateVacancyDescription(text string) (resp gptmodels.GenVacancyDescResponse, err error) {
	promt := config.Conf.YandexGPT.Promt
	if promt == "" {
		log.Warn("инструкция для YandexGPT не должна быть пустой")
		return resp, errors.New("инструкция для YandexGPT не должна быть пустой")
	}
	resp.Description, err = yagptclient.
		NewClient(config.Conf.YandexGPT.IAMToken, config.Conf.YandexGPT.CatalogID).
		GenerateByPromtAndText(promt, fmt.Sprintf("Сгенерируй описание для вакансии имея эти вводные данные: %s", text))
	if err != nil {
		log.
			WithError(err).
			Error("ошибка генерации описания через YandexGPT")
		return resp, err
	}
	return resp, nil
}
