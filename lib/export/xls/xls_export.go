package xlsexport

import (
	"bytes"
	"fmt"
	"strings"

	dictapimodels "careerhub-backend/models/api/dict"
	matchingapimodels "careerhub-backend/models/api/matching"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportMatchingList(list []matchingapimodels.StudentMatchView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var matchingHeaders = []string{"ФИО", "Почта", "Телеграм", "Локация", "График работы", "Скиллы", "Совпало скиллов", "Процент совпадения"}

func (i impl) ExportMatchingList(list []matchingapimodels.StudentMatchView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("ошибка закрытия файла")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, matchingHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "ошибка формирования заголовка в xlsx")
	}
	if len(list) != 0 {
		_, err = writeMatchingData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "ошибка формирования таблицы с данными в xlsx")
		}
	}
	f.SetSheetName(sheet, "Подбор")
	return f.WriteToBuffer()
}

func writeMatchingData(f *excelize.File, sheet string, list []matchingapimodels.StudentMatchView, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(matchingHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		// "ФИО"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.LastName+" "+item.FirstName); err != nil {
			return row, err
		}

		// "Почта"
		col++
		if err := writeColumn(f, sheet, col, row, item.Email); err != nil {
			return row, err
		}

		// "Телеграм"
		col++
		if err := writeColumn(f, sheet, col, row, item.Telegram); err != nil {
			return row, err
		}

		// "Локация"
		col++
		if item.Location != nil {
			if err := writeColumn(f, sheet, col, row, item.Location.Name); err != nil {
				return row, err
			}
		}

		// "График работы"
		col++
		if err := writeColumn(f, sheet, col, row, joinNames(item.Schedules)); err != nil {
			return row, err
		}

		// "Скиллы"
		col++
		if err := writeColumn(f, sheet, col, row, joinNames(item.Skills)); err != nil {
			return row, err
		}

		// "Совпало скиллов"
		col++
		if err := writeColumn(f, sheet, col, row, item.Score); err != nil {
			return row, err
		}

		// "Процент совпадения"
		col++
		if err := writeColumn(f, sheet, col, row, fmt.Sprintf("%d%%", item.MatchingPercentage)); err != nil {
			return row, err
		}
	}
	return row, nil
}

func joinNames(items []dictapimodels.DictItemView) string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return strings.Join(names, ", ")
}
