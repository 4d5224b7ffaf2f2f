package pdfexport

import (
	"bytes"
	"fmt"

	dictapimodels "careerhub-backend/models/api/dict"
	studentapimodels "careerhub-backend/models/api/student"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

// GenerateStudentCard собирает pdf карточку студента.
func GenerateStudentCard(student studentapimodels.StudentDetailView) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateStudentCard panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "static/font/")
	pdf.AddPage()
	pdf.AddUTF8Font("Arial", "", "Arial.ttf")
	pdf.AddUTF8Font("Arial", "B", "Arial Bold.ttf")
	pdf.SetFont("Arial", "B", 16)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.CellFormat(0, 10, student.LastName+" "+student.FirstName, "", 1, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.Ln(4)

	writeRow(pdf, "Почта", student.Email)
	writeRow(pdf, "Телеграм", student.Telegram)
	writeRow(pdf, "Телефон", student.PhoneNumber)
	writeRow(pdf, "Пол", student.Sex)
	if student.Age != 0 {
		writeRow(pdf, "Возраст", fmt.Sprintf("%d", student.Age))
	}
	if student.Location != nil {
		writeRow(pdf, "Локация", student.Location.Name)
	}
	if student.Specialization != nil {
		writeRow(pdf, "Специализация", student.Specialization.Name)
	}
	if student.EducationLevel != nil {
		writeRow(pdf, "Грейд", student.EducationLevel.Name)
	}
	if student.Course != nil {
		writeRow(pdf, "Курс", student.Course.Name)
	}
	writeRow(pdf, "Портфолио", student.Portfolio)
	writeList(pdf, "Скиллы", dictNames(student.Skills))
	writeList(pdf, "График работы", dictNames(student.Schedules))

	if student.Experience != "" {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 12)
		pdf.CellFormat(0, 8, "Опыт", "", 1, "L", false, 0, "")
		pdf.SetFont("Arial", "", 12)
		pdf.MultiCell(0, 6, student.Experience, "", "L", false)
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeRow(pdf *fpdf.Fpdf, name, value string) {
	if value == "" {
		return
	}
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(50, 8, name, "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
}

func writeList(pdf *fpdf.Fpdf, name string, values []string) {
	if len(values) == 0 {
		return
	}
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(50, 8, name, "", 0, "L", false, 0, "")
	pdf.SetFont("Arial", "", 12)
	for idx, value := range values {
		if idx > 0 {
			pdf.CellFormat(50, 8, "", "", 0, "L", false, 0, "")
		}
		pdf.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
	}
}

func dictNames(items []dictapimodels.DictItemView) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names
}
