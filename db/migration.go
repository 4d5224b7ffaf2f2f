package db

import (
	dbmodels "careerhub-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := setupJoinTables(); err != nil {
		return err
	}
	for _, target := range []struct {
		name  string
		model interface{}
	}{
		{"User", &dbmodels.User{}},
		{"EmailVerify", &dbmodels.EmailVerify{}},
		{"Skill", &dbmodels.Skill{}},
		{"EducationLevel", &dbmodels.EducationLevel{}},
		{"Schedule", &dbmodels.Schedule{}},
		{"Specialization", &dbmodels.Specialization{}},
		{"Location", &dbmodels.Location{}},
		{"Course", &dbmodels.Course{}},
		{"Student", &dbmodels.Student{}},
		{"StudentSkill", &dbmodels.StudentSkill{}},
		{"StudentSchedule", &dbmodels.StudentSchedule{}},
		{"Vacancy", &dbmodels.Vacancy{}},
		{"VacancySkill", &dbmodels.VacancySkill{}},
		{"VacancyEducationLevel", &dbmodels.VacancyEducationLevel{}},
		{"VacancySchedule", &dbmodels.VacancySchedule{}},
		{"VacancySpecialization", &dbmodels.VacancySpecialization{}},
		{"FavoriteStudent", &dbmodels.FavoriteStudent{}},
		{"CompareStudent", &dbmodels.CompareStudent{}},
	} {
		if err := DB.AutoMigrate(target.model); err != nil {
			return errors.Wrapf(err, "ошибка создания структуры %s", target.name)
		}
	}
	log.Info("Миграция прошла успешно")
	return nil
}

// связи многие-ко-многим ведутся через явные модели с составным ключом
func setupJoinTables() error {
	joins := []struct {
		model interface{}
		field string
		join  interface{}
	}{
		{&dbmodels.Student{}, "Skills", &dbmodels.StudentSkill{}},
		{&dbmodels.Student{}, "Schedules", &dbmodels.StudentSchedule{}},
		{&dbmodels.Vacancy{}, "RequiredSkills", &dbmodels.VacancySkill{}},
		{&dbmodels.Vacancy{}, "RequiredEducationLevels", &dbmodels.VacancyEducationLevel{}},
		{&dbmodels.Vacancy{}, "Schedules", &dbmodels.VacancySchedule{}},
		{&dbmodels.Vacancy{}, "Specializations", &dbmodels.VacancySpecialization{}},
	}
	for _, j := range joins {
		if err := DB.SetupJoinTable(j.model, j.field, j.join); err != nil {
			return errors.Wrap(err, "ошибка настройки таблицы связей")
		}
	}
	return nil
}
