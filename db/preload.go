package db

import (
	"careerhub-backend/config"
	educationlevelstore "careerhub-backend/lib/dicts/education-level/store"
	schedulestore "careerhub-backend/lib/dicts/schedule/store"
	usersstore "careerhub-backend/lib/users/store"
	authutils "careerhub-backend/lib/utils/auth-utils"
	dbmodels "careerhub-backend/models/db"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

func InitPreload() {
	addAdmin()
	fillEducationLevels()
	fillSchedules()
}

func addAdmin() {
	if config.Conf.Admin.Email == "" {
		log.Warn("администратор не добавлен, отсутвует настройка ADMIN_EMAIL")
		return
	}
	userStore := usersstore.NewInstance(DB)
	existedRec, err := userStore.FindByEmail(config.Conf.Admin.Email)
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора")
		return
	}
	if existedRec != nil {
		return
	}
	rec := dbmodels.User{
		Email:     config.Conf.Admin.Email,
		Password:  authutils.GetMD5Hash(config.Conf.Admin.Password),
		FirstName: "Администратор",
		IsAdmin:   true,
		IsActive:  true,
	}
	_, err = userStore.Create(rec)
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора")
	}
}

func fillEducationLevels() {
	store := educationlevelstore.NewInstance(DB)
	list, err := store.List("")
	if err != nil {
		log.WithError(err).Error("ошибка предзаполнения грейдов")
		return
	}
	if len(list) > 0 {
		return
	}
	for _, name := range []string{"Intern", "Junior", "Middle", "Senior"} {
		rec := dbmodels.EducationLevel{
			BaseModel: dbmodels.BaseModel{ID: uuid.New().String()},
			Name:      name,
		}
		if err := store.Add(rec, true); err != nil {
			log.WithError(err).WithField("name", name).Error("ошибка предзаполнения грейдов")
			return
		}
	}
	log.Info("грейды добавлены")
}

func fillSchedules() {
	store := schedulestore.NewInstance(DB)
	list, err := store.List("")
	if err != nil {
		log.WithError(err).Error("ошибка предзаполнения графиков работы")
		return
	}
	if len(list) > 0 {
		return
	}
	for _, name := range []string{"Полный день", "Сменный график", "Гибкий график", "Удаленная работа"} {
		rec := dbmodels.Schedule{
			BaseModel: dbmodels.BaseModel{ID: uuid.New().String()},
			Name:      name,
		}
		if err := store.Add(rec, true); err != nil {
			log.WithError(err).WithField("name", name).Error("ошибка предзаполнения графиков работы")
			return
		}
	}
	log.Info("графики работы добавлены")
}
