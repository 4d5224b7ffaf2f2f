package initializers

import (
	"careerhub-backend/config"
	"careerhub-backend/fiberlog"
	authhandler "careerhub-backend/lib/auth"
	courseprovider "careerhub-backend/lib/dicts/course"
	educationlevelprovider "careerhub-backend/lib/dicts/education-level"
	locationprovider "careerhub-backend/lib/dicts/location"
	scheduleprovider "careerhub-backend/lib/dicts/schedule"
	skillprovider "careerhub-backend/lib/dicts/skill"
	specializationprovider "careerhub-backend/lib/dicts/specialization"
	emailverify "careerhub-backend/lib/email-verify"
	xlsexport "careerhub-backend/lib/export/xls"
	gpthandler "careerhub-backend/lib/gpt"
	matchinghandler "careerhub-backend/lib/matching"
	studenthandler "careerhub-backend/lib/student"
	studentlisthandler "careerhub-backend/lib/student-list"
	usershandler "careerhub-backend/lib/users"
	vacancyhandler "careerhub-backend/lib/vacancy"
)

var LoggerConfig *fiberlog.Config

func InitAllServices() {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitSmtp()
	emailverify.Instance = emailverify.NewInstance(config.Conf.Smtp.EmailSendVerification)
	usershandler.NewHandler()
	authhandler.NewHandler()
	skillprovider.NewHandler()
	educationlevelprovider.NewHandler()
	scheduleprovider.NewHandler()
	specializationprovider.NewHandler()
	locationprovider.NewHandler()
	courseprovider.NewHandler()
	studenthandler.NewHandler()
	vacancyhandler.NewHandler()
	matchinghandler.NewHandler()
	studentlisthandler.NewHandler()
	xlsexport.NewHandler()
	gpthandler.NewHandler()
}
