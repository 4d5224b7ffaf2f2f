package usershandler

import (
	"fmt"

	"careerhub-backend/db"
	emailverify "careerhub-backend/lib/email-verify"
	"careerhub-backend/lib/smtp"
	usersstore "careerhub-backend/lib/users/store"
	authutils "careerhub-backend/lib/utils/auth-utils"
	authapimodels "careerhub-backend/models/api/auth"
	userapimodels "careerhub-backend/models/api/users"
	dbmodels "careerhub-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	ErrUserNotFound = errors.New("пользователь не найден")
	ErrEmailExists  = errors.New("пользователь с такой почтой уже существует")
)

type Provider interface {
	Register(request authapimodels.RegisterRequest) (userID string, err error)
	Update(userID string, request userapimodels.UserUpdateRequest) error
	Delete(userID string) error
	GetByID(userID string) (user userapimodels.UserView, err error)
	GetList(page, limit int) (usersList []userapimodels.UserView, rowCount int64, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		userStore: usersstore.NewInstance(db.DB),
	}
}

type impl struct {
	userStore usersstore.Provider
}

func (i impl) Register(request authapimodels.RegisterRequest) (userID string, err error) {
	userExist, err := i.userStore.ExistByEmail(request.Email)
	if err != nil {
		log.
			WithField("email", request.Email).
			WithError(err).
			Error("ошибка проверки уже существующего пользователя")
		return "", err
	}
	if userExist {
		return "", ErrEmailExists
	}
	rec := dbmodels.User{
		Email:       request.Email,
		Password:    authutils.GetMD5Hash(request.Password),
		FirstName:   request.FirstName,
		LastName:    request.LastName,
		Telegram:    request.Telegram,
		PhoneNumber: request.PhoneNumber,
		Company:     request.Company,
		IsActive:    !smtp.Instance.IsConfigured(),
	}
	userID, err = i.userStore.Create(rec)
	if err != nil {
		log.
			WithField("email", request.Email).
			WithError(err).
			Error("ошибка создания пользователя")
		return "", err
	}
	if smtp.Instance.IsConfigured() {
		go func(email string) {
			err := emailverify.Instance.SendVerifyCode(email)
			if err != nil {
				log.WithField("email", email).WithError(err).Error("ошибка отправки письма активации")
			}
		}(request.Email)
	}
	return userID, nil
}

func (i impl) Update(userID string, request userapimodels.UserUpdateRequest) error {
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("ошибка поиска пользователя")
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	updMap := map[string]interface{}{}
	if request.FirstName != nil {
		updMap["first_name"] = *request.FirstName
	}
	if request.LastName != nil {
		updMap["last_name"] = *request.LastName
	}
	if request.Telegram != nil {
		updMap["telegram"] = *request.Telegram
	}
	if request.PhoneNumber != nil {
		updMap["phone_number"] = *request.PhoneNumber
	}
	if request.Company != nil {
		updMap["company"] = *request.Company
	}
	if request.AvatarURL != nil {
		updMap["avatar_url"] = *request.AvatarURL
	}
	if len(updMap) == 0 {
		return nil
	}
	err = i.userStore.Update(userID, updMap)
	if err != nil {
		log.
			WithField("request", fmt.Sprintf("%+v", request)).
			WithError(err).
			Error("ошибка обновления пользователя")
		return err
	}
	return nil
}

func (i impl) Delete(userID string) error {
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	err = i.userStore.Delete(userID)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("ошибка удаления пользователя")
		return err
	}
	return nil
}

func (i impl) GetByID(userID string) (user userapimodels.UserView, err error) {
	userDB, err := i.userStore.GetByID(userID)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("ошибка поиска пользователя")
		return userapimodels.UserView{}, err
	}
	if userDB == nil {
		return userapimodels.UserView{}, ErrUserNotFound
	}
	return userapimodels.UserConvert(*userDB), nil
}

func (i impl) GetList(page, limit int) (usersList []userapimodels.UserView, rowCount int64, err error) {
	list, rowCount, err := i.userStore.GetList(page, limit)
	if err != nil {
		log.WithError(err).Error("ошибка получения списка пользователей")
		return nil, 0, err
	}
	for _, user := range list {
		usersList = append(usersList, userapimodels.UserConvert(user))
	}
	return usersList, rowCount, nil
}
