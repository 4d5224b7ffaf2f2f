package authhandler

import (
	"careerhub-backend/config"
	"careerhub-backend/db"
	emailverify "careerhub-backend/lib/email-verify"
	usersstore "careerhub-backend/lib/users/store"
	authutils "careerhub-backend/lib/utils/auth-utils"
	authapimodels "careerhub-backend/models/api/auth"
	userapimodels "careerhub-backend/models/api/users"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Login(email, password string) (response authapimodels.JWTResponse, err error)
	RefreshToken(refreshToken string) (response authapimodels.JWTResponse, err error)
	Activate(code string) error
	Me(userID string) (user userapimodels.UserView, err error)
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

func (i impl) Login(email, password string) (response authapimodels.JWTResponse, err error) {
	logger := log.WithField("email", email)
	user, err := i.userStore.FindByEmail(email)
	if err != nil {
		logger.
			WithError(err).
			Error("ошибка поиска пользователя по почте")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		logger.Debug("пользователь с такой почтой не найден")
		return authapimodels.JWTResponse{}, errors.New("пользователь с такой почтой не найден")
	}
	if authutils.GetMD5Hash(password) != user.Password {
		logger.Debug("пользователь не прошел проверку пароля")
		return authapimodels.JWTResponse{}, errors.New("пользователь не прошел проверку пароля")
	}
	if !user.IsActive {
		logger.Debug("аккаунт пользователя не активирован")
		return authapimodels.JWTResponse{}, errors.New("аккаунт не активирован, подтвердите почту")
	}
	return i.issueTokens(user.ID, user.GetFullName(), user.IsAdmin)
}

func (i impl) RefreshToken(refreshToken string) (response authapimodels.JWTResponse, err error) {
	token, err := jwt.Parse(refreshToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("неожиданный метод подписи токена")
		}
		return []byte(config.Conf.Auth.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return authapimodels.JWTResponse{}, errors.New("невалидный refresh token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return authapimodels.JWTResponse{}, errors.New("невалидный refresh token")
	}
	userID, _ := claims["sub"].(string)
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("ошибка поиска пользователя")
		return authapimodels.JWTResponse{}, err
	}
	if user == nil {
		return authapimodels.JWTResponse{}, errors.New("пользователь не найден")
	}
	if !user.IsActive {
		return authapimodels.JWTResponse{}, errors.New("аккаунт не активирован, подтвердите почту")
	}
	return i.issueTokens(user.ID, user.GetFullName(), user.IsAdmin)
}

func (i impl) Activate(code string) error {
	return emailverify.Instance.VerifyCode(code)
}

func (i impl) Me(userID string) (user userapimodels.UserView, err error) {
	userDB, err := i.userStore.GetByID(userID)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("ошибка поиска пользователя")
		return userapimodels.UserView{}, err
	}
	if userDB == nil {
		return userapimodels.UserView{}, errors.New("пользователь не найден")
	}
	return userapimodels.UserConvert(*userDB), nil
}

func (i impl) issueTokens(userID, name string, isAdmin bool) (response authapimodels.JWTResponse, err error) {
	logger := log.WithField("user_id", userID)
	token, err := authutils.GetToken(userID, name, isAdmin)
	if err != nil {
		logger.WithError(err).Error("ошибка генерации JWT")
		return authapimodels.JWTResponse{}, err
	}
	refresh, err := authutils.GetRefreshToken(userID, name)
	if err != nil {
		logger.WithError(err).Error("ошибка генерации refresh JWT")
		return authapimodels.JWTResponse{}, err
	}
	return authapimodels.JWTResponse{
		Token:        token,
		RefreshToken: refresh,
	}, nil
}
