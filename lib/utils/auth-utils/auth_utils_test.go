package authutils

import (
	"testing"

	"careerhub-backend/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

func TestAuthUtils(t *testing.T) {
	conf := new(config.Configuration)
	conf.Auth.JWTSecret = "test-secret"
	conf.Auth.JWTExpireInSec = 3600
	conf.Auth.JWTRefreshExpireInSec = 86400
	config.Conf = conf

	t.Run(`GetToken claims check`, func(t *testing.T) {
		tokenString, err := GetToken("user1", "Иванов Иван", true)
		require.Nil(t, err)

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return []byte(conf.Auth.JWTSecret), nil
		})
		require.Nil(t, err)
		require.Equal(t, true, token.Valid)

		claims := token.Claims.(jwt.MapClaims)
		require.Equal(t, "user1", claims["sub"])
		require.Equal(t, "Иванов Иван", claims["name"])
		require.Equal(t, true, claims["admin"])
	})

	t.Run(`GetRefreshToken claims check`, func(t *testing.T) {
		tokenString, err := GetRefreshToken("user1", "Иванов Иван")
		require.Nil(t, err)

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			return []byte(conf.Auth.JWTSecret), nil
		})
		require.Nil(t, err)
		require.Equal(t, true, token.Valid)

		claims := token.Claims.(jwt.MapClaims)
		require.Equal(t, "user1", claims["sub"])
		_, hasAdmin := claims["admin"]
		require.Equal(t, false, hasAdmin)
	})

	t.Run(`GetMD5Hash check`, func(t *testing.T) {
		require.Equal(t, "5f4dcc3b5aa765d61d8327deb882cf99", GetMD5Hash("password"))
		require.Equal(t, "d41d8cd98f00b204e9800998ecf8427e", GetMD5Hash(""))
	})
}
