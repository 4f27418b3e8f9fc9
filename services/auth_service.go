package services

import (
	"errors"

	"github.com/jaseerashabeer/smart-habit-tracker/config"
	"github.com/jaseerashabeer/smart-habit-tracker/models"
	"github.com/jaseerashabeer/smart-habit-tracker/utils"
)

func RegisterUser(email, password, fullName string) error {
	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	user := models.User{
		Email:    email,
		Password: hashed,
		FullName: fullName,
	}
	return config.DB.Create(&user).Error
}

func AuthenticateUser(email, password string) (string, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return "", errors.New("user not found")
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", errors.New("incorrect password")
	}

	return utils.GenerateJWT(user.ID, user.Email)
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
