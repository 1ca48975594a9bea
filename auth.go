package main

import (
	"fmt"
	"strings"

	"debtbook/models"

	"golang.org/x/crypto/bcrypt"
)

func RegisterUser(username, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return models.User{}, fmt.Errorf("username required")
	}
	if len(password) < 6 { // basic password policy
		return models.User{}, fmt.Errorf("password too short (min 6)")
	}
	// pre-check existing (optimistic)
	var existing models.User
	if err := db.Where("username = ?", username).First(&existing).Error; err == nil {
		return models.User{}, fmt.Errorf("user already exists")
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	user := models.User{Username: username, HashedPassword: hashedPassword}
	if err := db.Create(&user).Error; err != nil {
		if isUniqueConstraintError(err) { // race condition after initial check
			return models.User{}, fmt.Errorf("user already exists")
		}
		return models.User{}, err
	}
	return user, nil
}

func Authenticate(username, password string) (models.User, error) {
	username = strings.TrimSpace(username)
	var user models.User
	if err := db.Where("username = ?", username).First(&user).Error; err != nil {
		return models.User{}, fmt.Errorf("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword(user.HashedPassword, []byte(password)); err != nil {
		return models.User{}, fmt.Errorf("invalid credentials")
	}
	return user, nil
}

func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint") || strings.Contains(s, "already exists")
}
