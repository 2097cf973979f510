package admin

import (
	"errors"
	"strings"
)

var (
	ErrInvalidUsername = errors.New("username must not be empty")
	ErrEmptyPassword   = errors.New("password must not be empty")
)

type Username struct {
	value string
}

func NewUsername(s string) (Username, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Username{}, ErrInvalidUsername
	}
	return Username{value: s}, nil
}

func (u Username) Value() string {
	return u.value
}

type Password struct {
	value string
}

func NewPassword(s string) (Password, error) {
	if s == "" {
		return Password{}, ErrEmptyPassword
	}
	return Password{value: s}, nil
}

func (p Password) Value() string {
	return p.value
}

type Credentials struct {
	username Username
	password Password
}

func NewCredentials(usernameStr, passwordStr string) (Credentials, error) {
	username, err := NewUsername(usernameStr)
	if err != nil {
		return Credentials{}, err
	}

	password, err := NewPassword(passwordStr)
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{
		username: username,
		password: password,
	}, nil
}

func (c Credentials) Username() Username {
	return c.username
}

func (c Credentials) Password() Password {
	return c.password
}
