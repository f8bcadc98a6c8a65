package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Lastname     string    `json:"lastname"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Active       bool      `json:"active"`
	AvatarURL    *string   `json:"avatar_url"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// DisplayName retorna o nome exibido no painel, caindo para o email
func (u *User) DisplayName() string {
	name := u.Name
	if u.Lastname != "" {
		name = name + " " + u.Lastname
	}
	if name == "" {
		return u.Email
	}
	return name
}

// Identity representa o usuário autenticado de uma sessão
type Identity struct {
	UID         string `json:"uid"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	PhotoURL    string `json:"photo_url,omitempty"`
	Admin       bool   `json:"admin"`
}

// Claims do token; Admin é recalculado a cada validação a partir da configuração
type Claims struct {
	SessionID     string  `json:"sid"`
	UserID        int     `json:"user_id"`
	UserName      string  `json:"user_name"`
	UserEmail     string  `json:"user_email"`
	UserAvatarURL *string `json:"user_avatar_url,omitempty"`
	Admin         bool    `json:"-"`
	jwt.RegisteredClaims
}
