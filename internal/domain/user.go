package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role é o papel de um usuário na plataforma
type Role int

const (
	RoleSuperAdmin Role = 1
	RoleAdmin      Role = 2
	RoleStoreOwner Role = 3
)

// Grants implementa a relação de concessão entre papéis: SUPER_ADMIN concede
// tudo o que ADMIN concede. A checagem de permissão usa esta relação, nunca
// comparação direta espalhada pelos handlers.
func (r Role) Grants(required Role) bool {
	if r == required {
		return true
	}

	return r == RoleSuperAdmin && required == RoleAdmin
}

func (r Role) Valid() bool {
	return r == RoleSuperAdmin || r == RoleAdmin || r == RoleStoreOwner
}

type User struct {
	ID           int        `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Active       bool       `json:"active"`
	RoleID       Role       `json:"role_id"`
	// StoreID liga o usuário à sua loja. Donos de loja têm exatamente uma;
	// administradores da plataforma não têm nenhuma.
	StoreID   *string    `json:"store_id"`
	Deleted   bool       `json:"deleted"`
	DeletedAt *time.Time `json:"deleted_at"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Claims é o contexto imutável extraído do token: identifica o usuário e o
// tenant ao qual a requisição fica vinculada.
type Claims struct {
	UserID      int
	UserName    string
	UserEmail   string
	UserRoleID  Role
	UserStoreID *string
	jwt.RegisteredClaims
}

// Tenant retorna o identificador da loja vinculada ao usuário, se houver
func (c *Claims) Tenant() (string, bool) {
	if c.UserStoreID == nil || *c.UserStoreID == "" {
		return "", false
	}

	return *c.UserStoreID, true
}
