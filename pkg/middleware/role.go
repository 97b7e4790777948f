package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/storefront-saas-api/internal/domain"
	"github.com/vfg2006/storefront-saas-api/pkg/apiErrors"
)

// RoleMiddleware restringe o acesso com base no reticulado de papéis:
// a requisição passa se o papel do usuário concede algum dos papéis
// exigidos (SUPER_ADMIN concede tudo o que ADMIN concede)
func RoleMiddleware(requiredRoles ...domain.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			isAllowed := false
			for _, required := range requiredRoles {
				if userClaims.UserRoleID.Grants(required) {
					isAllowed = true
					break
				}
			}

			if !isAllowed {
				logrus.Warningf("Acesso negado para usuário ID=%d, Role=%d", userClaims.UserID, userClaims.UserRoleID)
				apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly permite acesso apenas para administradores da plataforma.
// SUPER_ADMIN passa pela relação de concessão.
func AdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware(domain.RoleAdmin)
}

// SuperAdminOnly permite acesso apenas para super administradores
func SuperAdminOnly() func(http.Handler) http.Handler {
	return RoleMiddleware(domain.RoleSuperAdmin)
}

// AllRoles permite acesso para qualquer usuário autenticado
func AllRoles() func(http.Handler) http.Handler {
	return RoleMiddleware(domain.RoleSuperAdmin, domain.RoleAdmin, domain.RoleStoreOwner)
}
