package middleware

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/storefront-saas-api/internal/domain"
	"github.com/vfg2006/storefront-saas-api/pkg/apiErrors"
)

const (
	// ContextKeyTenant carrega o ID da loja vinculada à requisição
	ContextKeyTenant contextKey = "tenant"
)

// TenantMiddleware vincula a requisição a exatamente um tenant. Usuário
// autenticado sem loja associada recebe 401 (precisa ser dono de uma loja
// para usar rotas de tenant), nunca acesso parcial.
//
// Todo acesso a dados abaixo deste middleware usa o tenant do contexto como
// filtro obrigatório; o único caminho sem esse filtro é o de rollup
// administrativo, que não passa por aqui.
func TenantMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			storeID, ok := userClaims.Tenant()
			if !ok {
				logrus.Warningf("Usuário ID=%d sem loja vinculada tentou acessar rota de tenant", userClaims.UserID)
				apiErrors.WriteError(w, apiErrors.ErrNoTenantBound, "Usuário não possui loja vinculada", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyTenant, storeID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// TenantFromContext recupera o tenant vinculado pela cadeia de middlewares
func TenantFromContext(ctx context.Context) (string, bool) {
	storeID, ok := ctx.Value(ContextKeyTenant).(string)
	return storeID, ok && storeID != ""
}
