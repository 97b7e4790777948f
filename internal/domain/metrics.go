package domain

import "github.com/vfg2006/storefront-saas-api/pkg/utils"

// GrowthRate calcula a variação percentual entre dois períodos.
//
// Política aplicada em todos os cálculos de crescimento da plataforma:
//   - previous > 0: variação percentual normal
//   - previous == 0 e current > 0: 100% (saiu do zero)
//   - ambos zero: 0%
//
// Isso evita divisão por zero e mantém o resultado sempre serializável
// (nunca NaN ou Inf).
func GrowthRate(current, previous float64) float64 {
	if previous > 0 {
		return utils.RoundWithTwoDecimalPlace((current - previous) / previous * 100)
	}

	if current > 0 {
		return 100
	}

	return 0
}

// ConversionRate calcula a taxa de conversão de assinaturas em teste para
// assinaturas ativas. Assinaturas expiradas ou canceladas ficam fora do
// funil: apenas trial e active contam no denominador.
func ConversionRate(active, trialing int) float64 {
	total := active + trialing
	if total == 0 {
		return 0
	}

	return utils.RoundWithTwoDecimalPlace(float64(active) / float64(total) * 100)
}

// PercentageShare calcula a participação percentual de uma parte sobre um
// total, com guarda para total zero
func PercentageShare(part, total float64) float64 {
	if total <= 0 {
		return 0
	}

	return utils.RoundWithTwoDecimalPlace(part / total * 100)
}
