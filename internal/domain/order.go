package domain

import "time"

// PaymentStatus é o status de pagamento de um pedido. Apenas pedidos PAID
// contribuem para a receita nas agregações.
type PaymentStatus string

const (
	PaymentPaid     PaymentStatus = "PAID"
	PaymentPending  PaymentStatus = "PENDING"
	PaymentFailed   PaymentStatus = "FAILED"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

// Order é um colaborador externo do motor de relatórios: o domínio de
// pedidos é apenas lido, nunca escrito por este serviço.
type Order struct {
	ID            string        `json:"id"`
	StoreID       string        `json:"store_id"`
	Total         float64       `json:"total"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	PaidAt        *time.Time    `json:"paid_at"`
	CreatedAt     time.Time     `json:"created_at"`
}
