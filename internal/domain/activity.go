package domain

import "time"

// AdminActivity é uma entrada da trilha de auditoria administrativa.
// Escrita fire-and-forget: falha ao auditar não aborta a operação original.
type AdminActivity struct {
	ID         int64          `json:"id"`
	ActorID    int            `json:"actor_id"`
	Action     string         `json:"action"`
	TargetType string         `json:"target_type"`
	TargetID   string         `json:"target_id"`
	Message    string         `json:"message"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	IP         string         `json:"ip,omitempty"`
	UserAgent  string         `json:"user_agent,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}
