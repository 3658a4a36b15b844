// Package domain defines inbound mail types and ports
package domain

import "time"

// InboundEmail is the webhook payload for one forwarded message.
// To carries every recipient as delivered; the service picks out the
// alias recipient on its own domain
type InboundEmail struct {
	From    string   `json:"from" validate:"required,email"`
	To      []string `json:"to" validate:"required,min=1,dive,required,email"`
	Subject string   `json:"subject" validate:"max=998"`
	Body    string   `json:"body" validate:"required"`
}

// FollowUp is the scheduled obligation produced from one inbound email
type FollowUp struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id,omitempty"`
	Alias      string     `json:"alias"`
	AliasType  string     `json:"alias_type"`
	Direction  string     `json:"direction,omitempty"`
	Confidence float64    `json:"confidence,omitempty"`
	DueAt      *time.Time `json:"due_at,omitempty"`
	DueText    string     `json:"due_text,omitempty"`
	Quote      string     `json:"quote,omitempty"`
	Method     string     `json:"method,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
}
