package notifier

import "context"

// Notification is a subject plus plaintext body addressed to a single
// recipient. Delivery is best effort; no confirmation is consumed.
type Notification struct {
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	Recipient string `json:"recipient"`
}

type Notifier interface {
	Notify(ctx context.Context, n Notification) error
}
