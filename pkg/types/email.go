package types

// EmailMessage is one message in the order's conversation thread. The thread
// lives in memory only; it is read by the draft collaborator for context and
// is never persisted with the order snapshots.
type EmailMessage struct {
	ID         string `json:"id"`
	From       string `json:"from"`
	FromEmail  string `json:"fromEmail"`
	To         string `json:"to"`
	Subject    string `json:"subject"`
	Date       string `json:"date"`
	Body       string `json:"body"`
	IsIncoming bool   `json:"isIncoming"`
}
