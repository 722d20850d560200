// Package emails holds the in-memory message thread shown alongside the
// documents. The thread is session-scoped and deliberately not persisted
// with the order snapshots.
package emails

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hobfurniture/orderdesk-backend/pkg/types"
)

// Thread is the ordered conversation for the current order.
type Thread struct {
	mu       sync.Mutex
	messages []types.EmailMessage
}

// NewThread seeds a thread with the given messages.
func NewThread(seed []types.EmailMessage) *Thread {
	messages := make([]types.EmailMessage, len(seed))
	copy(messages, seed)
	return &Thread{messages: messages}
}

// List returns a copy of the messages in order.
func (t *Thread) List() []types.EmailMessage {
	t.mu.Lock()
	defer t.mu.Unlock()
	messages := make([]types.EmailMessage, len(t.messages))
	copy(messages, t.messages)
	return messages
}

// Append adds a message, assigning an id and timestamp when absent.
func (t *Thread) Append(message types.EmailMessage) types.EmailMessage {
	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	if message.Date == "" {
		message.Date = time.Now().Format("Jan 2, 2006, 3:04 PM")
	}

	t.mu.Lock()
	t.messages = append(t.messages, message)
	t.mu.Unlock()
	return message
}

// ConversationText flattens the thread into the history text handed to the
// draft collaborator.
func (t *Thread) ConversationText() string {
	t.mu.Lock()
	defer t.mu.Unlock()

	var builder strings.Builder
	for _, message := range t.messages {
		fmt.Fprintf(&builder, "From: %s <%s>\nDate: %s\nSubject: %s\n\n%s\n\n---\n\n",
			message.From, message.FromEmail, message.Date, message.Subject, message.Body)
	}
	return builder.String()
}

// SeedMessages is the built-in conversation for the sample order.
func SeedMessages() []types.EmailMessage {
	return []types.EmailMessage{
		{
			ID:        "msg_1",
			From:      "Emma Kitchen",
			FromEmail: "customerservice@hobfurniture.co.uk",
			To:        "Arthur Cook",
			Subject:   "Order #2025-376 Confirmation - HOB Furniture",
			Date:      "Sep 14, 2025, 10:30 AM",
			Body: "Dear Arthur,\n\nThank you for your order with HOB Furniture. We are pleased to confirm we have received your deposit and your order is now being processed.\n\n" +
				"Your estimated delivery date is currently being calculated based on the production schedule for your Clinton Cinema Sofa.\n\n" +
				"If you have any questions, please simply reply to this email.\n\nBest regards,\nEmma Kitchen\nHOB Furniture",
			IsIncoming: true,
		},
		{
			ID:        "msg_2",
			From:      "Arthur Cook",
			FromEmail: "marwelgkcurry83@gmail.com",
			To:        "Emma Kitchen",
			Subject:   "Re: Order #2025-376 Confirmation - HOB Furniture",
			Date:      "Sep 15, 2025, 09:15 AM",
			Body: "Hi Emma,\n\nThanks for the confirmation. I just wanted to double-check if the fabric \"Alaska Madrid Chenielle\" is the stain-resistant version? " +
				"We have a dog and just want to be sure.\n\nThanks,\nArthur",
			IsIncoming: false,
		},
	}
}
