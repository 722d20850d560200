package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/hobfurniture/orderdesk-backend/api/responses"
	"github.com/hobfurniture/orderdesk-backend/internal/drafts"
	"github.com/hobfurniture/orderdesk-backend/internal/emails"
	"github.com/hobfurniture/orderdesk-backend/internal/state"
	"github.com/hobfurniture/orderdesk-backend/pkg/logger"
)

// ListEmails returns the conversation thread.
func ListEmails(thread *emails.Thread) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		responses.WriteSuccess(w, thread.List())
	}
}

// DraftReply asks the draft collaborator for a proposed reply body. Failures
// come back as a message in the draft field, never as an API error — the
// collaborator must not block the editing flow.
func DraftReply(engine *state.Engine, thread *emails.Thread, service *drafts.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshot := engine.Snapshot()
		draft := service.DraftReply(r.Context(), drafts.Input{
			CustomerName: snapshot.Customer.Name,
			OrderContext: orderContext(snapshot),
			Conversation: thread.ConversationText(),
		})
		responses.WriteSuccess(w, map[string]string{"draft": draft})
	}
}

func orderContext(snapshot state.Snapshot) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "Order #%s, status %s, placed %s.\n",
		snapshot.Order.OrderNumber, snapshot.Order.Status, snapshot.Order.Date)
	for _, item := range snapshot.Order.Items {
		fmt.Fprintf(&builder, "- %s x%s @ %s (%s)\n",
			item.Description, item.Quantity.String(), item.Price.StringFixed(2), strings.Join(item.Details, ", "))
	}
	fmt.Fprintf(&builder, "Total %s, paid %s, due %s.",
		snapshot.Order.Total.StringFixed(2), snapshot.Order.AmountPaid.StringFixed(2), snapshot.Order.AmountDue.StringFixed(2))
	return builder.String()
}
