package pubsub

import (
	"strconv"

	"pos/internal/domain/service"
)

// settlementAttributes builds the message attributes used for filtering and tracing.
func settlementAttributes(event *service.SettlementEvent) map[string]string {
	attributes := map[string]string{
		"event_type":   "order.settled",
		"order_id":     event.OrderID,
		"draft_id":     event.DraftID,
		"table_number": strconv.Itoa(event.TableNumber),
	}
	if event.CustomerID != "" {
		attributes["customer_id"] = event.CustomerID
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
