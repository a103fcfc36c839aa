package rabbitmq

import "strings"

const (
	// BindingKey matches every action event on the exchange.
	BindingKey = "action.#"

	// PrefetchCount bounds unacknowledged deliveries per consumer.
	PrefetchCount = 32
)

// RoutingKey is "action.<resource_type>.<action>", e.g. "action.volume.delete".
func RoutingKey(resourceType, action string) string {
	return strings.Join([]string{"action", resourceType, action}, ".")
}
