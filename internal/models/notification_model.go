package models

// Push notification payload types, carried in the data map under "type".
const (
	NotifTypeTaskAssignment   = "task_assignment"
	NotifTypeShoppingApproval = "shopping_approval"
	NotifTypeCalendarUpdate   = "calendar_update"
)

// PushNotification is an ephemeral payload delivered to device tokens.
// It is never persisted; delivery is best-effort.
type PushNotification struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}
