package payload

// Wire keys shared by every transport backend. Existing downstream consumers
// key on these names; changing them is a breaking wire change.
const (
	KeyAction   = "event_action"
	KeyCategory = "category"
)

// Flatten builds the transport payload for one enriched event: a single flat
// map holding every merged attribute plus the event's action and category.
// The category key is omitted for category-less events. Attribute keys never
// override the action key; the reserved keys win.
func Flatten(category, action string, attrs map[string]string) map[string]string {
	out := make(map[string]string, len(attrs)+2)
	for k, v := range attrs {
		out[k] = v
	}
	out[KeyAction] = action
	if category != "" {
		out[KeyCategory] = category
	}
	return out
}
