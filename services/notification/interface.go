package notification

import "context"

// NotificationService sends push notifications to housekeeping staff.
type NotificationService interface {
	SendMaidPush(ctx context.Context, maidID, title, body string, data map[string]string) error
}
