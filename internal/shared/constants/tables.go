package constants

// Database table names
const (
	TableNotifications           = "notifications"
	TableNotificationPreferences = "notification_preferences"
	TableDeliveryLogs            = "delivery_logs"
	TableSubscriptions           = "subscriptions"
)
