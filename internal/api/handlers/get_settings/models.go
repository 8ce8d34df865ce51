package get_settings

// SettingsResponse HTTP response model
type SettingsResponse struct {
	NotificationEmail string `json:"notificationEmail"`
}
