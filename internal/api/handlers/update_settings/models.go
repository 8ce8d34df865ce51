package update_settings

// UpdateSettingsRequest HTTP request model
type UpdateSettingsRequest struct {
	NotificationEmail string `json:"notificationEmail"`
}
