package handlers

// AppHandlers holds every handler of the application.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	SwapHandler         *SwapHandler
	BrowseHandler       *BrowseHandler
	AdminHandler        *AdminHandler
	NotificationHandler *NotificationHandler
	HealthHandler       *HealthHandler
}
