package services

// ServiceContainer holds all application services.
type ServiceContainer struct {
	AuthService         AuthService
	UserService         UserService
	SwapService         SwapService
	BrowseService       BrowseService
	AdminService        AdminService
	NotificationService NotificationService
}
