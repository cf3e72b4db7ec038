package services

// ServiceContainer bundles the services handed to the handler layer.
type ServiceContainer struct {
	UserService    UserService
	PostingService PostingService
	GigService     GigService
}
