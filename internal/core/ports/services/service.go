package services

// ServiceContainer bundles the service facades handed to the transport layer.
type ServiceContainer struct {
	Deal DealSvcFacade
}
