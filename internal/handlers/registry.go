package handlers

// AppHandlers holds every HTTP handler of the application.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	UserHandler         *UserHandler
	PetHandler          *PetHandler
	CatalogHandler      *CatalogHandler
	ProductHandler      *ProductHandler
	AppointmentHandler  *AppointmentHandler
	NotificationHandler *NotificationHandler
}
