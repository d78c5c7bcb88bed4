package services

import (
	"pettime_backend/internal/email"
	"pettime_backend/internal/push"
	"pettime_backend/internal/repositories"
	"pettime_backend/internal/storage"
)

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService         AuthService
	UserService         UserService
	PetService          PetService
	CatalogService      CatalogService
	ProductService      ProductService
	AppointmentService  AppointmentService
	NotificationService NotificationService
	PushService         PushService
	EmailProvider       email.Provider
}

// NewServiceContainer wires repositories and providers into services.
func NewServiceContainer(
	userRepo repositories.UserRepository,
	petRepo repositories.PetRepository,
	catalogRepo repositories.CatalogRepository,
	productRepo repositories.ProductRepository,
	appointmentRepo repositories.AppointmentRepository,
	notificationRepo repositories.NotificationRepository,
	deviceTokenRepo repositories.DeviceTokenRepository,
	store storage.Storage,
	emailProvider email.Provider,
	pushProvider push.Provider,
) *ServiceContainer {
	pushService := NewPushService(deviceTokenRepo, pushProvider)
	notificationService := NewNotificationService(notificationRepo, userRepo, pushService, emailProvider)

	return &ServiceContainer{
		AuthService:         NewAuthService(userRepo, emailProvider),
		UserService:         NewUserService(userRepo),
		PetService:          NewPetService(petRepo, store),
		CatalogService:      NewCatalogService(catalogRepo),
		ProductService:      NewProductService(productRepo, store),
		AppointmentService:  NewAppointmentService(appointmentRepo, petRepo, catalogRepo, productRepo, notificationService),
		NotificationService: notificationService,
		PushService:         pushService,
		EmailProvider:       emailProvider,
	}
}
