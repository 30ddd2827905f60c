package services

// ServiceContainer holds instances of all the application services. This is
// the main entry point for accessing service functionality and is used
// throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Bill          BillSvcFacade
	Receivable    ReceivableSvcFacade
	Category      CategorySvcFacade
	PaymentMethod PaymentMethodSvcFacade
	PaymentStatus PaymentStatusSvcFacade
	PersonUser    PersonUserSvcFacade
	Summary       SummarySvcFacade
}
