package repositories

// RepositoryProvider holds all repository interfaces needed by services.
type RepositoryProvider struct {
	BillRepo          BillRepositoryFacade
	ReceivableRepo    ReceivableRepositoryFacade
	CategoryRepo      CategoryRepositoryFacade
	PaymentMethodRepo PaymentMethodRepositoryFacade
	PaymentStatusRepo PaymentStatusRepositoryFacade
	PersonUserRepo    PersonUserRepositoryFacade
}
