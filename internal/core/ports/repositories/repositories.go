package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	UserRepo         UserRepositoryFacade
	SubscriptionRepo SubscriptionRepositoryFacade
	JournalRepo      JournalRepositoryFacade
	EntryRepo        EntryRepositoryFacade
	MediaRepo        MediaRepositoryFacade
	PhotoRepo        PhotoRepositoryFacade
}
