package services

import (
	portsrepo "github.com/traveljournal/tj_backend/internal/core/ports/repositories"
	portssvc "github.com/traveljournal/tj_backend/internal/core/ports/services"
	"github.com/traveljournal/tj_backend/internal/platform/cache"
	"github.com/traveljournal/tj_backend/internal/utils"
)

// NewContainer wires every service with its repositories, the cache and the
// analytics client, and returns the populated service container.
func NewContainer(
	repos *portsrepo.RepositoryProvider,
	c cache.Cache,
	analytics *utils.PosthogClientWrapper,
	photoFiles PhotoFileRemover,
) *portssvc.ServiceContainer {
	subscriptionSvc := NewSubscriptionService(repos.SubscriptionRepo)

	return &portssvc.ServiceContainer{
		User:         NewUserService(repos.UserRepo, repos.SubscriptionRepo, analytics),
		Subscription: subscriptionSvc,
		Journal:      NewJournalService(repos.JournalRepo, c),
		Entry:        NewEntryService(repos.EntryRepo, repos.UserRepo, repos.SubscriptionRepo, c),
		Media:        NewMediaService(repos.MediaRepo, repos.UserRepo, subscriptionSvc),
		Photo:        NewPhotoService(repos.PhotoRepo, repos.EntryRepo, repos.UserRepo, subscriptionSvc, photoFiles),
		Export:       NewExportService(repos.JournalRepo, repos.EntryRepo, repos.UserRepo, subscriptionSvc),
	}
}

// Compile-time checks that each implementation satisfies its facade.
var (
	_ portssvc.UserSvcFacade         = (*userService)(nil)
	_ portssvc.SubscriptionSvcFacade = (*subscriptionService)(nil)
	_ portssvc.JournalSvcFacade      = (*journalService)(nil)
	_ portssvc.EntrySvcFacade        = (*entryService)(nil)
	_ portssvc.MediaSvcFacade        = (*mediaService)(nil)
	_ portssvc.PhotoSvcFacade        = (*photoService)(nil)
	_ portssvc.ExportSvcFacade       = (*exportService)(nil)
)
