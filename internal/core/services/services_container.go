package services

import (
	"time"

	portsrepo "github.com/letsgoparty/letsgoparty_backend/internal/core/ports/repositories"
	portssvc "github.com/letsgoparty/letsgoparty_backend/internal/core/ports/services"
	"github.com/letsgoparty/letsgoparty_backend/internal/platform/config"
)

// ContainerOption is a functional option for configuring the service container
type ContainerOption func(*containerOptions)

type containerOptions struct {
	clock func() time.Time
}

// WithClock replaces time.Now in every service.
func WithClock(clock func() time.Time) ContainerOption {
	return func(o *containerOptions) {
		o.clock = clock
	}
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(
	cfg *config.Config,
	repos portsrepo.RepositoryProvider,
	mailer portssvc.Mailer,
	images portssvc.ImageStore,
	options ...ContainerOption,
) *portssvc.ServiceContainer {
	opts := containerOptions{clock: time.Now}
	for _, option := range options {
		option(&opts)
	}

	container := &portssvc.ServiceContainer{Images: images}

	container.Token = NewTokenService(cfg, opts.clock)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)
	container.Auth = NewAuthService(repos.UserRepo, container.Token, opts.clock)
	container.Registration = NewRegistrationService(repos.UserRepo, mailer, cfg, opts.clock)
	container.PasswordReset = NewPasswordResetService(repos.UserRepo, mailer, cfg, opts.clock)
	container.User = NewUserService(repos.UserRepo, images, opts.clock)
	container.Event = NewEventService(repos.EventRepo, images, opts.clock)
	container.Like = NewLikeService(repos.LikeRepo, opts.clock)
	container.Contact = NewContactService(mailer, cfg.ContactInbox)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AuthSvcFacade          = (*authService)(nil)
	_ portssvc.RegistrationSvcFacade  = (*registrationService)(nil)
	_ portssvc.PasswordResetSvcFacade = (*passwordResetService)(nil)
	_ portssvc.UserSvcFacade          = (*userService)(nil)
	_ portssvc.EventSvcFacade         = (*eventService)(nil)
	_ portssvc.LikeSvcFacade          = (*likeService)(nil)
	_ portssvc.ContactSvc             = (*contactService)(nil)
)
