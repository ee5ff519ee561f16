package user

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/heartmarshall/devdash-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	InsertIfAbsent(ctx context.Context, u domain.User) (bool, error)
	Update(ctx context.Context, id uuid.UUID, params domain.UserUpdateParams) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// txManager defines the transaction manager interface needed by user service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements identity provisioning, profile and account operations.
// provisioned remembers identities this process has already ensured exist.
type Service struct {
	log         *slog.Logger
	users       userRepo
	tx          txManager
	provisioned *lru.Cache[uuid.UUID, struct{}]
	now         func() time.Time
}

// NewService creates a new user service instance. cacheSize bounds the
// number of provisioned identities remembered in memory.
func NewService(
	logger *slog.Logger,
	users userRepo,
	tx txManager,
	cacheSize int,
) (*Service, error) {
	cache, err := lru.New[uuid.UUID, struct{}](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("user.NewService: provision cache: %w", err)
	}
	return &Service{
		log:         logger.With("service", "user"),
		users:       users,
		tx:          tx,
		provisioned: cache,
		now:         func() time.Time { return time.Now().UTC() },
	}, nil
}
