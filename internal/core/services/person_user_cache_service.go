package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/hlmsouza/home_ledger_app/internal/core/domain"
	"github.com/hlmsouza/home_ledger_app/internal/core/ports"
	portsrepo "github.com/hlmsouza/home_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/hlmsouza/home_ledger_app/internal/core/ports/services"
	"github.com/hlmsouza/home_ledger_app/internal/dto"
	"github.com/google/uuid"
)

// personUserCacheService implements PersonUserSvcFacade. Because one person is
// addressable by email, id, or auth id, the cache stores a single record under
// a composite key and lookups scan by the known axis. The scan doubles as a
// consistency check: duplicate keys for the same person are reconciled by
// deleting them all and re-reading the repository.
type personUserCacheService struct {
	cacheStore
	personRepo portsrepo.PersonUserRepositoryFacade
}

// NewPersonUserCacheService creates a new person user service.
func NewPersonUserCacheService(repo portsrepo.PersonUserRepositoryFacade, cache ports.CacheGateway) portssvc.PersonUserSvcFacade {
	return &personUserCacheService{
		cacheStore: cacheStore{cache: cache},
		personRepo: repo,
	}
}

var _ portssvc.PersonUserSvcFacade = (*personUserCacheService)(nil)

func (s *personUserCacheService) GetPersonUserByID(ctx context.Context, personUserID string) (*domain.PersonUser, error) {
	return s.getPersonUser(ctx,
		personUserKey("", personUserID, ""),
		func(ctx context.Context) (*domain.PersonUser, error) {
			return s.personRepo.FindPersonUserByID(ctx, personUserID)
		})
}

func (s *personUserCacheService) GetPersonUserByEmail(ctx context.Context, email string) (*domain.PersonUser, error) {
	return s.getPersonUser(ctx,
		personUserKey(email, "", ""),
		func(ctx context.Context) (*domain.PersonUser, error) {
			return s.personRepo.FindPersonUserByEmail(ctx, email)
		})
}

func (s *personUserCacheService) GetPersonUserByAuthUserID(ctx context.Context, authUserID string) (*domain.PersonUser, error) {
	return s.getPersonUser(ctx,
		personUserKey("", "", authUserID),
		func(ctx context.Context) (*domain.PersonUser, error) {
			return s.personRepo.FindPersonUserByAuthUserID(ctx, authUserID)
		})
}

// getPersonUser runs the lookup for one axis: scan the cache for the pattern,
// reconcile what the scan found, and fall through to the repository on a miss.
func (s *personUserCacheService) getPersonUser(ctx context.Context, pattern string, find func(context.Context) (*domain.PersonUser, error)) (*domain.PersonUser, error) {
	if person, ok := s.recoverFromScan(ctx, pattern); ok {
		return person, nil
	}

	person, err := find(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to find person user", slog.String("pattern", pattern))
		return nil, err
	}
	if person == nil {
		return nil, nil
	}

	s.saveCanonical(ctx, person)
	return person, nil
}

// recoverFromScan scans for keys matching pattern. Exactly one match is
// trusted and recovered. More than one means the cache disagrees with itself
// about this person, so every match is deleted and the lookup treated as a
// miss.
func (s *personUserCacheService) recoverFromScan(ctx context.Context, pattern string) (*domain.PersonUser, bool) {
	keys, err := s.scanKeys(ctx, pattern)
	if err != nil {
		s.LogWarn(ctx, "Cache scan failed, falling through to repository",
			slog.String("pattern", pattern), slog.String("error", err.Error()))
		return nil, false
	}
	switch len(keys) {
	case 0:
		return nil, false
	case 1:
		return recoverValue[domain.PersonUser](ctx, &s.cacheStore, keys[0])
	default:
		s.LogWarn(ctx, "Duplicate person user cache entries, reconciling",
			slog.String("pattern", pattern), slog.Int("key_count", len(keys)))
		s.deleteKeys(ctx, keys)
		return nil, false
	}
}

// saveCanonical rewrites the single canonical key for person, all three axes
// filled in.
func (s *personUserCacheService) saveCanonical(ctx context.Context, person *domain.PersonUser) {
	key := personUserKey(person.Email, person.PersonUserID, person.AuthUserID)
	s.save(ctx, key, person, identityTTL)
}

// invalidatePerson removes every cached key addressing person, on any axis.
func (s *personUserCacheService) invalidatePerson(ctx context.Context, person *domain.PersonUser) {
	for _, pattern := range []string{
		personUserKey(person.Email, "", ""),
		personUserKey("", person.PersonUserID, ""),
		personUserKey("", "", person.AuthUserID),
	} {
		keys, err := s.scanKeys(ctx, pattern)
		if err != nil {
			s.LogWarn(ctx, "Cache scan failed during invalidation",
				slog.String("pattern", pattern), slog.String("error", err.Error()))
			continue
		}
		s.deleteKeys(ctx, keys)
	}
}

func (s *personUserCacheService) CreatePersonUser(ctx context.Context, req dto.CreatePersonUserRequest) (*domain.PersonUser, error) {
	now := time.Now()
	person := domain.PersonUser{
		PersonUserID: uuid.NewString(),
		Email:        req.Email,
		AuthUserID:   req.AuthUserID,
		Name:         req.Name,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     req.AuthUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: req.AuthUserID,
		},
	}

	stored, err := s.personRepo.SavePersonUser(ctx, person)
	if err != nil {
		s.LogError(ctx, err, "Failed to save person user", slog.String("email", req.Email))
		return nil, err
	}
	if stored == nil || stored.PersonUserID == "" {
		return stored, nil
	}

	s.saveCanonical(ctx, stored)
	s.LogInfo(ctx, "Person user created", slog.String("person_user_id", stored.PersonUserID))
	return stored, nil
}

func (s *personUserCacheService) UpdatePersonUser(ctx context.Context, personUserID string, req dto.UpdatePersonUserRequest) (*domain.PersonUser, error) {
	person, err := s.GetPersonUserByID(ctx, personUserID)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, nil
	}

	// The email axis may change below; remember the record as cached now so
	// the stale keys can be dropped after the write is confirmed.
	previous := *person

	if req.Email != nil {
		person.Email = *req.Email
	}
	if req.Name != nil {
		person.Name = *req.Name
	}
	person.LastUpdatedAt = time.Now()
	person.LastUpdatedBy = person.AuthUserID

	fresh, err := s.personRepo.UpdatePersonUser(ctx, *person)
	if err != nil {
		s.LogError(ctx, err, "Failed to update person user", slog.String("person_user_id", personUserID))
		return nil, err
	}
	if fresh == nil {
		return nil, nil
	}

	s.invalidatePerson(ctx, &previous)
	s.saveCanonical(ctx, fresh)
	s.LogInfo(ctx, "Person user updated", slog.String("person_user_id", personUserID))
	return fresh, nil
}
