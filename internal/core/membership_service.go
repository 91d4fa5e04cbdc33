package core

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"

	"familysync-backend/internal/db"
	"familysync-backend/pkg/cache"
)

const membershipCachePrefix = "family:members:"

// membershipService implements MembershipService over the family
// repository, with an optional read-through cache of member lists.
type membershipService struct {
	familyRepo db.FamilyRepository
	cache      cache.Cache // nil disables caching
	cacheTTL   time.Duration
	logger     *zap.Logger
}

// NewMembershipService creates a new MembershipService. cache may be nil.
func NewMembershipService(familyRepo db.FamilyRepository, c cache.Cache, cacheTTL time.Duration, logger *zap.Logger) MembershipService {
	return &membershipService{
		familyRepo: familyRepo,
		cache:      c,
		cacheTTL:   cacheTTL,
		logger:     logger,
	}
}

// IsMember reports whether userID belongs to familyID. A missing family
// and an infrastructure failure both come back false; callers must not
// distinguish them. The two cases are logged separately.
func (s *membershipService) IsMember(ctx context.Context, userID, familyID string) bool {
	if userID == "" || familyID == "" {
		return false
	}
	members, err := s.members(ctx, familyID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			s.logger.Info("membership check against missing family",
				zap.String("familyId", familyID))
		} else {
			s.logger.Warn("membership lookup failed, denying access",
				zap.String("familyId", familyID),
				zap.Error(err))
		}
		return false
	}
	for _, m := range members {
		if m == userID {
			return true
		}
	}
	return false
}

// Invalidate drops the cached member list for a family.
func (s *membershipService) Invalidate(ctx context.Context, familyID string) {
	if s.cache == nil || familyID == "" {
		return
	}
	if err := s.cache.Delete(ctx, membershipCachePrefix+familyID); err != nil {
		s.logger.Warn("failed to invalidate membership cache",
			zap.String("familyId", familyID),
			zap.Error(err))
	}
}

func (s *membershipService) members(ctx context.Context, familyID string) ([]string, error) {
	key := membershipCachePrefix + familyID
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key); err == nil && cached != "" {
			var members []string
			if jsonErr := json.Unmarshal([]byte(cached), &members); jsonErr == nil {
				return members, nil
			}
			// Undecodable entry: fall through to the source of truth.
		} else if err != nil {
			s.logger.Warn("membership cache read failed",
				zap.String("familyId", familyID),
				zap.Error(err))
		}
	}

	family, err := s.familyRepo.GetByID(ctx, familyID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if encoded, jsonErr := json.Marshal(family.MemberUIDs); jsonErr == nil {
			if err := s.cache.Set(ctx, key, string(encoded), s.cacheTTL); err != nil {
				s.logger.Warn("membership cache write failed",
					zap.String("familyId", familyID),
					zap.Error(err))
			}
		}
	}
	return family.MemberUIDs, nil
}
