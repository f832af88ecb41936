// internal/service/customer/customer.go
package customer

import (
	"context"
	"fmt"

	"ltv-service/internal/domain/customer"

	"go.uber.org/zap"
)

// Store is the record access boundary, implemented by the Aerospike
// repository. Absent results come back as found=false; only input validation,
// connection and store failures surface as errors.
type Store interface {
	Put(ctx context.Context, id customer.ID, phone customer.PhoneNumber, ltv customer.LTV) error
	LTVByID(ctx context.Context, id customer.ID) (customer.LTV, bool, error)
	LTVByPhone(ctx context.Context, phone customer.PhoneNumber) (customer.LTV, bool, error)
}

// LTVCache caches resolved lifetime values. A nil cache disables caching.
type LTVCache interface {
	Get(ctx context.Context, key string) (int64, bool)
	Set(ctx context.Context, key string, ltv int64)
	Invalidate(ctx context.Context, keys ...string)
}

type LTVService struct {
	store  Store
	cache  LTVCache
	policy customer.PhonePolicy
	logger *zap.Logger
}

func NewLTVService(store Store, cache LTVCache, logger *zap.Logger) *LTVService {
	return &LTVService{
		store:  store,
		cache:  cache,
		policy: customer.DefaultPhonePolicy(),
		logger: logger,
	}
}

// AddCustomer validates the raw inputs, upserts the record and returns the
// written customer id.
func (s *LTVService) AddCustomer(ctx context.Context, id int64, phone string, ltv int64) (int64, error) {
	phoneNumber, err := customer.NewPhoneNumber(phone, s.policy)
	if err != nil {
		return 0, err
	}
	customerID, err := customer.NewID(id)
	if err != nil {
		return 0, err
	}
	lifetimeValue, err := customer.NewLTV(ltv)
	if err != nil {
		return 0, err
	}

	if err := s.store.Put(ctx, customerID, phoneNumber, lifetimeValue); err != nil {
		s.logger.Error("failed to store customer", zap.Int64("customer_id", id), zap.Error(err))
		return 0, err
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, idCacheKey(customerID), phoneCacheKey(phoneNumber))
	}

	s.logger.Info("customer stored",
		zap.Int64("customer_id", id),
		zap.Int64("ltv", ltv),
	)
	return int64(customerID), nil
}

// LTVByID returns the lifetime value for a customer id. A missing or broken
// record is found=false, never an error.
func (s *LTVService) LTVByID(ctx context.Context, id int64) (int64, bool, error) {
	customerID, err := customer.NewID(id)
	if err != nil {
		return 0, false, err
	}

	key := idCacheKey(customerID)
	if s.cache != nil {
		if ltv, ok := s.cache.Get(ctx, key); ok {
			return ltv, true, nil
		}
	}

	ltv, found, err := s.store.LTVByID(ctx, customerID)
	if err != nil || !found {
		return 0, false, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, key, int64(ltv))
	}
	return int64(ltv), true, nil
}

// LTVByPhone returns the lifetime value for the first record matching the
// phone number.
func (s *LTVService) LTVByPhone(ctx context.Context, phone string) (int64, bool, error) {
	phoneNumber, err := customer.NewPhoneNumber(phone, s.policy)
	if err != nil {
		return 0, false, err
	}

	key := phoneCacheKey(phoneNumber)
	if s.cache != nil {
		if ltv, ok := s.cache.Get(ctx, key); ok {
			return ltv, true, nil
		}
	}

	ltv, found, err := s.store.LTVByPhone(ctx, phoneNumber)
	if err != nil || !found {
		return 0, false, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, key, int64(ltv))
	}
	return int64(ltv), true, nil
}

func idCacheKey(id customer.ID) string {
	return fmt.Sprintf("ltv:id:%d", int64(id))
}

func phoneCacheKey(phone customer.PhoneNumber) string {
	return "ltv:phone:" + phone.String()
}
