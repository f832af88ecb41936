// internal/repository/aerospike/customer_repo.go
package aerospike

import (
	"context"
	"fmt"

	"ltv-service/internal/db"
	"ltv-service/internal/domain/customer"

	aero "github.com/aerospike/aerospike-client-go/v7"
	"github.com/aerospike/aerospike-client-go/v7/types"
	"go.uber.org/zap"
)

const (
	binPhone = "phone"
	binLTV   = "ltv"
)

// CustomerRepository reads and writes customer records in a fixed
// namespace/set. Store-side "record missing" and "broken stored value" are
// logged at error level and reported as absence, never as errors; callers
// cannot tell the two apart.
type CustomerRepository struct {
	client    *db.AerospikeClient
	namespace string
	set       string
	logger    *zap.Logger
}

func NewCustomerRepository(client *db.AerospikeClient, namespace, set string, logger *zap.Logger) *CustomerRepository {
	return &CustomerRepository{
		client:    client,
		namespace: namespace,
		set:       set,
		logger:    logger,
	}
}

// Put writes the record for id, overwriting any existing one.
func (r *CustomerRepository) Put(ctx context.Context, id customer.ID, phone customer.PhoneNumber, ltv customer.LTV) error {
	handler, err := r.client.Handler()
	if err != nil {
		return err
	}

	key, kerr := aero.NewKey(r.namespace, r.set, int64(id))
	if kerr != nil {
		return fmt.Errorf("failed to build key for customer %d: %w", id, kerr)
	}

	bins := aero.BinMap{
		binPhone: phone.String(),
		binLTV:   int64(ltv),
	}
	if werr := handler.Put(nil, key, bins); werr != nil {
		return fmt.Errorf("failed to put customer %d: %w", id, werr)
	}
	return nil
}

// LTVByID fetches only the ltv bin for the given id.
func (r *CustomerRepository) LTVByID(ctx context.Context, id customer.ID) (customer.LTV, bool, error) {
	handler, err := r.client.Handler()
	if err != nil {
		return 0, false, err
	}

	key, kerr := aero.NewKey(r.namespace, r.set, int64(id))
	if kerr != nil {
		return 0, false, fmt.Errorf("failed to build key for customer %d: %w", id, kerr)
	}

	record, gerr := handler.Get(nil, key, binLTV)
	if gerr != nil {
		if gerr.Matches(types.KEY_NOT_FOUND_ERROR) {
			r.logger.Error("requested non-existent customer", zap.Int64("customer_id", int64(id)))
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("failed to get customer %d: %w", id, gerr)
	}

	ltv, err := ltvFromBins(record.Bins)
	if err != nil {
		r.logger.Error("broken ltv value for customer",
			zap.Int64("customer_id", int64(id)),
			zap.Error(err),
		)
		return 0, false, nil
	}
	return ltv, true, nil
}

// LTVByPhone runs a secondary-index equality query on the phone bin and
// takes the first match. Phone uniqueness is not enforced; with duplicates
// it is unspecified which record wins.
func (r *CustomerRepository) LTVByPhone(ctx context.Context, phone customer.PhoneNumber) (customer.LTV, bool, error) {
	handler, err := r.client.Handler()
	if err != nil {
		return 0, false, err
	}

	stmt := aero.NewStatement(r.namespace, r.set, binLTV)
	if ferr := stmt.SetFilter(aero.NewEqualFilter(binPhone, phone.String())); ferr != nil {
		return 0, false, fmt.Errorf("failed to build phone filter: %w", ferr)
	}

	recordset, qerr := handler.Query(nil, stmt)
	if qerr != nil {
		return 0, false, fmt.Errorf("failed to query by phone %s: %w", phone, qerr)
	}
	defer recordset.Close()

	for result := range recordset.Results() {
		if result.Err != nil {
			return 0, false, fmt.Errorf("failed to read query results for phone %s: %w", phone, result.Err)
		}

		ltv, err := ltvFromBins(result.Record.Bins)
		if err != nil {
			r.logger.Error("broken ltv value for phone",
				zap.String("phone", phone.String()),
				zap.Error(err),
			)
			return 0, false, nil
		}
		return ltv, true, nil
	}

	r.logger.Error("requested phone number not found", zap.String("phone", phone.String()))
	return 0, false, nil
}

// ltvFromBins extracts the stored ltv bin and revalidates it against the
// non-negative invariant.
func ltvFromBins(bins aero.BinMap) (customer.LTV, error) {
	raw, ok := bins[binLTV]
	if !ok || raw == nil {
		return 0, fmt.Errorf("ltv bin is missing")
	}

	var value int64
	switch v := raw.(type) {
	case int:
		value = int64(v)
	case int64:
		value = v
	default:
		return 0, fmt.Errorf("ltv bin has unexpected type %T", raw)
	}

	return customer.NewLTV(value)
}
