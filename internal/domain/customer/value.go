// internal/domain/customer/value.go
package customer

import "fmt"

// ID is a customer identifier. Valid IDs are 1 or greater.
type ID int64

type InvalidIDError struct {
	Value int64
}

func (e *InvalidIDError) Error() string {
	return fmt.Sprintf("customer id has to be 1 or more, given is %d", e.Value)
}

// NewID validates a raw customer id.
func NewID(value int64) (ID, error) {
	if value < 1 {
		return 0, &InvalidIDError{Value: value}
	}
	return ID(value), nil
}

// LTV is a customer lifetime value. Valid values are 0 or greater.
type LTV int64

type InvalidLTVError struct {
	Value int64
}

func (e *InvalidLTVError) Error() string {
	return fmt.Sprintf("ltv has to be 0 or more, given is %d", e.Value)
}

// NewLTV validates a raw lifetime value. It is also used to revalidate
// values read back from the store, where a failure marks the record broken.
func NewLTV(value int64) (LTV, error) {
	if value < 0 {
		return 0, &InvalidLTVError{Value: value}
	}
	return LTV(value), nil
}
