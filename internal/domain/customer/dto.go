// internal/domain/customer/dto.go
package customer

// Range and format rules live in the value objects, so the request carries
// raw scalars and the service reports the violation.
type AddCustomerRequest struct {
	CustomerID  int64  `json:"customer_id"`
	PhoneNumber string `json:"phone_number"`
	LTV         int64  `json:"ltv"`
}

type AddCustomerResponse struct {
	CustomerID int64 `json:"customer_id"`
}

type LTVResponse struct {
	LTV int64 `json:"ltv"`
}
