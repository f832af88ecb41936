// internal/domain/customer/phone.go
package customer

import (
	"fmt"
	"unicode"
)

// PhonePolicy checks a raw phone string. A failing check reports its reason.
type PhonePolicy interface {
	Check(phone string) (ok bool, reason string)
}

// PolicyPipeline runs its checks in order and stops at the first failure,
// propagating that check's reason.
type PolicyPipeline struct {
	policies []PhonePolicy
}

func NewPolicyPipeline(policy PhonePolicy, policies ...PhonePolicy) *PolicyPipeline {
	return &PolicyPipeline{policies: append([]PhonePolicy{policy}, policies...)}
}

func (p *PolicyPipeline) Check(phone string) (bool, string) {
	for _, policy := range p.policies {
		if ok, reason := policy.Check(phone); !ok {
			return false, reason
		}
	}
	return true, ""
}

// NonEmptyPhone rejects the empty string.
type NonEmptyPhone struct{}

func (NonEmptyPhone) Check(phone string) (bool, string) {
	if phone == "" {
		return false, "empty phone number"
	}
	return true, ""
}

// PrintablePhone rejects strings containing non-printable runes.
type PrintablePhone struct{}

func (PrintablePhone) Check(phone string) (bool, string) {
	for _, r := range phone {
		if !unicode.IsPrint(r) {
			return false, "non-printable characters in phone number"
		}
	}
	return true, ""
}

// DefaultPhonePolicy is the pipeline applied to every customer phone number:
// non-empty first, then printable-only.
func DefaultPhonePolicy() PhonePolicy {
	return NewPolicyPipeline(NonEmptyPhone{}, PrintablePhone{})
}

type PhoneFormatError struct {
	Reason string
}

func (e *PhoneFormatError) Error() string {
	return fmt.Sprintf("wrong phone number format: %s", e.Reason)
}

// PhoneNumber is a phone string that passed its policy at construction and
// is immutable afterwards.
type PhoneNumber struct {
	value string
}

func NewPhoneNumber(phone string, policy PhonePolicy) (PhoneNumber, error) {
	if ok, reason := policy.Check(phone); !ok {
		return PhoneNumber{}, &PhoneFormatError{Reason: reason}
	}
	return PhoneNumber{value: phone}, nil
}

func (p PhoneNumber) String() string {
	return p.value
}
