package customer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rejectAll struct {
	reason string
}

func (p rejectAll) Check(string) (bool, string) { return false, p.reason }

type recordingPolicy struct {
	called bool
}

func (p *recordingPolicy) Check(string) (bool, string) {
	p.called = true
	return true, ""
}

func TestDefaultPhonePolicy(t *testing.T) {
	tests := []struct {
		name       string
		phone      string
		wantReason string
	}{
		{name: "plain number", phone: "555-0100"},
		{name: "number with spaces", phone: "+1 555 0100"},
		{name: "empty", phone: "", wantReason: "empty phone number"},
		{name: "embedded newline", phone: "555\n0100", wantReason: "non-printable characters in phone number"},
		{name: "nul byte", phone: "555\x000100", wantReason: "non-printable characters in phone number"},
	}

	policy := DefaultPhonePolicy()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := policy.Check(tt.phone)
			assert.Equal(t, tt.wantReason == "", ok)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}

func TestPolicyPipelineStopsAtFirstFailure(t *testing.T) {
	second := &recordingPolicy{}
	pipeline := NewPolicyPipeline(rejectAll{reason: "first check failed"}, second)

	ok, reason := pipeline.Check("555-0100")

	assert.False(t, ok)
	assert.Equal(t, "first check failed", reason)
	assert.False(t, second.called, "pipeline must not run checks after a failure")
}

func TestPolicyPipelineRunsChecksInOrder(t *testing.T) {
	first := &recordingPolicy{}
	pipeline := NewPolicyPipeline(first, rejectAll{reason: "second check failed"})

	ok, reason := pipeline.Check("555-0100")

	assert.False(t, ok)
	assert.Equal(t, "second check failed", reason)
	assert.True(t, first.called)
}

func TestNewPhoneNumber(t *testing.T) {
	t.Run("valid phone is frozen", func(t *testing.T) {
		phone, err := NewPhoneNumber("555-0100", DefaultPhonePolicy())
		require.NoError(t, err)
		assert.Equal(t, "555-0100", phone.String())
	})

	t.Run("empty phone reports the empty reason", func(t *testing.T) {
		_, err := NewPhoneNumber("", DefaultPhonePolicy())
		var formatErr *PhoneFormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, "empty phone number", formatErr.Reason)
	})

	t.Run("non-printable phone reports the printable reason", func(t *testing.T) {
		_, err := NewPhoneNumber("555\t0100", DefaultPhonePolicy())
		var formatErr *PhoneFormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, "non-printable characters in phone number", formatErr.Reason)
	})

	t.Run("alternate policies can be substituted", func(t *testing.T) {
		_, err := NewPhoneNumber("555-0100", rejectAll{reason: "blocked"})
		var formatErr *PhoneFormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, "blocked", formatErr.Reason)
	})
}
