package db

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithOptionRejectsDuplicate(t *testing.T) {
	client, err := NewAerospikeClient().WithOption(OptionHosts, []string{"127.0.0.1:3000"})
	require.NoError(t, err)

	_, err = client.WithOption(OptionHosts, []string{"10.0.0.1:3000"})
	require.ErrorIs(t, err, ErrOptionExists)
}

func TestWithOptionsRejectsDuplicateOfExistingOption(t *testing.T) {
	client, err := NewAerospikeClient().WithOption(OptionTimeout, time.Second)
	require.NoError(t, err)

	_, err = client.WithOptions(map[string]any{
		OptionTimeout: 2 * time.Second,
	})
	require.ErrorIs(t, err, ErrOptionExists)
}

func TestHandlerUnavailableBeforeConnect(t *testing.T) {
	client := NewAerospikeClient()

	handler, err := client.Handler()
	require.ErrorIs(t, err, ErrHandlerUnavailable)
	assert.Nil(t, handler)
}

func TestCloseIsIdempotent(t *testing.T) {
	client := NewAerospikeClient()

	// Never connected; closing repeatedly must not panic.
	client.Close()
	client.Close()
}

func TestConnectRejectsUnknownOption(t *testing.T) {
	client, err := NewAerospikeClient().WithOption("compression", true)
	require.NoError(t, err)

	err = client.Connect()
	require.ErrorContains(t, err, "unsupported client option")
}

func TestConnectRequiresHosts(t *testing.T) {
	err := NewAerospikeClient().Connect()
	require.ErrorContains(t, err, "hosts")
}

func TestConnectRejectsMalformedHosts(t *testing.T) {
	tests := []struct {
		name  string
		hosts []string
	}{
		{name: "missing port", hosts: []string{"127.0.0.1"}},
		{name: "non-numeric port", hosts: []string{"127.0.0.1:asd"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewAerospikeClient().WithOption(OptionHosts, tt.hosts)
			require.NoError(t, err)

			err = client.Connect()
			require.Error(t, err)
		})
	}
}

func TestConnectRejectsWrongOptionTypes(t *testing.T) {
	client, err := NewAerospikeClient().WithOption(OptionTimeout, 1000)
	require.NoError(t, err)

	err = client.Connect()
	require.ErrorContains(t, err, "want time.Duration")
}
