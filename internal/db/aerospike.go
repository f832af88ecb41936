// internal/db/aerospike.go
package db

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	aero "github.com/aerospike/aerospike-client-go/v7"
)

// Option keys accepted by the Aerospike client wrapper.
const (
	OptionHosts   = "hosts"   // []string of host:port
	OptionTimeout = "timeout" // time.Duration connect timeout
)

var (
	ErrOptionExists       = errors.New("duplicate client option")
	ErrHandlerUnavailable = errors.New("aerospike handler unavailable")
	ErrConnectFailed      = errors.New("aerospike connect failed")
)

// AerospikeClient builds configuration through options and holds a single
// connection. Not a pool, not a retry layer, not safe for concurrent use.
type AerospikeClient struct {
	opts   map[string]any
	client *aero.Client
}

func NewAerospikeClient() *AerospikeClient {
	return &AerospikeClient{opts: make(map[string]any)}
}

// WithOption records one configuration option. Setting the same option twice
// is an error.
func (c *AerospikeClient) WithOption(name string, value any) (*AerospikeClient, error) {
	if _, ok := c.opts[name]; ok {
		return nil, fmt.Errorf("%w: %s", ErrOptionExists, name)
	}
	c.opts[name] = value
	return c, nil
}

func (c *AerospikeClient) WithOptions(opts map[string]any) (*AerospikeClient, error) {
	for name, value := range opts {
		if _, err := c.WithOption(name, value); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Connect validates the accumulated options and dials the cluster.
func (c *AerospikeClient) Connect() error {
	policy := aero.NewClientPolicy()
	var hosts []*aero.Host

	for name, value := range c.opts {
		switch name {
		case OptionHosts:
			addrs, ok := value.([]string)
			if !ok {
				return fmt.Errorf("option %s: want []string, got %T", name, value)
			}
			parsed, err := parseHosts(addrs)
			if err != nil {
				return err
			}
			hosts = parsed
		case OptionTimeout:
			timeout, ok := value.(time.Duration)
			if !ok {
				return fmt.Errorf("option %s: want time.Duration, got %T", name, value)
			}
			policy.Timeout = timeout
		default:
			return fmt.Errorf("unsupported client option: %s", name)
		}
	}

	if len(hosts) == 0 {
		return fmt.Errorf("option %s is required", OptionHosts)
	}

	client, err := aero.NewClientWithPolicyAndHost(policy, hosts...)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrConnectFailed, err)
	}
	c.client = client
	return nil
}

// Handler returns the live client, failing fast when no connection exists or
// the connection has dropped. Every store operation acquires through here.
func (c *AerospikeClient) Handler() (*aero.Client, error) {
	if c.client == nil || !c.client.IsConnected() {
		return nil, ErrHandlerUnavailable
	}
	return c.client, nil
}

// Close drops the connection. Safe to call any number of times.
func (c *AerospikeClient) Close() {
	if c.client != nil && c.client.IsConnected() {
		c.client.Close()
	}
}

func parseHosts(addrs []string) ([]*aero.Host, error) {
	hosts := make([]*aero.Host, 0, len(addrs))
	for _, addr := range addrs {
		name, portStr, err := net.SplitHostPort(strings.TrimSpace(addr))
		if err != nil {
			return nil, fmt.Errorf("malformed host %q: %w", addr, err)
		}
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("malformed port in host %q: %w", addr, err)
		}
		hosts = append(hosts, aero.NewHost(name, port))
	}
	return hosts, nil
}
