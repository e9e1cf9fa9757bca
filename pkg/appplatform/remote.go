package appplatform

import (
	"net"
	"sync"

	"github.com/pion/logging"
)

// RemoteManagerConfig configures a RemoteManager.
type RemoteManagerConfig struct {
	// Conn carries framed read requests to the host runtime.
	// Required. The manager takes ownership and closes it on Close.
	Conn net.Conn

	// LoggerFactory is the factory for creating loggers.
	// If nil, logging is disabled.
	LoggerFactory logging.LoggerFactory
}

// RemoteManager is an EndpointManager whose registry lives in another
// process. Requests and responses travel over a single connection using
// the wire format described in wire.go, so the host end can be
// implemented in any language.
//
// One request is outstanding at a time; concurrent callers serialize on
// the connection. The manager places no deadline on the host: a host that
// never answers blocks the caller.
type RemoteManager struct {
	conn net.Conn
	log  logging.LeveledLogger

	mu     sync.Mutex
	closed bool
}

// NewRemoteManager creates a manager speaking over the given connection.
// Returns ErrNoConn if no connection was supplied.
func NewRemoteManager(config RemoteManagerConfig) (*RemoteManager, error) {
	if config.Conn == nil {
		return nil, ErrNoConn
	}

	m := &RemoteManager{conn: config.Conn}

	if config.LoggerFactory != nil {
		m.log = config.LoggerFactory.NewLogger("appplatform-remote")
	}

	return m, nil
}

// ReadAttribute implements EndpointManager.
func (m *RemoteManager) ReadAttribute(endpoint, cluster, attribute int32) (Text, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil, ErrClosed
	}

	req := readRequest{Endpoint: endpoint, Cluster: cluster, Attribute: attribute}
	if err := writeFrame(m.conn, req.encode()); err != nil {
		return nil, err
	}

	payload, err := readFrame(m.conn)
	if err != nil {
		return nil, err
	}

	value, err := decodeReadResponse(payload)
	if err != nil {
		if m.log != nil {
			m.log.Warnf("host response for endpoint=%d: %v", endpoint, err)
		}
		return nil, err
	}

	return StringText(value), nil
}

// Close closes the connection to the host. Subsequent reads return
// ErrClosed.
func (m *RemoteManager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return nil
	}
	m.closed = true
	return m.conn.Close()
}

// Verify RemoteManager implements the interface.
var _ EndpointManager = (*RemoteManager)(nil)
