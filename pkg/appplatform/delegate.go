package appplatform

import (
	"github.com/pion/logging"

	"github.com/tonyadudas/connectedhomeip/pkg/datamodel"
)

// DelegateConfig configures an AttributeDelegate.
type DelegateConfig struct {
	// Manager is the handle to the host endpoint registry.
	// Required.
	Manager EndpointManager

	// FixedEndpointCount is the number of statically compiled endpoints.
	// Reads for endpoints below this count never reach the manager.
	FixedEndpointCount datamodel.EndpointID

	// LoggerFactory is the factory for creating loggers.
	// If nil, logging is disabled.
	LoggerFactory logging.LoggerFactory
}

// AttributeDelegate routes attribute reads between the compiled-in data
// model and the host endpoint registry.
//
// The delegate is stateless: it holds its configuration read-only and is
// safe for concurrent use. Each call is independent and allocates nothing
// that outlives it.
type AttributeDelegate struct {
	manager        EndpointManager
	fixedEndpoints datamodel.EndpointID
	log            logging.LeveledLogger
}

// NewAttributeDelegate creates a delegate from the given configuration.
// Returns ErrNoManager if no endpoint manager handle was supplied.
func NewAttributeDelegate(config DelegateConfig) (*AttributeDelegate, error) {
	if config.Manager == nil {
		return nil, ErrNoManager
	}

	d := &AttributeDelegate{
		manager:        config.Manager,
		fixedEndpoints: config.FixedEndpointCount,
	}

	if config.LoggerFactory != nil {
		d.log = config.LoggerFactory.NewLogger("appplatform")
	}

	return d, nil
}

// Read resolves an attribute read against the host endpoint registry and
// returns the textual value.
//
// Reads for statically compiled endpoints return the empty string so the
// caller falls through to its default handling. Reads for dynamic
// endpoints (at or above FixedEndpointCount) are forwarded to the manager
// exactly once; a host-side failure is logged and also yields the empty
// string. The two cases are indistinguishable to the caller, whose
// fallback policy is identical for both.
func (d *AttributeDelegate) Read(path datamodel.ConcreteAttributePath) string {
	if path.Endpoint < d.fixedEndpoints {
		// The caller supplies the default value for compiled-in endpoints.
		return ""
	}

	if d.log != nil {
		d.log.Debugf("read endpoint=%d cluster=0x%04X attribute=0x%08X",
			path.Endpoint, uint16(path.Cluster), uint32(path.Attribute))
	}

	// The conversions keep the unsigned bit patterns; the host side reads
	// the arguments back as unsigned.
	text, err := d.manager.ReadAttribute(
		int32(path.Endpoint), int32(path.Cluster), int32(path.Attribute))
	if err != nil {
		// A failing manager should not hand back a value, but a host
		// reference must never outlive the call.
		if text != nil {
			text.Release()
		}
		if d.log != nil {
			d.log.Errorf("host read failed for endpoint=%d cluster=0x%04X attribute=0x%08X: %v",
				path.Endpoint, uint16(path.Cluster), uint32(path.Attribute), err)
		}
		return ""
	}

	if text == nil {
		return ""
	}

	value := string(text.Bytes())
	text.Release()

	if d.log != nil {
		d.log.Debugf("read got response %q", value)
	}
	return value
}
