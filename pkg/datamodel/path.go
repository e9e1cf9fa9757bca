// Package datamodel provides the identifier vocabulary of the Matter data
// model: endpoint, cluster and attribute IDs, and the concrete paths that
// address a specific attribute instance on a node.
package datamodel

// Fundamental identifier types.
type (
	// EndpointID is a 16-bit endpoint identifier.
	EndpointID uint16

	// ClusterID is a 16-bit cluster identifier.
	ClusterID uint16

	// AttributeID is a 32-bit attribute identifier.
	AttributeID uint32
)

// ConcreteClusterPath identifies a specific cluster instance on an endpoint.
type ConcreteClusterPath struct {
	Endpoint EndpointID
	Cluster  ClusterID
}

// ConcreteAttributePath identifies a specific attribute within a cluster.
// Spec: Section 8.2.1.1
type ConcreteAttributePath struct {
	Endpoint  EndpointID
	Cluster   ClusterID
	Attribute AttributeID
}

// ClusterPath returns the cluster path portion.
func (p ConcreteAttributePath) ClusterPath() ConcreteClusterPath {
	return ConcreteClusterPath{
		Endpoint: p.Endpoint,
		Cluster:  p.Cluster,
	}
}
