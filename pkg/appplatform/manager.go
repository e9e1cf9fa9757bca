package appplatform

// Text is a textual attribute value held by the host runtime.
//
// The value is a transient host resource: Bytes is only valid until
// Release, and Release must be called exactly once before the value goes
// out of scope. Callers that need the contents beyond that point copy them
// first.
type Text interface {
	// Bytes returns the encoded contents. The encoding is a superset of
	// 7-bit ASCII and is opaque at this layer.
	Bytes() []byte

	// Release returns the value to the host runtime.
	Release()
}

// StringText adapts a native string to the Text interface. Release is a
// no-op; use it for managers that run in-process.
type StringText string

// Bytes returns the string contents.
func (s StringText) Bytes() []byte { return []byte(s) }

// Release is a no-op.
func (s StringText) Release() {}

// EndpointManager is a non-owning handle to the host-side registry of
// dynamically registered endpoints. Its lifetime must exceed that of any
// delegate holding it.
//
// Implementations may block for an unbounded duration; the delegate places
// no deadline on the call.
type EndpointManager interface {
	// ReadAttribute invokes the host-side read operation for the given
	// attribute path. The arguments carry the bit patterns of their
	// unsigned Matter counterparts; the host treats them as unsigned.
	//
	// A non-nil error reports a failure inside the host runtime; the
	// returned Text should be nil in that case, and is released by the
	// caller if it is not. On success the returned Text must be released
	// by the caller; a nil Text with a nil error means the host had no
	// value.
	ReadAttribute(endpoint, cluster, attribute int32) (Text, error)
}

// ManagerFunc adapts a function to the EndpointManager interface.
type ManagerFunc func(endpoint, cluster, attribute int32) (Text, error)

// ReadAttribute calls f.
func (f ManagerFunc) ReadAttribute(endpoint, cluster, attribute int32) (Text, error) {
	return f(endpoint, cluster, attribute)
}

// Verify ManagerFunc implements the interface.
var _ EndpointManager = (ManagerFunc)(nil)
