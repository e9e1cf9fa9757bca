// Package appplatform bridges attribute reads into a host-managed registry
// of dynamically registered endpoints ("content apps").
//
// A Matter node compiles a fixed set of endpoints into its data model.
// Application platforms such as TV devices register additional endpoints at
// runtime, backed by apps living in a host runtime outside the native
// process. The AttributeDelegate routes reads for those dynamic endpoints
// through an EndpointManager capability and hands everything below the
// fixed endpoint count back to the caller's default path.
//
// The host side of the capability is out of scope here: it may run
// in-process (any EndpointManager implementation) or in another process
// reached through a RemoteManager.
//
// C++ Reference: examples/tv-app/android/java/ContentAppAttributeDelegate.cpp
package appplatform
