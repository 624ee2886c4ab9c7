// Package filters defines the contract for packet filters: the pluggable
// units of processing every UDP packet traverses on its way between
// downstream players and upstream game servers.
//
// # Overview
//
// A filter sees each packet twice. On the read side the packet has just
// arrived from a downstream player and is headed upstream; on the write
// side a reply from an upstream endpoint is headed back downstream.
// Each side receives a context describing the packet and returns either
// a response (forward, possibly with rewritten contents) or nil (drop
// the packet silently). Dropping is not an error; it is the normal
// outcome for traffic a filter rejects.
//
// One filter instance serves every session in the process concurrently,
// so implementations keep no per-packet state and limit mutable state
// to atomics and Prometheus collectors.
//
// # Packet flow
//
// Filters compose into a Chain. Read hooks run in configured order;
// write hooks run in the reverse order, so the packet traverses the
// chain as a mirror of its inbound path:
//
//	player -> [A.Read -> B.Read] -> endpoint
//	player <- [A.Write <- B.Write] <- endpoint
//
// The read path also carries a cluster.UpstreamEndpoints view that
// filters may narrow to steer the packet toward a subset of the known
// endpoints.
//
// # Configuration
//
// Filter configuration is opaque to the chain assembler and arrives
// from one of two sources: a YAML subtree out of the proxy's config
// file (StaticConfig), or a google.protobuf.Struct pushed by the
// management plane (DynamicConfig). Each filter package converts the
// source into its own typed config, applying documented defaults for
// absent fields and rejecting out-of-range enum values with
// ConvertProtoConfigError.
//
// # Writing a filter
//
// A filter package exports a registry key constant, a typed Config, and
// a FilterFactory constructor. The factory is registered in a Registry
// under its reverse-DNS-style name and builds instances on demand:
//
//	registry := filters.NewRegistry()
//	registry.Register(compress.NewFactory(logger))
//
//	filter, err := registry.CreateFilter(compress.Name, filters.CreateFilterArgs{
//		Config:          source,
//		MetricsRegistry: promRegistry,
//	})
package filters
