// Package cluster models the upstream game servers a proxy can forward
// traffic to.
//
// An Endpoints value is the full set of known servers. It is built once
// per configuration update, never mutated afterwards, and shared by
// every packet in flight. Each packet that enters the filter pipeline
// receives its own UpstreamEndpoints view over that shared set; filters
// narrow the view with Keep and Retain to decide where the packet may
// be forwarded. The view is guaranteed to stay non-empty: operations
// that would empty it fail and leave the view untouched, so the caller
// can drop the packet instead of routing it nowhere.
package cluster
