// Package registry provides named instrument registration and the
// deterministic grouped view that document generation walks.
//
// # Naming
//
// Instruments are identified by a structured Name: a required group (the
// owning namespace, e.g. "api.example.Service"), an optional kind
// qualifier folded into the group key, the display name within the
// group, and an optional scope for per-instance registrations. The pair
// (group key, display name) is unique per registry; a second
// registration of the same pair fails with a CONFLICT error because it
// would produce duplicate field names in serialized output.
//
// # Typed helpers
//
// The typed accessors (Counter, Gauge, Histogram, Meter, Timer) follow
// the get-or-create convention of instrumentation libraries: they return
// the existing instrument when kinds match and panic on a kind conflict,
// which is always a programming error at the registration site.
//
//	reg := registry.New()
//	requests := reg.Counter(registry.NewName("api.example.Service", "requests"))
//	requests.Inc(1)
//
// # Grouped view
//
// GroupedView returns a point-in-time copy of the index with groups and
// entries in lexicographic order, so repeated serialization of an
// unchanged registry is byte-stable. The instruments inside the view
// remain live; only the index is copied.
package registry
