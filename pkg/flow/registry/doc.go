// Package registry provides a generic thread-safe registry for values
// indexed by key.
//
// The engine uses it in two places: the block package registers block
// factories by node type tag, and the flow package registers handle shapes
// for the same tags. Both are write-once-at-init, read-per-run workloads,
// which is what the RWMutex layout is tuned for.
//
// # Basic Usage
//
// Create a registry and register values:
//
//	r := registry.New[string, block.Factory]()
//	r.Register("math_operation", block.NewMathOperation)
//
//	factory, ok := r.Get("math_operation")
//	if ok {
//	    b, err := factory(nodeID, cfg)
//	    // use b...
//	}
//
// All methods are safe for concurrent use. Range iterates over a snapshot
// of the registry, so registrations during iteration do not affect the
// current iteration.
package registry
