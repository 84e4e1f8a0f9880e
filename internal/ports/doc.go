// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports are implemented by the application layer and called by the
// composition root. Client ports are implemented by outbound adapters (the
// descriptor registry, the value-resolution API client) and called by the
// application layer.
package ports
