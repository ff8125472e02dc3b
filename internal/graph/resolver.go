package graph

import (
	"github.com/campusbase/registrar/internal/pubsub"
	"github.com/campusbase/registrar/internal/registry"
)

//go:generate go tool gqlgen generate

// Resolver is the root resolver for the GraphQL schema. It holds the registry
// for data access and the broadcaster feeding the studentEnrolled subscription.
type Resolver struct {
	Registry *registry.Registry
	Events   *pubsub.Broadcaster
}
