package policy

import "github.com/Travelintrips/HRD/internal/policy/ownership"

// The ownership types live in the leaf package internal/policy/ownership so
// that handlers can depend on them without importing this package (which
// imports handlers for router wiring). The aliases below keep the original
// policy.* names as the same types.

// Ownable is an interface for resources that have an owner.
type Ownable = ownership.Ownable

// OwnershipPolicy grants access only to the owning user.
type OwnershipPolicy = ownership.OwnershipPolicy

func NewOwnershipPolicy() *OwnershipPolicy {
	return ownership.NewOwnershipPolicy()
}

// OpenPolicy allows every operation.
type OpenPolicy = ownership.OpenPolicy

func NewOpenPolicy() *OpenPolicy { return ownership.NewOpenPolicy() }
