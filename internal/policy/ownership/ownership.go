package ownership

// Ownable is an interface for resources that have an owner.
type Ownable interface {
	GetUserID() uint
}

// OwnershipPolicy grants access only to the owning user. It is the
// application-side mirror of the profiles_owner row-level security policy:
// even if the database policy is bypassed (SQLite tests, superuser
// connections), the handler still refuses cross-user access.
type OwnershipPolicy struct{}

func NewOwnershipPolicy() *OwnershipPolicy {
	return &OwnershipPolicy{}
}

// Can reports whether userID may read or write the resource. A nil resource
// (list/create) is allowed; a resource that doesn't expose an owner is
// denied by default.
func (p *OwnershipPolicy) Can(userID uint, resource any) bool {
	if resource == nil {
		return true
	}
	ownable, ok := resource.(Ownable)
	if !ok {
		return false
	}
	return ownable.GetUserID() == userID
}

// OpenPolicy allows every operation. Geofence locations and employee
// assignments ship with this policy on purpose — the product treats them as
// shared operator data. Kept as a named type so the choice shows up in
// review instead of being an absent check.
type OpenPolicy struct{}

func NewOpenPolicy() *OpenPolicy { return &OpenPolicy{} }

func (p *OpenPolicy) Can(_ uint, _ any) bool { return true }
