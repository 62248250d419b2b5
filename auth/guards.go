package auth

import (
	cms "github.com/goliatone/go-cms"
)

// Guard is a precondition on a resolved identity. Guards compose by
// conjunction; a protected operation declares the ordered list it
// requires and CheckAll evaluates them before the handler runs.
type Guard interface {
	Check(identity *cms.User) error
}

// GuardFunc adapts a function to the Guard interface.
type GuardFunc func(identity *cms.User) error

func (f GuardFunc) Check(identity *cms.User) error {
	return f(identity)
}

// Authenticated passes when resolution produced an identity.
var Authenticated Guard = GuardFunc(func(identity *cms.User) error {
	if identity == nil {
		return ErrNotAuthenticated
	}
	return nil
})

// Active rejects disabled accounts even when they present a structurally
// valid, unexpired token.
var Active Guard = GuardFunc(func(identity *cms.User) error {
	if identity == nil {
		return ErrNotAuthenticated
	}
	if !identity.IsActive {
		return ErrIdentityInactive
	}
	return nil
})

// Administrator requires the superuser flag.
var Administrator Guard = GuardFunc(func(identity *cms.User) error {
	if identity == nil {
		return ErrNotAuthenticated
	}
	if !identity.IsSuperuser {
		return ErrForbidden
	}
	return nil
})

// OwnerOrAdmin passes when the identity owns the resource or carries the
// superuser flag.
func OwnerOrAdmin(ownerUsername string) Guard {
	return GuardFunc(func(identity *cms.User) error {
		if identity == nil {
			return ErrNotAuthenticated
		}
		if identity.Username == ownerUsername || identity.IsSuperuser {
			return nil
		}
		return ErrForbidden
	})
}

// NotSelf forbids applying a destructive action to the caller's own
// record, superuser flag notwithstanding.
func NotSelf(targetUsername string) Guard {
	return GuardFunc(func(identity *cms.User) error {
		if identity == nil {
			return ErrNotAuthenticated
		}
		if identity.Username == targetUsername {
			return ErrSelfAction
		}
		return nil
	})
}

// CheckAll evaluates guards in order and returns the first failure.
func CheckAll(identity *cms.User, guards ...Guard) error {
	for _, guard := range guards {
		if guard == nil {
			continue
		}
		if err := guard.Check(identity); err != nil {
			return err
		}
	}
	return nil
}
