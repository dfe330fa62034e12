package domain

// Access policy predicates. These are pure: they look at the identity and the
// domain owner only, and callers translate a false result into a
// permission-denied error. Mutating components never call these themselves;
// gating happens before the mutation is invoked.

// MayAccessDomain reports whether the identity may administer a domain owned
// by ownerUserID.
func MayAccessDomain(identity *Identity, ownerUserID int64) bool {
	return identity.IsSuperuser || identity.UserID == ownerUserID
}

// MayReassignOwner reports whether the identity may change a domain's owner.
func MayReassignOwner(identity *Identity) bool {
	return identity.IsSuperuser
}

// MayCreateDomain reports whether the identity may create new domains.
func MayCreateDomain(identity *Identity) bool {
	return identity.IsSuperuser
}

// MayListUsers reports whether the identity may enumerate all users.
func MayListUsers(identity *Identity) bool {
	return identity.IsSuperuser
}

// MayCreateUser reports whether the identity may create users.
func MayCreateUser(identity *Identity) bool {
	return identity.IsSuperuser
}
