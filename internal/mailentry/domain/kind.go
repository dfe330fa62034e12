// Package domain defines mail entries and the rules governing their mutation.
//
// An entry is an addressable mail-handling unit within a domain. Its kind is
// fixed at creation and decides which payload field it carries: login and
// account entries hold a hashed secret, alias and list entries hold a member
// expansion, bouncer and blackhole entries hold a free-text reason. The kind
// tag, never field presence, is the source of truth for what an entry may do.
package domain

// Kind discriminates the mail entry variants.
type Kind string

const (
	// KindLogin is a mailbox a user can authenticate against.
	KindLogin Kind = "login"

	// KindAccount is a mailbox that is also a site account.
	KindAccount Kind = "account"

	// KindAlias forwards mail to its expansion members.
	KindAlias Kind = "alias"

	// KindList is a mailing list expanding to its members.
	KindList Kind = "list"

	// KindBouncer rejects mail with its stored reason.
	KindBouncer Kind = "bouncer"

	// KindBlackhole silently discards mail; the reason documents why.
	KindBlackhole Kind = "blackhole"
)

// Valid reports whether k is a known entry kind.
func (k Kind) Valid() bool {
	switch k {
	case KindLogin, KindAccount, KindAlias, KindList, KindBouncer, KindBlackhole:
		return true
	}
	return false
}

// BearsSecret reports whether entries of this kind carry a hashed secret.
func (k Kind) BearsSecret() bool {
	return k == KindLogin || k == KindAccount
}

// BearsExpansion reports whether entries of this kind carry a member expansion.
func (k Kind) BearsExpansion() bool {
	return k == KindAlias || k == KindList
}

// BearsReason reports whether entries of this kind carry a free-text reason.
func (k Kind) BearsReason() bool {
	return k == KindBouncer || k == KindBlackhole
}
