package domain

import (
	"fmt"
	"strings"

	"github.com/allisson/mailadmin/internal/errors"
)

// MailEntry is one addressable unit within a mail domain. Kind is immutable
// after creation; only the kind-appropriate payload field and existence are
// mutable. Construct entries through the New* functions so an entry never
// carries a payload its kind forbids.
type MailEntry struct {
	ID       int64
	DomainID int64
	Name     string
	Kind     Kind
	// Secret is the hashed login secret; only login/account entries carry it.
	Secret string
	// Expansion is the member list for alias/list entries, or the free-text
	// reason for bouncer/blackhole entries.
	Expansion string
}

// FullName renders the stable "{local-part}@{domain-name}" identifier used in
// every error path.
func FullName(name, domainName string) string {
	return fmt.Sprintf("%s@%s", name, domainName)
}

// NewLogin creates a login entry. secret must already be encoded.
func NewLogin(domainID int64, name, secret string) *MailEntry {
	return &MailEntry{DomainID: domainID, Name: name, Kind: KindLogin, Secret: secret}
}

// NewAccount creates an account entry. secret must already be encoded.
func NewAccount(domainID int64, name, secret string) *MailEntry {
	return &MailEntry{DomainID: domainID, Name: name, Kind: KindAccount, Secret: secret}
}

// NewAlias creates an alias entry. The expansion is canonicalized and must
// hold at least one member.
func NewAlias(domainID int64, name, expansion string) (*MailEntry, error) {
	return newExpansionEntry(domainID, name, KindAlias, expansion)
}

// NewList creates a mailing list entry. The expansion is canonicalized and
// must hold at least one member.
func NewList(domainID int64, name, expansion string) (*MailEntry, error) {
	return newExpansionEntry(domainID, name, KindList, expansion)
}

func newExpansionEntry(domainID int64, name string, kind Kind, expansion string) (*MailEntry, error) {
	members := ParseExpansion(expansion)
	if len(members) == 0 {
		return nil, errors.Wrap(errors.ErrInvalidInput, "expansion must hold at least one member")
	}
	return &MailEntry{
		DomainID:  domainID,
		Name:      name,
		Kind:      kind,
		Expansion: SerializeExpansion(members),
	}, nil
}

// NewBouncer creates a bounce sink entry with a free-text reason.
func NewBouncer(domainID int64, name, reason string) *MailEntry {
	return &MailEntry{DomainID: domainID, Name: name, Kind: KindBouncer, Expansion: reason}
}

// NewBlackhole creates a discard sink entry with a free-text reason.
func NewBlackhole(domainID int64, name, reason string) *MailEntry {
	return &MailEntry{DomainID: domainID, Name: name, Kind: KindBlackhole, Expansion: reason}
}

// Edit is one mutation of an entry's payload. The concrete type selects the
// operation; Apply rejects edits the entry's kind doesn't admit.
type Edit interface {
	isEdit()
}

// SetSecret replaces the stored secret. The value must already be encoded.
type SetSecret struct{ Secret string }

// SetExpansion replaces the whole member list.
type SetExpansion struct{ Value string }

// AddMember appends one member to the expansion if not already present.
type AddMember struct{ Member string }

// RemoveMember removes one member from the expansion.
type RemoveMember struct{ Member string }

// SetReason replaces the free-text reason of a bounce or discard sink.
type SetReason struct{ Reason string }

func (SetSecret) isEdit()    {}
func (SetExpansion) isEdit() {}
func (AddMember) isEdit()    {}
func (RemoveMember) isEdit() {}
func (SetReason) isEdit()    {}

// Apply performs one edit in place. fullName identifies the entry in errors.
// Legality is decided by the kind tag alone; it never inspects which payload
// fields happen to be populated.
func (e *MailEntry) Apply(edit Edit, fullName string) error {
	switch op := edit.(type) {
	case SetSecret:
		if !e.Kind.BearsSecret() {
			return &NotLoginOrAccountError{Entry: fullName}
		}
		e.Secret = op.Secret
		return nil

	case SetExpansion:
		if !e.Kind.BearsExpansion() {
			return &NotAliasError{Entry: fullName}
		}
		members := ParseExpansion(op.Value)
		if len(members) == 0 {
			return &AliasWouldBecomeEmptyError{Entry: fullName}
		}
		e.Expansion = SerializeExpansion(members)
		return nil

	case AddMember:
		if !e.Kind.BearsExpansion() {
			return &NotAliasError{Entry: fullName}
		}
		e.Expansion = AddExpansionMember(e.Expansion, op.Member)
		return nil

	case RemoveMember:
		if !e.Kind.BearsExpansion() {
			return &NotAliasError{Entry: fullName}
		}
		updated, err := RemoveExpansionMember(e.Expansion, op.Member, fullName)
		if err != nil {
			return err
		}
		e.Expansion = updated
		return nil

	case SetReason:
		if !e.Kind.BearsReason() {
			return &NotReasonBearingError{Entry: fullName}
		}
		e.Expansion = strings.TrimSpace(op.Reason)
		return nil

	default:
		return errors.Wrap(errors.ErrInvalidInput, "unknown entry edit")
	}
}
