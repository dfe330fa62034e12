package domain

import (
	"slices"
	"strings"
)

// expansionSeparator is the canonical separator expansions are re-serialized
// with; parsing accepts any amount of surrounding whitespace.
const expansionSeparator = ", "

// ParseExpansion splits a stored expansion into its trimmed members. Empty
// tokens are dropped so a sloppy stored value never yields phantom members.
func ParseExpansion(current string) []string {
	parts := strings.Split(current, ",")
	members := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			members = append(members, p)
		}
	}
	return members
}

// SerializeExpansion joins members back into the canonical stored form.
func SerializeExpansion(members []string) string {
	return strings.Join(members, expansionSeparator)
}

// AddExpansionMember returns the expansion with member appended. Adding a
// member that is already present returns the list unchanged apart from
// canonicalization, so the operation is idempotent.
func AddExpansionMember(current, member string) string {
	member = strings.TrimSpace(member)
	members := ParseExpansion(current)

	if slices.Contains(members, member) {
		return SerializeExpansion(members)
	}

	return SerializeExpansion(append(members, member))
}

// RemoveExpansionMember returns the expansion with every occurrence of member
// removed. fullName identifies the entry in errors.
//
// Fails with AliasComponentNotFoundError if nothing was removed, and with
// AliasWouldBecomeEmptyError if removal would leave no members; an alias or
// list must always resolve to at least one member.
func RemoveExpansionMember(current, member, fullName string) (string, error) {
	member = strings.TrimSpace(member)
	members := ParseExpansion(current)

	kept := make([]string, 0, len(members))
	for _, m := range members {
		if m != member {
			kept = append(kept, m)
		}
	}

	if len(kept) == len(members) {
		return "", &AliasComponentNotFoundError{Member: member}
	}
	if len(kept) == 0 {
		return "", &AliasWouldBecomeEmptyError{Entry: fullName}
	}

	return SerializeExpansion(kept), nil
}
