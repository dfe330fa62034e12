package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/mailadmin/internal/errors"
)

func TestKind(t *testing.T) {
	t.Run("valid kinds", func(t *testing.T) {
		for _, k := range []Kind{KindLogin, KindAccount, KindAlias, KindList, KindBouncer, KindBlackhole} {
			assert.True(t, k.Valid(), string(k))
		}
		assert.False(t, Kind("mailbox").Valid())
	})

	t.Run("payload predicates", func(t *testing.T) {
		assert.True(t, KindLogin.BearsSecret())
		assert.True(t, KindAccount.BearsSecret())
		assert.False(t, KindAlias.BearsSecret())

		assert.True(t, KindAlias.BearsExpansion())
		assert.True(t, KindList.BearsExpansion())
		assert.False(t, KindBouncer.BearsExpansion())

		assert.True(t, KindBouncer.BearsReason())
		assert.True(t, KindBlackhole.BearsReason())
		assert.False(t, KindLogin.BearsReason())
	})
}

func TestFullName(t *testing.T) {
	assert.Equal(t, "info@example.com", FullName("info", "example.com"))
}

func TestNewAlias(t *testing.T) {
	t.Run("canonicalizes the expansion", func(t *testing.T) {
		entry, err := NewAlias(1, "team", " a@x.org ,,b@x.org ")
		require.NoError(t, err)
		assert.Equal(t, KindAlias, entry.Kind)
		assert.Equal(t, "a@x.org, b@x.org", entry.Expansion)
	})

	t.Run("rejects an empty expansion", func(t *testing.T) {
		_, err := NewAlias(1, "team", " , ")
		require.Error(t, err)
		assert.ErrorIs(t, err, errors.ErrInvalidInput)
	})
}

func TestApplySetSecret(t *testing.T) {
	t.Run("login accepts a new secret", func(t *testing.T) {
		entry := NewLogin(1, "alice", "old-hash")
		require.NoError(t, entry.Apply(SetSecret{Secret: "new-hash"}, "alice@x.org"))
		assert.Equal(t, "new-hash", entry.Secret)
	})

	t.Run("alias rejects a secret by kind, not by payload shape", func(t *testing.T) {
		entry, err := NewAlias(1, "team", "a@x.org")
		require.NoError(t, err)
		// Even with a stray secret populated, the kind tag decides.
		entry.Secret = "stray"

		err = entry.Apply(SetSecret{Secret: "new-hash"}, "team@x.org")
		require.Error(t, err)

		var notLogin *NotLoginOrAccountError
		require.ErrorAs(t, err, &notLogin)
		assert.Equal(t, "team@x.org", notLogin.Entry)
		assert.ErrorIs(t, err, errors.ErrInvalidInput)
	})
}

func TestApplyExpansionEdits(t *testing.T) {
	t.Run("set expansion canonicalizes", func(t *testing.T) {
		entry, err := NewList(1, "all", "a@x.org")
		require.NoError(t, err)

		require.NoError(t, entry.Apply(SetExpansion{Value: "b@x.org ,c@x.org"}, "all@x.org"))
		assert.Equal(t, "b@x.org, c@x.org", entry.Expansion)
	})

	t.Run("set expansion rejects an empty list", func(t *testing.T) {
		entry, err := NewAlias(1, "team", "a@x.org")
		require.NoError(t, err)

		err = entry.Apply(SetExpansion{Value: " "}, "team@x.org")
		var empty *AliasWouldBecomeEmptyError
		require.ErrorAs(t, err, &empty)
	})

	t.Run("add member is idempotent", func(t *testing.T) {
		entry, err := NewAlias(1, "team", "a@x.org")
		require.NoError(t, err)

		require.NoError(t, entry.Apply(AddMember{Member: "b@x.org"}, "team@x.org"))
		require.NoError(t, entry.Apply(AddMember{Member: "b@x.org"}, "team@x.org"))
		assert.Equal(t, "a@x.org, b@x.org", entry.Expansion)
	})

	t.Run("remove member surfaces the editor errors", func(t *testing.T) {
		entry, err := NewAlias(1, "team", "a@x.org, b@x.org")
		require.NoError(t, err)

		err = entry.Apply(RemoveMember{Member: "c@x.org"}, "team@x.org")
		var notFound *AliasComponentNotFoundError
		require.ErrorAs(t, err, &notFound)

		require.NoError(t, entry.Apply(RemoveMember{Member: "b@x.org"}, "team@x.org"))

		err = entry.Apply(RemoveMember{Member: "a@x.org"}, "team@x.org")
		var wouldEmpty *AliasWouldBecomeEmptyError
		require.ErrorAs(t, err, &wouldEmpty)
		assert.Equal(t, "a@x.org", entry.Expansion)
	})

	t.Run("login rejects expansion edits", func(t *testing.T) {
		entry := NewLogin(1, "alice", "hash")

		for _, edit := range []Edit{
			SetExpansion{Value: "a@x.org"},
			AddMember{Member: "a@x.org"},
			RemoveMember{Member: "a@x.org"},
		} {
			err := entry.Apply(edit, "alice@x.org")
			var notAlias *NotAliasError
			require.ErrorAs(t, err, &notAlias)
			assert.Equal(t, "alice@x.org", notAlias.Entry)
		}
	})
}

func TestApplySetReason(t *testing.T) {
	t.Run("bouncer accepts a reason", func(t *testing.T) {
		entry := NewBouncer(1, "old-sales", "address retired")
		require.NoError(t, entry.Apply(SetReason{Reason: " mailbox moved "}, "old-sales@x.org"))
		assert.Equal(t, "mailbox moved", entry.Expansion)
	})

	t.Run("alias rejects a reason", func(t *testing.T) {
		entry, err := NewAlias(1, "team", "a@x.org")
		require.NoError(t, err)

		err = entry.Apply(SetReason{Reason: "gone"}, "team@x.org")
		var notReason *NotReasonBearingError
		require.ErrorAs(t, err, &notReason)
	})
}
