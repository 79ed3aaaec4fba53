package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Charles-pyt/Frigo-Ai/internal/store"
)

func testCredentials(t *testing.T) (*Credentials, *store.Memory, *store.Memory) {
	t.Helper()
	durable := store.NewMemory()
	session := store.NewMemory()
	return NewCredentials(durable, session), durable, session
}

func TestRegister_EstablishesSession(t *testing.T) {
	creds, _, _ := testCredentials(t)

	require.NoError(t, creds.Register("a@b.c", "pw"))

	email, ok, err := creds.CurrentUser()
	require.NoError(t, err)
	require.True(t, ok, "registration should log the user in")
	assert.Equal(t, "a@b.c", email)
}

func TestRegister_DuplicateEmailKeepsFirst(t *testing.T) {
	creds, _, _ := testCredentials(t)

	require.NoError(t, creds.Register("a@b.c", "first"))
	err := creds.Register("a@b.c", "second")

	require.Error(t, err)
	assert.True(t, IsDuplicateEmail(err))

	// The store must retain only the first entry: logging in with the
	// first password works, the second does not.
	require.NoError(t, creds.Logout())
	assert.NoError(t, creds.Authenticate("a@b.c", "first"))
	require.NoError(t, creds.Logout())
	err = creds.Authenticate("a@b.c", "second")
	assert.True(t, IsInvalidCredentials(err))
}

func TestRegister_EmailIsCaseSensitive(t *testing.T) {
	// Exact-match semantics: differently-cased emails are distinct
	// accounts. Documented behavior, not an endorsement.
	creds, _, _ := testCredentials(t)

	require.NoError(t, creds.Register("A@b.c", "pw"))
	assert.NoError(t, creds.Register("a@b.c", "pw"))
}

func TestAuthenticate_ExactMatchRequired(t *testing.T) {
	creds, _, _ := testCredentials(t)
	require.NoError(t, creds.Register("a@b.c", "pw"))
	require.NoError(t, creds.Logout())

	tests := []struct {
		name, email, password string
	}{
		{"wrong password", "a@b.c", "PW"},
		{"wrong email", "x@b.c", "pw"},
		{"empty password", "a@b.c", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := creds.Authenticate(tt.email, tt.password)
			require.Error(t, err)
			assert.True(t, IsInvalidCredentials(err))

			_, ok, err := creds.CurrentUser()
			require.NoError(t, err)
			assert.False(t, ok, "failed login must not establish a session")
		})
	}
}

func TestAuthenticate_Success(t *testing.T) {
	creds, _, _ := testCredentials(t)
	require.NoError(t, creds.Register("a@b.c", "pw"))
	require.NoError(t, creds.Logout())

	require.NoError(t, creds.Authenticate("a@b.c", "pw"))

	email, ok, err := creds.CurrentUser()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "a@b.c", email)
}

func TestLogout_AlwaysSucceeds(t *testing.T) {
	creds, _, _ := testCredentials(t)

	// Logged out already: still fine.
	assert.NoError(t, creds.Logout())

	require.NoError(t, creds.Register("a@b.c", "pw"))
	assert.NoError(t, creds.Logout())

	_, ok, err := creds.CurrentUser()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCredentials_DurableLayout(t *testing.T) {
	// The durable scope holds the whole list as a JSON array under one
	// key; the session scope holds the bare email under another.
	creds, durable, session := testCredentials(t)
	require.NoError(t, creds.Register("a@b.c", "pw"))

	raw, ok, err := durable.Get("frigo_ia_users")
	require.NoError(t, err)
	require.True(t, ok)
	assert.JSONEq(t, `[{"email":"a@b.c","password":"pw"}]`, raw)

	marker, ok, err := session.Get("currentUser")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "a@b.c", marker)
}

func TestCredentials_SurviveSessionLoss(t *testing.T) {
	// A new session scope (fresh tab, restart) keeps registrations but
	// not the login.
	durable := store.NewMemory()
	creds := NewCredentials(durable, store.NewMemory())
	require.NoError(t, creds.Register("a@b.c", "pw"))

	fresh := NewCredentials(durable, store.NewMemory())
	_, ok, err := fresh.CurrentUser()
	require.NoError(t, err)
	assert.False(t, ok, "session must not survive scope loss")
	assert.NoError(t, fresh.Authenticate("a@b.c", "pw"))
}
