package account

import (
	"encoding/json"
	"fmt"

	"github.com/Charles-pyt/Frigo-Ai/internal/store"
)

// Storage keys. The names are inherited from the original deployment's
// local storage and kept so an existing credential store stays readable.
const (
	usersKey   = "frigo_ia_users"
	sessionKey = "currentUser"
)

// Credential is one registered email/password pair. Email is the unique
// key; no two stored credentials share one.
type Credential struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Credentials is the registered-user store plus the session marker.
//
// durable holds the full credential list as a JSON array under usersKey.
// session holds the logged-in email as a bare string under sessionKey.
type Credentials struct {
	durable store.KV
	session store.KV
}

// NewCredentials creates a credential store over the two scopes.
func NewCredentials(durable, session store.KV) *Credentials {
	return &Credentials{durable: durable, session: session}
}

// Register persists a new credential and establishes a session for it.
//
// Fails with CodeDuplicateEmail when the email is already registered;
// the store is left untouched in that case. Email comparison is exact
// and case-sensitive.
func (c *Credentials) Register(email, password string) error {
	users, err := c.load()
	if err != nil {
		return err
	}

	for _, u := range users {
		if u.Email == email {
			return &Error{
				Code:    CodeDuplicateEmail,
				Message: "this email is already in use",
				Email:   email,
			}
		}
	}

	users = append(users, Credential{Email: email, Password: password})
	if err := c.save(users); err != nil {
		return err
	}

	return c.establishSession(email)
}

// Authenticate establishes a session when a stored entry matches both
// email and password exactly; fails with CodeInvalidCredentials otherwise.
func (c *Credentials) Authenticate(email, password string) error {
	users, err := c.load()
	if err != nil {
		return err
	}

	for _, u := range users {
		if u.Email == email && u.Password == password {
			return c.establishSession(email)
		}
	}

	return &Error{
		Code:    CodeInvalidCredentials,
		Message: "incorrect email or password",
	}
}

// Logout clears the session marker unconditionally. Always succeeds,
// logged in or not.
func (c *Credentials) Logout() error {
	if err := c.session.Delete(sessionKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// CurrentUser returns the logged-in email, with ok=false when no session
// is active. The marker is trusted as-is; it is not re-checked against
// the registered list after login.
func (c *Credentials) CurrentUser() (string, bool, error) {
	email, ok, err := c.session.Get(sessionKey)
	if err != nil {
		return "", false, fmt.Errorf("read session: %w", err)
	}
	return email, ok, nil
}

func (c *Credentials) establishSession(email string) error {
	if err := c.session.Set(sessionKey, email); err != nil {
		return fmt.Errorf("establish session: %w", err)
	}
	return nil
}

// load reads the credential list. An absent key is an empty list.
func (c *Credentials) load() ([]Credential, error) {
	raw, ok, err := c.durable.Get(usersKey)
	if err != nil {
		return nil, fmt.Errorf("read credentials: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var users []Credential
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, fmt.Errorf("decode credentials: %w", err)
	}
	return users, nil
}

func (c *Credentials) save(users []Credential) error {
	raw, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("encode credentials: %w", err)
	}
	if err := c.durable.Set(usersKey, string(raw)); err != nil {
		return fmt.Errorf("write credentials: %w", err)
	}
	return nil
}
