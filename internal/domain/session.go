package domain

import (
	"sync/atomic"
	"time"
)

type SessionID string

// AccountSession is a universal account handle bound to one owner identity.
// Its addresses stay readable after Close, but every operation that checks Err
// fails once the session is closed.
type AccountSession struct {
	id          SessionID
	owner       OwnerIdentity
	credentials Credentials
	accounts    SmartAccounts
	openedAt    time.Time
	closed      atomic.Bool
}

func NewAccountSession(id SessionID, owner OwnerIdentity, credentials Credentials, accounts SmartAccounts, openedAt time.Time) *AccountSession {
	return &AccountSession{
		id:          id,
		owner:       owner,
		credentials: credentials,
		accounts:    accounts,
		openedAt:    openedAt,
	}
}

func (s *AccountSession) ID() SessionID { return s.id }

func (s *AccountSession) Owner() OwnerIdentity { return s.owner }

func (s *AccountSession) Credentials() Credentials { return s.credentials }

func (s *AccountSession) SmartAccounts() SmartAccounts { return s.accounts }

func (s *AccountSession) OpenedAt() time.Time { return s.openedAt }

func (s *AccountSession) Close() {
	s.closed.Store(true)
}

func (s *AccountSession) Live() bool {
	return s != nil && !s.closed.Load()
}

// Err returns a precondition error when s is nil or closed.
func (s *AccountSession) Err() error {
	if s == nil {
		return Errorf(KindPrecondition, "no account session is open")
	}
	if s.closed.Load() {
		return NewError(KindPrecondition, CodeSessionClosed, "account session "+string(s.id)+" is closed", nil)
	}
	return nil
}

// Matches reports whether s was opened for the same owner and credentials.
func (s *AccountSession) Matches(owner OwnerIdentity, credentials Credentials) bool {
	return s.owner == owner && s.credentials == credentials
}
