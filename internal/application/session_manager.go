package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/universal-accounts-cli/internal/domain"
	"github.com/bnema/universal-accounts-cli/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ConnectionState is what the wallet-connection layer reports.
type ConnectionState struct {
	Address   string
	Connected bool
}

// SessionManager owns the lifecycle of the single live AccountSession.
type SessionManager struct {
	deriver ports.AccountDeriver
	clock   ports.Clock
	logger  *zap.Logger

	mu      sync.Mutex
	current *domain.AccountSession
}

func NewSessionManager(deriver ports.AccountDeriver, clock ports.Clock, logger *zap.Logger) *SessionManager {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &SessionManager{
		deriver: deriver,
		clock:   clock,
		logger:  logger.Named("session"),
	}
}

// Open derives the smart accounts for owner and makes the result the current
// session. A live session for the same owner and credentials is returned as is;
// any other live session is closed first.
func (m *SessionManager) Open(ctx context.Context, owner string, credentials domain.Credentials) (*domain.AccountSession, error) {
	identity, err := domain.ParseOwnerIdentity(owner)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	if err := credentials.Validate(); err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.current.Live() && m.current.Matches(identity, credentials) {
		return m.current, nil
	}
	m.closeLocked()

	accounts, err := m.deriver.DeriveSmartAccounts(ctx, credentials, identity)
	if err != nil {
		m.logger.Warn("derive smart accounts failed", zap.Stringer("owner", identity), zap.Error(err))
		return nil, fmt.Errorf("open session: %w", asTransient(err, "derive smart accounts"))
	}
	if !accounts.Complete() {
		return nil, fmt.Errorf("open session: %w", domain.Errorf(domain.KindTransient, "backend returned incomplete smart account addresses"))
	}

	session := domain.NewAccountSession(domain.SessionID(uuid.NewString()), identity, credentials, accounts, m.clock.Now())
	m.current = session
	m.logger.Info("session opened",
		zap.String("session", string(session.ID())),
		zap.Stringer("owner", identity),
		zap.String("evm", accounts.EVM.Hex()),
		zap.String("solana", accounts.Solana.String()),
	)

	return session, nil
}

// Close closes the current session, if any.
func (m *SessionManager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.closeLocked()
}

func (m *SessionManager) closeLocked() {
	if m.current == nil {
		return
	}
	m.current.Close()
	m.logger.Info("session closed", zap.String("session", string(m.current.ID())), zap.Stringer("owner", m.current.Owner()))
	m.current = nil
}

func (m *SessionManager) Current() (*domain.AccountSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.current.Err(); err != nil {
		return nil, err
	}
	return m.current, nil
}

// HandleConnection treats connection transitions as the only trigger for
// opening and closing sessions. A disconnected state always closes.
func (m *SessionManager) HandleConnection(ctx context.Context, state ConnectionState, credentials domain.Credentials) (*domain.AccountSession, error) {
	if !state.Connected || state.Address == "" {
		m.Close()
		return nil, nil
	}

	return m.Open(ctx, state.Address, credentials)
}
