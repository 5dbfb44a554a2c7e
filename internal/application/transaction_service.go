package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/universal-accounts-cli/internal/domain"
	"github.com/bnema/universal-accounts-cli/internal/ports"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

// TransactionService builds universal transactions and submits signed ones.
// A root hash is submitted at most once; retries must go through Build again.
type TransactionService struct {
	relay  ports.TransactionRelay
	logger *zap.Logger

	mu        sync.Mutex
	submitted map[common.Hash]struct{}
}

func NewTransactionService(relay ports.TransactionRelay, logger *zap.Logger) *TransactionService {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &TransactionService{
		relay:     relay,
		logger:    logger.Named("transactions"),
		submitted: map[common.Hash]struct{}{},
	}
}

func (s *TransactionService) Build(ctx context.Context, session *domain.AccountSession, intent domain.TransactionIntent) (domain.UnsignedUniversalTransaction, error) {
	if err := session.Err(); err != nil {
		return domain.UnsignedUniversalTransaction{}, fmt.Errorf("build universal transaction: %w", err)
	}
	if err := intent.Validate(); err != nil {
		return domain.UnsignedUniversalTransaction{}, fmt.Errorf("build universal transaction: %w", err)
	}

	built, err := s.relay.CreateUniversalTransaction(ctx, session.Credentials(), session.Owner(), intent)
	if err != nil {
		s.logger.Warn("create universal transaction failed",
			zap.Stringer("owner", session.Owner()),
			zap.Stringer("chain", intent.Chain),
			zap.Error(err),
		)
		return domain.UnsignedUniversalTransaction{}, fmt.Errorf("build universal transaction: %w", asTransient(err, "create universal transaction"))
	}
	if built.RootHash == (common.Hash{}) {
		return domain.UnsignedUniversalTransaction{}, fmt.Errorf("build universal transaction: %w", domain.Errorf(domain.KindTransient, "backend returned an empty root hash"))
	}
	if err := session.Err(); err != nil {
		return domain.UnsignedUniversalTransaction{}, fmt.Errorf("build universal transaction: %w", err)
	}

	tx := domain.NewUnsignedUniversalTransaction(session, intent.Chain, built.BuildID, built.RootHash, built.Funding, built.ExpiresAt)
	s.logger.Info("universal transaction built",
		zap.Stringer("owner", session.Owner()),
		zap.Stringer("chain", intent.Chain),
		zap.String("root_hash", tx.RootHash.Hex()),
		zap.Int("funding_legs", len(tx.Funding)),
	)

	return tx, nil
}

// Sign asks signer to sign the raw root hash bytes for the session owner.
func (s *TransactionService) Sign(ctx context.Context, signer ports.Signer, tx domain.UnsignedUniversalTransaction) ([]byte, error) {
	session := tx.Session()
	if err := session.Err(); err != nil {
		return nil, fmt.Errorf("sign universal transaction: %w", err)
	}
	if tx.RootHash == (common.Hash{}) {
		return nil, fmt.Errorf("sign universal transaction: %w", domain.Errorf(domain.KindValidation, "transaction has no root hash"))
	}

	signature, err := signer.SignMessage(ctx, session.Owner(), tx.RootHash.Bytes())
	if err != nil {
		return nil, fmt.Errorf("sign universal transaction: %w", classify(err, domain.KindRejection, "signer refused the root hash"))
	}
	if len(signature) == 0 {
		return nil, fmt.Errorf("sign universal transaction: %w", domain.Errorf(domain.KindValidation, "signer returned an empty signature"))
	}

	return signature, nil
}

func (s *TransactionService) Submit(ctx context.Context, tx domain.UnsignedUniversalTransaction, signature []byte) (domain.SubmissionResult, error) {
	if err := tx.Session().Err(); err != nil {
		return domain.SubmissionResult{}, fmt.Errorf("submit universal transaction: %w", err)
	}
	if tx.RootHash == (common.Hash{}) {
		return domain.SubmissionResult{}, fmt.Errorf("submit universal transaction: %w", domain.Errorf(domain.KindValidation, "transaction has no root hash"))
	}
	if len(signature) == 0 {
		return domain.SubmissionResult{}, fmt.Errorf("submit universal transaction: %w", domain.Errorf(domain.KindValidation, "signature is empty"))
	}
	if err := s.claim(tx.RootHash); err != nil {
		return domain.SubmissionResult{}, fmt.Errorf("submit universal transaction: %w", err)
	}

	session := tx.Session()
	transactionID, err := s.relay.SendTransaction(ctx, session.Credentials(), tx.RootHash, signature)
	if err != nil {
		s.logger.Warn("send transaction failed",
			zap.Stringer("owner", session.Owner()),
			zap.String("root_hash", tx.RootHash.Hex()),
			zap.Error(err),
		)
		return domain.SubmissionResult{}, fmt.Errorf("submit universal transaction: %w", asTransient(err, "send transaction"))
	}
	if transactionID == "" {
		return domain.SubmissionResult{}, fmt.Errorf("submit universal transaction: %w", domain.Errorf(domain.KindTransient, "backend returned an empty transaction id"))
	}

	s.logger.Info("universal transaction submitted",
		zap.Stringer("owner", session.Owner()),
		zap.String("root_hash", tx.RootHash.Hex()),
		zap.String("transaction_id", transactionID),
	)

	return domain.SubmissionResult{TransactionID: transactionID}, nil
}

// Execute runs build, sign and submit for one intent in order.
func (s *TransactionService) Execute(ctx context.Context, session *domain.AccountSession, intent domain.TransactionIntent, signer ports.Signer) (domain.SubmissionResult, error) {
	tx, err := s.Build(ctx, session, intent)
	if err != nil {
		return domain.SubmissionResult{}, err
	}

	signature, err := s.Sign(ctx, signer, tx)
	if err != nil {
		return domain.SubmissionResult{}, err
	}

	return s.Submit(ctx, tx, signature)
}

// claim records rootHash as submitted. A hash stays claimed when the send fails.
func (s *TransactionService) claim(rootHash common.Hash) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.submitted[rootHash]; ok {
		return domain.NewError(domain.KindValidation, domain.CodeAlreadySubmitted,
			fmt.Sprintf("root hash %s was already submitted, build a new transaction", rootHash.Hex()), nil)
	}
	s.submitted[rootHash] = struct{}{}
	return nil
}
