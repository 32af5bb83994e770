package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sangkips/erp-api/internal/domain/entity"
	"github.com/sangkips/erp-api/internal/domain/enum"
	"github.com/sangkips/erp-api/internal/domain/repository"
	"github.com/sangkips/erp-api/internal/domain/schema"
	"github.com/sangkips/erp-api/pkg/apperror"
	"github.com/sangkips/erp-api/pkg/utils"
)

// TransactionService handles financial ledger operations
type TransactionService struct {
	transactionRepo repository.TransactionRepository
	validator       *schema.Validator
	now             Clock
}

// NewTransactionService creates a new transaction service
func NewTransactionService(transactionRepo repository.TransactionRepository, validator *schema.Validator, now Clock) *TransactionService {
	return &TransactionService{transactionRepo: transactionRepo, validator: validator, now: now}
}

// AttachmentInput describes a file linked to a transaction
type AttachmentInput struct {
	Filename   string          `json:"filename"`
	URL        string          `json:"url"`
	UploadDate *utils.FlexTime `json:"uploadDate"`
}

// TransactionInput is the request body for creating or updating a transaction
type TransactionInput struct {
	Description        *string                  `json:"description"`
	Amount             *decimal.Decimal         `json:"amount" validate:"required"`
	Type               *enum.TransactionType    `json:"type"`
	Category           *string                  `json:"category"`
	Date               *utils.FlexTime          `json:"date"`
	Reference          *string                  `json:"reference"`
	Account            *string                  `json:"account"`
	Tags               []string                 `json:"tags"`
	Attachments        []AttachmentInput        `json:"attachments"`
	IsRecurring        *bool                    `json:"isRecurring"`
	RecurringFrequency *enum.RecurringFrequency `json:"recurringFrequency"`
	Notes              *string                  `json:"notes"`
}

func (in *TransactionInput) apply(tx *entity.Transaction) {
	setString(&tx.Description, in.Description)
	if in.Amount != nil {
		tx.Amount = *in.Amount
	}
	if in.Type != nil {
		tx.Type = *in.Type
	}
	setString(&tx.Category, in.Category)
	if in.Date != nil {
		tx.Date = in.Date.Time
	}
	if in.Reference != nil {
		ref := *in.Reference
		tx.Reference = &ref
	}
	setString(&tx.Account, in.Account)
	if in.Tags != nil {
		tx.Tags = in.Tags
	}
	if in.Attachments != nil {
		attachments := make([]entity.Attachment, 0, len(in.Attachments))
		for _, a := range in.Attachments {
			att := entity.Attachment{Filename: a.Filename, URL: a.URL}
			if a.UploadDate != nil {
				att.UploadDate = a.UploadDate.Time
			}
			attachments = append(attachments, att)
		}
		tx.Attachments = attachments
	}
	if in.IsRecurring != nil {
		tx.IsRecurring = *in.IsRecurring
	}
	if in.RecurringFrequency != nil {
		tx.RecurringFrequency = *in.RecurringFrequency
	}
	setString(&tx.Notes, in.Notes)
}

// CreateTransaction validates and stores a new ledger entry
func (s *TransactionService) CreateTransaction(ctx context.Context, input *TransactionInput) (*entity.Transaction, error) {
	tx := &entity.Transaction{}
	input.apply(tx)
	tx.Normalize()
	tx.ApplyDefaults(s.now())

	if err := s.validator.Check(nil, input, tx); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Create(ctx, tx); err != nil {
		return nil, translateWriteError(err)
	}
	return tx, nil
}

// GetTransaction retrieves a transaction by ID
func (s *TransactionService) GetTransaction(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	tx, err := s.transactionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, apperror.NewNotFoundError("Transaction")
	}
	return tx, nil
}

// ListTransactions returns every transaction, latest first
func (s *TransactionService) ListTransactions(ctx context.Context) ([]entity.Transaction, error) {
	return s.transactionRepo.List(ctx)
}

// UpdateTransaction merges the supplied fields and re-validates. Turning
// isRecurring off clears the frequency.
func (s *TransactionService) UpdateTransaction(ctx context.Context, id uuid.UUID, input *TransactionInput) (*entity.Transaction, error) {
	tx, err := s.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}

	input.apply(tx)
	if !tx.IsRecurring && input.RecurringFrequency == nil {
		tx.RecurringFrequency = ""
	}
	now := s.now()
	for i := range tx.Attachments {
		if tx.Attachments[i].UploadDate.IsZero() {
			tx.Attachments[i].UploadDate = now
		}
	}
	tx.Normalize()

	if err := s.validator.Check(nil, tx); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Update(ctx, tx); err != nil {
		return nil, translateWriteError(err)
	}
	return tx, nil
}

// DeleteTransaction removes a ledger entry
func (s *TransactionService) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	if _, err := s.GetTransaction(ctx, id); err != nil {
		return err
	}
	return s.transactionRepo.Delete(ctx, id)
}
