package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"reference-service/internal/dto"
	"reference-service/internal/entities"
	"reference-service/internal/repositories"
)

type BankAccountServiceInterface interface {
	GetBankAccounts(ctx context.Context, counterpartyID string) ([]dto.BankAccountDTO, error)
	FindBankAccount(ctx context.Context, id string) (*dto.BankAccountDTO, error)
	CreateBankAccount(ctx context.Context, payload dto.CreateBankAccountDTO) (*dto.BankAccountDTO, error)
}

type BankAccountService struct {
	bankAccountRepository repositories.BankAccountRepositoryInterface
	logger                *zap.Logger
}

func NewBankAccountService(bankAccountRepository repositories.BankAccountRepositoryInterface, logger *zap.Logger) *BankAccountService {
	return &BankAccountService{bankAccountRepository: bankAccountRepository, logger: logger}
}

func bankAccountToDTO(a entities.BankAccount) dto.BankAccountDTO {
	return dto.BankAccountDTO{
		ID:                   a.ID,
		CounterpartyID:       a.CounterpartyID,
		BankName:             a.BankName,
		BIK:                  a.BIK,
		CorrespondentAccount: a.CorrespondentAccount,
		AccountNumber:        a.AccountNumber,
		AccountName:          a.AccountName,
		IsMain:               a.IsMain,
		IsTreasury:           a.IsTreasury,
	}
}

func bankAccountsToDTO(accounts []entities.BankAccount) []dto.BankAccountDTO {
	result := make([]dto.BankAccountDTO, 0, len(accounts))
	for _, a := range accounts {
		result = append(result, bankAccountToDTO(a))
	}
	return result
}

func (s *BankAccountService) GetBankAccounts(ctx context.Context, counterpartyID string) ([]dto.BankAccountDTO, error) {
	accounts, err := s.bankAccountRepository.GetBankAccounts(ctx, counterpartyID)
	if err != nil {
		s.logger.Error("Ошибка при получении банковских счетов", zap.String("counterpartyID", counterpartyID), zap.Error(err))
		return nil, err
	}
	return bankAccountsToDTO(accounts), nil
}

func (s *BankAccountService) FindBankAccount(ctx context.Context, id string) (*dto.BankAccountDTO, error) {
	account, err := s.bankAccountRepository.FindBankAccount(ctx, id)
	if err != nil {
		s.logger.Error("Ошибка при поиске банковского счёта", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	result := bankAccountToDTO(*account)
	return &result, nil
}

func (s *BankAccountService) CreateBankAccount(ctx context.Context, payload dto.CreateBankAccountDTO) (*dto.BankAccountDTO, error) {
	account := entities.BankAccount{
		ID:                   idOrNew(payload.ID, uuid.NewString),
		CounterpartyID:       payload.CounterpartyID,
		BankName:             payload.BankName,
		BIK:                  payload.BIK,
		CorrespondentAccount: payload.CorrespondentAccount,
		AccountNumber:        payload.AccountNumber,
		AccountName:          payload.AccountName,
		IsTreasury:           payload.IsTreasury != nil && *payload.IsTreasury,
		IsMain:               payload.IsMain != nil && *payload.IsMain,
	}
	if err := s.bankAccountRepository.CreateBankAccount(ctx, account); err != nil {
		s.logger.Error("Ошибка при создании банковского счёта", zap.Error(err))
		return nil, err
	}
	s.logger.Info("Банковский счёт успешно создан", zap.String("id", account.ID), zap.String("counterpartyID", account.CounterpartyID))
	return s.FindBankAccount(ctx, account.ID)
}
