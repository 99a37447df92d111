package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"reference-service/internal/entities"
	apperrors "reference-service/pkg/errors"
)

const bankAccountTable = "bank_accounts"

var bankAccountColumns = []string{
	"id", "counterparty_id", "bank_name", "bik", "correspondent_account", "account_number", "account_name",
	"is_treasury", "is_main",
}

type BankAccountRepositoryInterface interface {
	GetBankAccounts(ctx context.Context, counterpartyID string) ([]entities.BankAccount, error)
	FindBankAccount(ctx context.Context, id string) (*entities.BankAccount, error)
	CreateBankAccount(ctx context.Context, account entities.BankAccount) error
}

type BankAccountRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewBankAccountRepository(storage Querier, logger *zap.Logger) BankAccountRepositoryInterface {
	return &BankAccountRepository{storage: storage, logger: logger}
}

func scanBankAccount(row pgx.Row) (*entities.BankAccount, error) {
	var a entities.BankAccount
	err := row.Scan(&a.ID, &a.CounterpartyID, &a.BankName, &a.BIK, &a.CorrespondentAccount, &a.AccountNumber,
		&a.AccountName, &a.IsTreasury, &a.IsMain)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования bank_account: %w", err)
	}
	return &a, nil
}

func (r *BankAccountRepository) GetBankAccounts(ctx context.Context, counterpartyID string) ([]entities.BankAccount, error) {
	query, args, err := psql.Select(bankAccountColumns...).
		From(bankAccountTable).
		Where(sq.Eq{"counterparty_id": counterpartyID}).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения bank_accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]entities.BankAccount, 0)
	for rows.Next() {
		a, err := scanBankAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, *a)
	}
	return accounts, rows.Err()
}

func (r *BankAccountRepository) FindBankAccount(ctx context.Context, id string) (*entities.BankAccount, error) {
	query, args, err := psql.Select(bankAccountColumns...).From(bankAccountTable).Where(sq.Eq{"id": id}).Limit(1).ToSql()
	if err != nil {
		return nil, err
	}
	return scanBankAccount(r.storage.QueryRow(ctx, query, args...))
}

// CreateBankAccount не проверяет единственность is_main в рамках контрагента.
func (r *BankAccountRepository) CreateBankAccount(ctx context.Context, a entities.BankAccount) error {
	query, args, err := psql.Insert(bankAccountTable).
		Columns(bankAccountColumns...).
		Values(a.ID, a.CounterpartyID, a.BankName, a.BIK, a.CorrespondentAccount, a.AccountNumber, a.AccountName,
			a.IsTreasury, a.IsMain).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.storage.Exec(ctx, query, args...); err != nil {
		return translatePgError(fmt.Errorf("ошибка создания bank_account: %w", err))
	}
	return nil
}
