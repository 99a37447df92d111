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

const (
	detailsLLCTable  = "details_llc"
	detailsIPTable   = "details_ip"
	detailsPhysTable = "details_phys"
)

type DetailsRepositoryInterface interface {
	FindDetailsLLC(ctx context.Context, counterpartyID string) (*entities.DetailsLLC, error)
	FindDetailsIP(ctx context.Context, counterpartyID string) (*entities.DetailsIP, error)
	FindDetailsPhys(ctx context.Context, counterpartyID string) (*entities.DetailsPhys, error)
	CreateDetailsLLC(ctx context.Context, details entities.DetailsLLC) (int64, error)
	CreateDetailsIP(ctx context.Context, details entities.DetailsIP) (int64, error)
	CreateDetailsPhys(ctx context.Context, details entities.DetailsPhys) error
}

type DetailsRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewDetailsRepository(storage Querier, logger *zap.Logger) DetailsRepositoryInterface {
	return &DetailsRepository{storage: storage, logger: logger}
}

func (r *DetailsRepository) FindDetailsLLC(ctx context.Context, counterpartyID string) (*entities.DetailsLLC, error) {
	query, args, err := psql.Select(
		"id", "counterparties_id", "inn", "kpp", "ogrn", "okpo", "okogu", "okato", "oktmo", "okfs", "okopf",
		"tax_system", "okved", "legal_address", "actual_address", "postal_address",
		"director_person_id", "director_basis", "date_register",
	).From(detailsLLCTable).Where(sq.Eq{"counterparties_id": counterpartyID}).Limit(1).ToSql()
	if err != nil {
		return nil, err
	}

	var d entities.DetailsLLC
	err = r.storage.QueryRow(ctx, query, args...).Scan(
		&d.ID, &d.CounterpartyID, &d.INN, &d.KPP, &d.OGRN, &d.OKPO, &d.OKOGU, &d.OKATO, &d.OKTMO, &d.OKFS, &d.OKOPF,
		&d.TaxSystem, &d.OKVED, &d.LegalAddress, &d.ActualAddress, &d.PostalAddress,
		&d.DirectorPersonID, &d.DirectorBasis, &d.DateRegister,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования details_llc: %w", err)
	}
	return &d, nil
}

func (r *DetailsRepository) FindDetailsIP(ctx context.Context, counterpartyID string) (*entities.DetailsIP, error) {
	query, args, err := psql.Select(
		"id", "counterparty_id", "inn", "ogrnip", "okpo", "okved", "okopf", "okfs", "okogu", "okato", "oktmo",
		"person_id", "date_register",
	).From(detailsIPTable).Where(sq.Eq{"counterparty_id": counterpartyID}).Limit(1).ToSql()
	if err != nil {
		return nil, err
	}

	var d entities.DetailsIP
	err = r.storage.QueryRow(ctx, query, args...).Scan(
		&d.ID, &d.CounterpartyID, &d.INN, &d.OGRNIP, &d.OKPO, &d.OKVED, &d.OKOPF, &d.OKFS, &d.OKOGU, &d.OKATO, &d.OKTMO,
		&d.PersonID, &d.DateRegister,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования details_ip: %w", err)
	}
	return &d, nil
}

func (r *DetailsRepository) FindDetailsPhys(ctx context.Context, counterpartyID string) (*entities.DetailsPhys, error) {
	query, args, err := psql.Select(
		"counterparty_id", "person_id", "passport_series", "passport_number", "passport_issued_by",
		"passport_date_issued", "passport_date", "department_code", "inn", "address_registration", "address_living",
	).From(detailsPhysTable).Where(sq.Eq{"counterparty_id": counterpartyID}).Limit(1).ToSql()
	if err != nil {
		return nil, err
	}

	var d entities.DetailsPhys
	err = r.storage.QueryRow(ctx, query, args...).Scan(
		&d.CounterpartyID, &d.PersonID, &d.PassportSeries, &d.PassportNumber, &d.PassportIssuedBy,
		&d.PassportDateIssued, &d.PassportDate, &d.DepartmentCode, &d.INN, &d.AddressRegistration, &d.AddressLiving,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования details_phys: %w", err)
	}
	return &d, nil
}

// CreateDetailsLLC возвращает id строки: переданный клиентом или выданный последовательностью.
func (r *DetailsRepository) CreateDetailsLLC(ctx context.Context, d entities.DetailsLLC) (int64, error) {
	columns := []string{
		"counterparties_id", "inn", "kpp", "ogrn", "okpo", "okogu", "okato", "oktmo", "okfs", "okopf",
		"tax_system", "okved", "legal_address", "actual_address", "postal_address",
		"director_person_id", "director_basis", "date_register",
	}
	values := []interface{}{
		d.CounterpartyID, d.INN, d.KPP, d.OGRN, d.OKPO, d.OKOGU, d.OKATO, d.OKTMO, d.OKFS, d.OKOPF,
		d.TaxSystem, d.OKVED, d.LegalAddress, d.ActualAddress, d.PostalAddress,
		d.DirectorPersonID, d.DirectorBasis, d.DateRegister,
	}
	if d.ID > 0 {
		columns = append([]string{"id"}, columns...)
		values = append([]interface{}{d.ID}, values...)
	}
	return r.insertReturningID(ctx, detailsLLCTable, columns, values)
}

func (r *DetailsRepository) CreateDetailsIP(ctx context.Context, d entities.DetailsIP) (int64, error) {
	columns := []string{
		"counterparty_id", "inn", "ogrnip", "okpo", "okved", "okopf", "okfs", "okogu", "okato", "oktmo",
		"person_id", "date_register",
	}
	values := []interface{}{
		d.CounterpartyID, d.INN, d.OGRNIP, d.OKPO, d.OKVED, d.OKOPF, d.OKFS, d.OKOGU, d.OKATO, d.OKTMO,
		d.PersonID, d.DateRegister,
	}
	if d.ID > 0 {
		columns = append([]string{"id"}, columns...)
		values = append([]interface{}{d.ID}, values...)
	}
	return r.insertReturningID(ctx, detailsIPTable, columns, values)
}

func (r *DetailsRepository) CreateDetailsPhys(ctx context.Context, d entities.DetailsPhys) error {
	query, args, err := psql.Insert(detailsPhysTable).
		Columns(
			"counterparty_id", "person_id", "passport_series", "passport_number", "passport_issued_by",
			"passport_date_issued", "passport_date", "department_code", "inn", "address_registration", "address_living",
		).
		Values(
			d.CounterpartyID, d.PersonID, d.PassportSeries, d.PassportNumber, d.PassportIssuedBy,
			d.PassportDateIssued, d.PassportDate, d.DepartmentCode, d.INN, d.AddressRegistration, d.AddressLiving,
		).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.storage.Exec(ctx, query, args...); err != nil {
		return translatePgError(fmt.Errorf("ошибка создания details_phys: %w", err))
	}
	return nil
}

func (r *DetailsRepository) insertReturningID(ctx context.Context, table string, columns []string, values []interface{}) (int64, error) {
	query, args, err := psql.Insert(table).Columns(columns...).Values(values...).Suffix("RETURNING id").ToSql()
	if err != nil {
		return 0, err
	}
	var id int64
	if err := r.storage.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return 0, translatePgError(fmt.Errorf("ошибка создания %s: %w", table, err))
	}
	return id, nil
}
