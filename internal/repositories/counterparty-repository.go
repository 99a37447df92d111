package repositories

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"reference-service/internal/dto"
	"reference-service/internal/entities"
	bd "reference-service/internal/infrastructure/bd"
	apperrors "reference-service/pkg/errors"
)

const (
	counterpartyTable           = "counterparties"
	counterpartyAdditionalTable = "counterparties_additional"
)

var counterpartyColumns = []string{
	"c.id", "c.type", "c.short_name", "c.full_name", "c.is_internal", "c.contract_prefix", "c.created_at", "c.updated_at",
}

var counterpartyFilterMap = map[string]string{
	"type":        "c.type",
	"is_internal": "c.is_internal",
}

type CounterpartyRepositoryInterface interface {
	GetCounterparties(ctx context.Context, filter dto.CounterpartyFilter) ([]entities.Counterparty, error)
	FindCounterparty(ctx context.Context, id string) (*entities.Counterparty, error)
	SearchCounterparties(ctx context.Context, search string) ([]entities.Counterparty, error)
	GetAdditionalOkved(ctx context.Context, counterpartyID string) ([]string, error)
	GetSummarySources(ctx context.Context) ([]entities.CounterpartySummarySource, error)
	CreateCounterparty(ctx context.Context, counterparty entities.Counterparty) error
	CreateAdditional(ctx context.Context, additional entities.CounterpartyAdditional) error
}

type CounterpartyRepository struct {
	storage Querier
	logger  *zap.Logger
}

func NewCounterpartyRepository(storage Querier, logger *zap.Logger) CounterpartyRepositoryInterface {
	return &CounterpartyRepository{storage: storage, logger: logger}
}

func scanCounterparty(row pgx.Row) (*entities.Counterparty, error) {
	var c entities.Counterparty
	var cpType string
	err := row.Scan(&c.ID, &cpType, &c.ShortName, &c.FullName, &c.IsInternal, &c.ContractPrefix, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка сканирования counterparty: %w", err)
	}
	c.Type = entities.CounterpartyType(cpType)
	return &c, nil
}

func (r *CounterpartyRepository) queryCounterparties(ctx context.Context, builder sq.SelectBuilder) ([]entities.Counterparty, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения counterparties: %w", err)
	}
	defer rows.Close()

	counterparties := make([]entities.Counterparty, 0)
	for rows.Next() {
		c, err := scanCounterparty(rows)
		if err != nil {
			return nil, err
		}
		counterparties = append(counterparties, *c)
	}
	return counterparties, rows.Err()
}

func (r *CounterpartyRepository) GetCounterparties(ctx context.Context, filter dto.CounterpartyFilter) ([]entities.Counterparty, error) {
	filters := map[string]interface{}{}
	if filter.Type != nil && *filter.Type != "" {
		filters["type"] = *filter.Type
	}
	if filter.IsInternal != nil {
		filters["is_internal"] = *filter.IsInternal
	}
	builder := psql.Select(counterpartyColumns...).From(counterpartyTable + " c")
	builder = bd.ApplyFilters(builder, filters, counterpartyFilterMap)
	return r.queryCounterparties(ctx, builder)
}

func (r *CounterpartyRepository) FindCounterparty(ctx context.Context, id string) (*entities.Counterparty, error) {
	query, args, err := psql.Select(counterpartyColumns...).
		From(counterpartyTable + " c").
		Where(sq.Eq{"c.id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, err
	}
	return scanCounterparty(r.storage.QueryRow(ctx, query, args...))
}

// SearchCounterparties ищет по названиям и по ИНН/ОГРН всех трёх видов реквизитов.
// LEFT JOIN позволяет найти контрагента без реквизитов по названию, DISTINCT убирает дубли.
func (r *CounterpartyRepository) SearchCounterparties(ctx context.Context, search string) ([]entities.Counterparty, error) {
	builder := psql.Select(counterpartyColumns...).
		Distinct().
		From(counterpartyTable + " c").
		LeftJoin("details_llc llc ON llc.counterparties_id = c.id").
		LeftJoin("details_ip ip ON ip.counterparty_id = c.id").
		LeftJoin("details_phys ph ON ph.counterparty_id = c.id").
		Where(bd.ContainsAny(search,
			"c.short_name", "c.full_name",
			"llc.inn", "llc.ogrn",
			"ip.inn", "ip.ogrnip",
			"ph.inn",
		))
	return r.queryCounterparties(ctx, builder)
}

func (r *CounterpartyRepository) GetAdditionalOkved(ctx context.Context, counterpartyID string) ([]string, error) {
	query, args, err := psql.Select("additional_okved").
		From(counterpartyAdditionalTable).
		Where(sq.Eq{"counterparty_id": counterpartyID}).
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения additional_okved: %w", err)
	}
	defer rows.Close()

	codes := make([]string, 0)
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("ошибка сканирования additional_okved: %w", err)
		}
		codes = append(codes, code)
	}
	return codes, rows.Err()
}

// GetSummarySources отдаёт каждого контрагента вместе с ключевыми полями реквизитов.
// Реквизиты 1:1 с контрагентом, DISTINCT ON страхует от лишних строк.
func (r *CounterpartyRepository) GetSummarySources(ctx context.Context) ([]entities.CounterpartySummarySource, error) {
	columns := append(append([]string{}, counterpartyColumns...),
		"llc.inn", "llc.kpp", "llc.ogrn", "llc.legal_address", "llc.director_person_id",
		"ip.inn", "ip.ogrnip", "ip.person_id",
		"ph.inn", "ph.address_registration", "ph.person_id",
	)
	columns[0] = "DISTINCT ON (c.id) c.id"

	query, args, err := psql.Select(columns...).
		From(counterpartyTable + " c").
		LeftJoin("details_llc llc ON llc.counterparties_id = c.id").
		LeftJoin("details_ip ip ON ip.counterparty_id = c.id").
		LeftJoin("details_phys ph ON ph.counterparty_id = c.id").
		OrderBy("c.id").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.storage.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения сводки counterparties: %w", err)
	}
	defer rows.Close()

	sources := make([]entities.CounterpartySummarySource, 0)
	for rows.Next() {
		var s entities.CounterpartySummarySource
		var cpType string
		var llcINN, llcKPP, llcOGRN, llcAddress, llcDirector *string
		var ipINN, ipOGRNIP, ipPerson *string
		var phINN, phAddress, phPerson *string

		err := rows.Scan(
			&s.ID, &cpType, &s.ShortName, &s.FullName, &s.IsInternal, &s.ContractPrefix, &s.CreatedAt, &s.UpdatedAt,
			&llcINN, &llcKPP, &llcOGRN, &llcAddress, &llcDirector,
			&ipINN, &ipOGRNIP, &ipPerson,
			&phINN, &phAddress, &phPerson,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования сводки counterparty: %w", err)
		}
		s.Type = entities.CounterpartyType(cpType)

		// person_id/director_person_id NOT NULL, поэтому по ним видно, нашлась ли строка
		if llcDirector != nil {
			s.LLC = &entities.DetailsLLC{
				CounterpartyID:   s.ID,
				INN:              deref(llcINN),
				KPP:              deref(llcKPP),
				OGRN:             deref(llcOGRN),
				LegalAddress:     deref(llcAddress),
				DirectorPersonID: *llcDirector,
			}
		}
		if ipPerson != nil {
			s.IP = &entities.DetailsIP{CounterpartyID: s.ID, INN: deref(ipINN), OGRNIP: ipOGRNIP, PersonID: *ipPerson}
		}
		if phPerson != nil {
			s.Phys = &entities.DetailsPhys{CounterpartyID: s.ID, INN: phINN, AddressRegistration: deref(phAddress), PersonID: *phPerson}
		}
		sources = append(sources, s)
	}
	return sources, rows.Err()
}

func (r *CounterpartyRepository) CreateCounterparty(ctx context.Context, c entities.Counterparty) error {
	query, args, err := psql.Insert(counterpartyTable).
		Columns("id", "type", "short_name", "full_name", "is_internal", "contract_prefix", "created_at", "updated_at").
		Values(c.ID, string(c.Type), c.ShortName, c.FullName, c.IsInternal, c.ContractPrefix, c.CreatedAt, c.UpdatedAt).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.storage.Exec(ctx, query, args...); err != nil {
		return translatePgError(fmt.Errorf("ошибка создания counterparty: %w", err))
	}
	return nil
}

func (r *CounterpartyRepository) CreateAdditional(ctx context.Context, a entities.CounterpartyAdditional) error {
	query, args, err := psql.Insert(counterpartyAdditionalTable).
		Columns("counterparty_id", "additional_okved").
		Values(a.CounterpartyID, a.AdditionalOkved).
		ToSql()
	if err != nil {
		return err
	}
	if _, err := r.storage.Exec(ctx, query, args...); err != nil {
		return translatePgError(fmt.Errorf("ошибка добавления additional_okved: %w", err))
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
