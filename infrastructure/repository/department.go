package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"

	"github.com/goretsky-band/dodo-reports/infrastructure/database/postgres"
	"github.com/goretsky-band/dodo-reports/internal/domain"
)

const departmentsTable = "departments"

// Tables that get a default row the moment a department is provisioned, so
// report readers never see a missing row for a known department.
var statisticsTables = []string{
	kitchenStatisticsTable,
	deliveryStatisticsTable,
	detailedDeliveryStatisticsTable,
	ordersStatisticsTable,
	revenueStatisticsTable,
	beingLateStatisticsTable,
}

type DepartmentRepository interface {
	List(ctx context.Context) ([]domain.Department, error)
	Provision(ctx context.Context, departments []domain.Department) error
}

type departmentRepository struct {
	conn *postgres.Connection
}

func NewDepartmentRepository(conn *postgres.Connection) DepartmentRepository {
	return &departmentRepository{conn: conn}
}

func (r *departmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	query, args, err := squirrel.
		Select("id", "name", "account_name").
		From(departmentsTable).
		OrderBy("id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "building departments query")
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "querying departments")
	}
	defer rows.Close()

	departments := make([]domain.Department, 0)
	for rows.Next() {
		var department domain.Department
		if err := rows.Scan(&department.ID, &department.Name, &department.AccountName); err != nil {
			return nil, errors.Wrap(err, "scanning department")
		}
		departments = append(departments, department)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating departments")
	}

	return departments, nil
}

// Provision upserts the departments and seeds one zero-valued row per
// statistics table for each of them, all in one transaction.
func (r *departmentRepository) Provision(ctx context.Context, departments []domain.Department) error {
	if len(departments) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, department := range departments {
			if err := upsertDepartment(ctx, tx, department); err != nil {
				return err
			}
			if err := seedStatisticsRows(ctx, tx, department.ID); err != nil {
				return err
			}
		}
		return nil
	})
}

func upsertDepartment(ctx context.Context, tx *sql.Tx, department domain.Department) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(departmentsTable).
		Columns("id", "name", "account_name").
		Values(department.ID, department.Name, department.AccountName).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				account_name = EXCLUDED.account_name,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "building department upsert")
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return errors.Wrapf(err, "upserting department %d", department.ID)
	}

	return nil
}

func seedStatisticsRows(ctx context.Context, tx *sql.Tx, departmentID int) error {
	for _, table := range statisticsTables {
		query, args, err := squirrel.StatementBuilder.
			Insert(table).
			Columns("department_id").
			Values(departmentID).
			Suffix("ON CONFLICT (department_id) DO NOTHING").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return errors.Wrapf(err, "building %s seed", table)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return errors.Wrapf(err, "seeding %s for department %d", table, departmentID)
		}
	}

	return nil
}
