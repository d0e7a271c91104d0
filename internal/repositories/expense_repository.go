package repositories

import (
	"context"
	"database/sql"

	intconfig "dashboard/internal/config"
	intdb "dashboard/internal/db"
	"dashboard/internal/domain/models"
)

// ExpenseRepository reads company_expenses. It satisfies Source[models.CompanyExpense].
type ExpenseRepository struct {
	DB *sql.DB
}

func (r ExpenseRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r ExpenseRepository) FetchAll(ctx context.Context) ([]models.CompanyExpense, error) {
	db := r.db()
	if db == nil {
		return []models.CompanyExpense{}, nil
	}
	ok, err := intdb.HasTable(ctx, db, "company_expenses")
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.CompanyExpense{}, nil
	}

	rows, err := db.QueryContext(ctx, `
		SELECT id,
		       COALESCE(amount,0),
		       COALESCE(description,''),
		       COALESCE(CAST(expense_date AS CHAR),''),
		       COALESCE(category,''),
		       COALESCE(status,'')
		FROM company_expenses
		ORDER BY id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.CompanyExpense{}
	for rows.Next() {
		var e models.CompanyExpense
		if err := rows.Scan(&e.ID, &e.Amount, &e.Description, &e.Date, &e.Category, &e.Status); err != nil {
			return out, err
		}
		e.Date = dateOnly(e.Date)
		out = append(out, e)
	}
	return out, rows.Err()
}
