package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	intconfig "dashboard/internal/config"
	intdb "dashboard/internal/db"
	"dashboard/internal/domain/models"
)

// InvoiceRepository reads the invoices table. It satisfies Source[models.Invoice].
type InvoiceRepository struct {
	DB *sql.DB
}

func (r InvoiceRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r InvoiceRepository) table() string {
	return "invoices"
}

// FetchAll returns every invoice in insertion order. A missing table yields an empty list;
// an unreachable database is an error.
func (r InvoiceRepository) FetchAll(ctx context.Context) ([]models.Invoice, error) {
	db := r.db()
	table := r.table()
	if db == nil {
		return []models.Invoice{}, nil
	}
	ok, err := intdb.HasTable(ctx, db, table)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []models.Invoice{}, nil
	}

	cols := []string{
		"id",
		"COALESCE(CAST(invoice_date AS CHAR),'')",
		"COALESCE(type,'')",
		"COALESCE(amount,0)",
		"COALESCE(description,'')",
		"COALESCE(category,'')",
	}
	for _, optional := range []string{"employee", "reference", "status"} {
		has, err := intdb.HasColumn(ctx, db, table, optional)
		if err != nil {
			return nil, err
		}
		if has {
			cols = append(cols, fmt.Sprintf("COALESCE(%s,'')", optional))
		} else {
			cols = append(cols, "''")
		}
	}

	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY id ASC`, strings.Join(cols, ","), table)
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Invoice{}
	for rows.Next() {
		var inv models.Invoice
		if err := rows.Scan(
			&inv.ID,
			&inv.Date,
			&inv.Type,
			&inv.Amount,
			&inv.Description,
			&inv.Category,
			&inv.Employee,
			&inv.Reference,
			&inv.Status,
		); err != nil {
			return out, err
		}
		inv.Date = dateOnly(inv.Date)
		out = append(out, inv)
	}
	return out, rows.Err()
}

// dateOnly trims DATETIME values to the ISO date the filters compare against.
func dateOnly(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 10 {
		return s[:10]
	}
	return s
}
