package doctors

import (
	"context"
	"database/sql"
	"fmt"
)

// DoctorCapability is the role marker the plugin writes into the
// capabilities meta value of doctor accounts.
const DoctorCapability = "kiviCare_doctor"

type Repository struct {
	db     *sql.DB
	prefix string
}

func NewRepository(db *sql.DB, tablePrefix string) *Repository {
	return &Repository{db: db, prefix: tablePrefix}
}

// List fetches every account carrying the doctor capability marker, together
// with the profile blob and description meta values.
func (r *Repository) List(ctx context.Context) ([]Row, error) {
	query := fmt.Sprintf(`
		SELECT u.id, u.display_name,
		       MAX(CASE WHEN m.meta_key = 'basic_data' THEN m.meta_value END),
		       MAX(CASE WHEN m.meta_key = 'description' THEN m.meta_value END)
		FROM %susers u
		JOIN %susermeta cap
		  ON cap.user_id = u.id
		 AND cap.meta_key = $1
		 AND cap.meta_value LIKE '%%' || $2 || '%%'
		LEFT JOIN %susermeta m
		  ON m.user_id = u.id
		 AND m.meta_key IN ('basic_data', 'description')
		GROUP BY u.id, u.display_name
		ORDER BY u.id ASC
	`, r.prefix, r.prefix, r.prefix)

	rows, err := r.db.QueryContext(ctx, query, r.prefix+"capabilities", DoctorCapability)
	if err != nil {
		return nil, fmt.Errorf("failed to query doctors: %w", err)
	}
	defer rows.Close()

	var result []Row
	for rows.Next() {
		var row Row
		var basicData, description sql.NullString
		if err := rows.Scan(&row.ID, &row.Name, &basicData, &description); err != nil {
			return nil, fmt.Errorf("failed to scan doctor: %w", err)
		}
		if basicData.Valid {
			row.BasicData = &basicData.String
		}
		if description.Valid {
			row.Description = &description.String
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating doctors: %w", err)
	}

	return result, nil
}
