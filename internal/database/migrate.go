package database

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrate brings the schema up to date. Gorm-managed models go through
// AutoMigrate; ddl carries the raw statements of tables owned by the
// sqlx repositories. The caller supplies both so this package stays
// free of domain imports.
func Migrate(db *gorm.DB, models []any, ddl []string) error {
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, stmt := range ddl {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("apply schema: %w", err)
		}
	}

	return nil
}
