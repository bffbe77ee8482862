package v1

import (
	"fmt"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// stringFilters applies the name, role and search query parameters. A
// parameter that is set to the empty string filters for empty values.
func stringFilters(db, query *gorm.DB, setFields []string, name, role, search string) *gorm.DB {
	if name != "" {
		query = query.Where("name LIKE ?", fmt.Sprintf("%%%s%%", name))
	} else if slices.Contains(setFields, "Name") {
		query = query.Where("name = ''")
	}

	if role != "" {
		query = query.Where("role LIKE ?", fmt.Sprintf("%%%s%%", role))
	} else if slices.Contains(setFields, "Role") {
		query = query.Where("role = ''")
	}

	if search != "" {
		query = query.Where(
			db.Where("role LIKE ?", fmt.Sprintf("%%%s%%", search)).Or(
				db.Where("name LIKE ?", fmt.Sprintf("%%%s%%", search)),
			),
		)
	}

	return query
}
