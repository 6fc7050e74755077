package domain

import "strings"

// Department is a single pizzeria tracked for statistics and notifications.
// Departments are provisioned externally and read-only to the pipeline.
type Department struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	AccountName string `json:"account_name"`
}

// NormalizeDepartmentName lower-cases and trims a department label so parsed
// report labels and persisted names compare equal.
func NormalizeDepartmentName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// GroupDepartmentsByAccount buckets departments under their owning
// back-office account.
func GroupDepartmentsByAccount(departments []Department) map[string][]Department {
	grouped := make(map[string][]Department)
	for _, department := range departments {
		grouped[department.AccountName] = append(grouped[department.AccountName], department)
	}
	return grouped
}

// DepartmentIDs extracts the ids of a department collection.
func DepartmentIDs(departments []Department) []int {
	ids := make([]int, 0, len(departments))
	for _, department := range departments {
		ids = append(ids, department.ID)
	}
	return ids
}
