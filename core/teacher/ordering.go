package teacher

import (
	"sort"
	"strings"

	"github.com/trezcool/tutordesk/core"
)

// DefaultOrdering sorts teachers by name.
var DefaultOrdering = []core.DBOrdering{{Field: "name", Ascending: true}}

var compareFuncs = map[string]func(a, b Teacher) int{
	"name":              func(a, b Teacher) int { return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)) },
	"email":             func(a, b Teacher) int { return strings.Compare(a.Email, b.Email) },
	"status":            func(a, b Teacher) int { return strings.Compare(string(a.Status), string(b.Status)) },
	"join_date":         func(a, b Teacher) int { return strings.Compare(a.JoinDate, b.JoinDate) },
	"rating":            func(a, b Teacher) int { return compareFloats(a.Rating, b.Rating) },
	"total_earnings":    func(a, b Teacher) int { return compareFloats(a.TotalEarnings, b.TotalEarnings) },
	"completed_lessons": func(a, b Teacher) int { return compareFloats(float64(a.CompletedLessons), float64(b.CompletedLessons)) },
}

// CleanOrderings drops orderings on unknown fields and falls back to DefaultOrdering.
func CleanOrderings(orderings []core.DBOrdering) []core.DBOrdering {
	cleaned := make([]core.DBOrdering, 0, len(orderings))
	for _, ord := range orderings {
		if _, ok := compareFuncs[ord.Field]; ok {
			cleaned = append(cleaned, ord)
		}
	}
	if len(cleaned) == 0 {
		return DefaultOrdering
	}
	return cleaned
}

// Sort sorts teachers in place; ties are broken by ID.
func Sort(teachers []Teacher, orderings []core.DBOrdering) {
	orderings = CleanOrderings(orderings)
	sort.SliceStable(teachers, func(i, j int) bool {
		for _, ord := range orderings {
			c := compareFuncs[ord.Field](teachers[i], teachers[j])
			if c == 0 {
				continue
			}
			if ord.Ascending {
				return c < 0
			}
			return c > 0
		}
		return teachers[i].ID < teachers[j].ID
	})
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
