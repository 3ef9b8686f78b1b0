// file: internals/features/school/academics/controller/common.go
package controller

import "strings"

func isUniqueViolation(err error) bool {
	// aman untuk pgx/pq: cari code 23505 atau frasa umum
	if err == nil {
		return false
	}
	s := err.Error()
	return strings.Contains(s, "SQLSTATE 23505") ||
		strings.Contains(strings.ToLower(s), "duplicate key value") ||
		strings.Contains(strings.ToLower(s), "unique constraint")
}
