package dbutil

import (
	"errors"
	"regexp"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var mysqlLimitRe = regexp.MustCompile(`(?i)LIMIT\s+\?\s*,\s*\?`)

// Finalize converts a gendry-built query to postgres form: the mysql
// "LIMIT offset, count" clause becomes "LIMIT count OFFSET offset" (the two
// trailing args swap to match) and ?-placeholders are rebound to $N.
func Finalize(query string, args []interface{}) (string, []interface{}) {
	if loc := mysqlLimitRe.FindStringIndex(query); loc != nil {
		first := strings.Count(query[:loc[0]], "?")
		if first+1 < len(args) {
			args[first], args[first+1] = args[first+1], args[first]
			query = mysqlLimitRe.ReplaceAllString(query, "LIMIT ? OFFSET ?")
		}
	}
	return sqlx.Rebind(sqlx.DOLLAR, query), args
}

// IsConflict reports whether err is a postgres unique_violation.
func IsConflict(err error) bool {
	var pgErr *pq.Error
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
