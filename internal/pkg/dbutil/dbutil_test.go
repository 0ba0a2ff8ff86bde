package dbutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFinalizeRebindsPlaceholders(t *testing.T) {
	query, args := Finalize("SELECT id FROM users WHERE email=? AND state=?", []interface{}{"a@b.com", "active"})
	require.Equal(t, "SELECT id FROM users WHERE email=$1 AND state=$2", query)
	require.Equal(t, []interface{}{"a@b.com", "active"}, args)
}

func TestFinalizeRewritesLimit(t *testing.T) {
	// gendry emits mysql's LIMIT offset, count; postgres wants LIMIT count
	// OFFSET offset with the args swapped.
	query, args := Finalize("SELECT id FROM resumes WHERE user_id=? LIMIT ?,?", []interface{}{"u1", uint(10), uint(5)})
	require.Equal(t, "SELECT id FROM resumes WHERE user_id=$1 LIMIT $2 OFFSET $3", query)
	require.Equal(t, []interface{}{"u1", uint(5), uint(10)}, args)
}

func TestFinalizeNoLimit(t *testing.T) {
	query, args := Finalize("DELETE FROM resumes WHERE id=?", []interface{}{"r1"})
	require.Equal(t, "DELETE FROM resumes WHERE id=$1", query)
	require.Len(t, args, 1)
}
