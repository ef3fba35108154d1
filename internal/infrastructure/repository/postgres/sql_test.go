package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
)

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get row: %w", sql.ErrNoRows)) {
		t.Fatalf("expected true for wrapped sql.ErrNoRows")
	}
	if isNotFound(errors.New("pq: connection refused")) {
		t.Fatalf("expected false for unrelated error")
	}
}

func TestNullInt64Conversions(t *testing.T) {
	t.Run("round trips a value", func(t *testing.T) {
		score := 3
		null := intPtrToNullInt64(&score)
		if !null.Valid || null.Int64 != 3 {
			t.Fatalf("unexpected null int: %+v", null)
		}
		back := nullInt64ToIntPtr(null)
		if back == nil || *back != 3 {
			t.Fatalf("unexpected round trip: %v", back)
		}
	})

	t.Run("nil maps to invalid", func(t *testing.T) {
		null := intPtrToNullInt64(nil)
		if null.Valid {
			t.Fatalf("expected invalid null int")
		}
		if got := nullInt64ToIntPtr(sql.NullInt64{}); got != nil {
			t.Fatalf("expected nil pointer, got %v", got)
		}
	})
}
