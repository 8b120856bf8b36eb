package question_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/dentalogix/dentalogix-api/internal/question"
)

func TestPointMapValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		m := question.PointMap{"whitening": 3, "preventive": 0}
		if err := m.Validate(); err != nil {
			t.Errorf("Validate() failed: %v", err)
		}
	})

	t.Run("NegativeWeight", func(t *testing.T) {
		m := question.PointMap{"whitening": -1}
		err := m.Validate()
		if !errors.Is(err, question.ErrNegativeWeight) {
			t.Errorf("want ErrNegativeWeight, got %v", err)
		}
	})

	t.Run("EmptyKey", func(t *testing.T) {
		m := question.PointMap{"": 2}
		if err := m.Validate(); err == nil {
			t.Error("Validate() should reject empty keys")
		}
	})

	t.Run("EmptyMap", func(t *testing.T) {
		if err := (question.PointMap{}).Validate(); err != nil {
			t.Errorf("empty map should validate, got %v", err)
		}
	})
}

func TestPointMapValue(t *testing.T) {
	t.Run("RefusesInvalidMap", func(t *testing.T) {
		m := question.PointMap{"whitening": -5}
		if _, err := m.Value(); err == nil {
			t.Error("Value() should refuse a negative weight")
		}
	})

	t.Run("NilMapIsEmptyObject", func(t *testing.T) {
		var m question.PointMap
		v, err := m.Value()
		if err != nil {
			t.Fatalf("Value() failed: %v", err)
		}
		if v != "{}" {
			t.Errorf("Value() = %v, want {}", v)
		}
	})
}

func TestPointMapScan(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		original := question.PointMap{"whitening": 3, "veneers": 1}
		v, err := original.Value()
		if err != nil {
			t.Fatalf("Value() failed: %v", err)
		}

		var scanned question.PointMap
		if err := scanned.Scan(v); err != nil {
			t.Fatalf("Scan() failed: %v", err)
		}
		if !reflect.DeepEqual(scanned, original) {
			t.Errorf("round trip = %v, want %v", scanned, original)
		}
	})

	t.Run("NilColumn", func(t *testing.T) {
		var m question.PointMap
		if err := m.Scan(nil); err != nil {
			t.Fatalf("Scan(nil) failed: %v", err)
		}
		if m == nil || len(m) != 0 {
			t.Errorf("Scan(nil) = %v, want empty map", m)
		}
	})

	t.Run("Bytes", func(t *testing.T) {
		var m question.PointMap
		if err := m.Scan([]byte(`{"invisalign":4}`)); err != nil {
			t.Fatalf("Scan() failed: %v", err)
		}
		if m["invisalign"] != 4 {
			t.Errorf("Scan() = %v, want invisalign:4", m)
		}
	})

	t.Run("UnsupportedType", func(t *testing.T) {
		var m question.PointMap
		if err := m.Scan(42); err == nil {
			t.Error("Scan(int) should fail")
		}
	})
}
