package question

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
)

// PointMap maps a procedure key to a non-negative integer weight. It is stored
// as a JSON column but validated before it ever reaches the database, so reads
// never have to re-check shape.
type PointMap map[string]int

var ErrNegativeWeight = errors.New("point weights must be non-negative")

func (m PointMap) Validate() error {
	for key, weight := range m {
		if key == "" {
			return errors.New("point map keys must be non-empty")
		}
		if weight < 0 {
			return fmt.Errorf("%w: %s=%d", ErrNegativeWeight, key, weight)
		}
	}
	return nil
}

func (m PointMap) Value() (driver.Value, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if m == nil {
		return "{}", nil
	}
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(raw), nil
}

func (m *PointMap) Scan(value interface{}) error {
	if value == nil {
		*m = PointMap{}
		return nil
	}

	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported point map column type %T", value)
	}

	if len(raw) == 0 {
		*m = PointMap{}
		return nil
	}
	return json.Unmarshal(raw, m)
}
