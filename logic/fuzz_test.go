package logic_test

import (
	"testing"

	"github.com/brunokim/wamgen/logic"
)

func FuzzDecodeClause(f *testing.F) {
	f.Add([]byte(`{"nat": [0]}`))
	f.Add([]byte(`{"head": {"f": [{"|": ["H", "T"]}, "_"]}, "body": [{"g": ["T", ["a", 1]]}, "!"]}`))
	f.Fuzz(func(t *testing.T, data []byte) {
		c, err := logic.DecodeClause(data)
		if err != nil {
			return
		}
		// Every decoded clause must be printable and, if normalizable, keep its shape.
		_ = c.String()
		norm, err := c.Normalize()
		if err != nil {
			return
		}
		if len(norm.Body) != len(c.Body) {
			t.Errorf("Normalize(%v) changed body length: %d != %d", c, len(norm.Body), len(c.Body))
		}
	})
}
