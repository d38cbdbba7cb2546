package test_helpers

import (
	"github.com/brunokim/wamgen/logic"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var (
	// IgnoreUnexported compares terms by their public structure only.
	// A comp with no args is equal whether its args are nil or empty.
	IgnoreUnexported = cmp.Options{
		cmpopts.IgnoreUnexported(logic.Comp{}),
		cmpopts.IgnoreUnexported(logic.List{}),
		cmpopts.EquateEmpty(),
	}
)
