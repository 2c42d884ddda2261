package corridor

import (
	"fmt"

	assert "github.com/aurelien-rainone/assertgo"
)

// assertSingleBit checks a programmer invariant: mask must have exactly one
// bit set. Like recast.go's use of assert.True, this guards against
// internal logic errors rather than recoverable runtime conditions — it is
// never expected to fire on a correctly functioning solver.
func assertSingleBit(mask uint16) {
	assert.True(mask != 0 && mask&(mask-1) == 0,
		fmt.Sprintf("expected a single-bit tile mask, got %#04x", mask))
}
