package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tuneinsight/lattigo/v6/ring"
)

// Cross-validate the factorization and the generator search against
// lattigo's primitive-root machinery.
func TestPrimitiveRootMatchesLattigo(t *testing.T) {
	a := assert.New(t)

	for _, p := range []uint64{12289, 65537, 5767169, 998244353} {
		f, err := NewPrimeField(p)
		require.NoError(t, err)

		g, factors, err := ring.PrimitiveRoot(p, nil)
		require.NoError(t, err)

		a.ElementsMatch(f.Factors(), factors, "p=%d", p)

		// our root passes lattigo's primitivity check, and vice versa
		a.NoError(ring.CheckPrimitiveRoot(f.Generator(), p, factors))
		for _, q := range f.Factors() {
			a.NotEqual(uint64(1), f.Pow(g, (p-1)/q))
		}
	}
}
