package scaldf

import (
	"testing"

	"github.com/sealbox/sealbox/pkg/sealbox/internal"
)

func TestViewScalar_deterministic(t *testing.T) {
	t.Parallel()

	var seed [internal.UniformBytestringSize]byte
	copy(seed[:], "ayellowsubmarineayellowsubmarine")

	if ViewScalar(&seed).Equal(ViewScalar(&seed)) != 1 {
		t.Fatal("view scalar derivation is not deterministic")
	}
}

func TestViewScalar_seedDependent(t *testing.T) {
	t.Parallel()

	var a, b [internal.UniformBytestringSize]byte
	b[0] = 1

	if ViewScalar(&a).Equal(ViewScalar(&b)) == 1 {
		t.Fatal("different seeds derived the same view scalar")
	}
}

func TestScalarDF_domainSeparation(t *testing.T) {
	t.Parallel()

	var seed [internal.UniformBytestringSize]byte

	if ViewScalar(&seed).Equal(EphemeralScalar(&seed)) == 1 {
		t.Fatal("view and ephemeral derivations are not domain-separated")
	}
}
