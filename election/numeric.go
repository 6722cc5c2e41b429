package election

import (
	"math/big"
	"strings"

	"github.com/maxpoletaev/sparkpool/internal/generic"
)

// NumericSuffix selects the identifier with the smallest trailing decimal
// number. Batch node IDs look like "tvm-1219235766_3-20170101t000000z", where
// there is no stable number at the end, so the rule is mostly useful for pools
// with custom node names ("node-2" < "node-10"). Identifiers without a numeric
// suffix lose against the numbered ones, ties are broken lexicographically.
type NumericSuffix struct{}

func (NumericSuffix) SelectMaster(ids []string) (string, error) {
	cands, err := candidates(ids)
	if err != nil {
		return "", err
	}

	master, _ := generic.MinFunc(cands, lessBySuffix)

	return master, nil
}

func lessBySuffix(a, b string) bool {
	na, okA := numericSuffix(a)
	nb, okB := numericSuffix(b)

	switch {
	case okA && !okB:
		return true
	case !okA && okB:
		return false
	case okA && okB:
		if c := na.Cmp(nb); c != 0 {
			return c < 0
		}
	}

	return a < b
}

// numericSuffix parses the trailing run of digits. big.Int is used because
// the suffix length is not bounded.
func numericSuffix(id string) (*big.Int, bool) {
	i := len(id)
	for i > 0 && id[i-1] >= '0' && id[i-1] <= '9' {
		i--
	}

	if i == len(id) {
		return nil, false
	}

	digits := strings.TrimLeft(id[i:], "0")

	if digits == "" {
		return new(big.Int), true
	}

	n, ok := new(big.Int).SetString(digits, 10)

	return n, ok
}
