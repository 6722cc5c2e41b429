package election

import (
	"github.com/twmb/murmur3"

	"github.com/maxpoletaev/sparkpool/internal/generic"
)

// Rendezvous selects the identifier with the highest hash weight (highest
// random weight hashing). Removing any node other than the winner never
// changes the result, and the winner is spread uniformly across node names
// instead of always favouring the same prefix.
type Rendezvous struct {
	Seed string
}

func (r Rendezvous) SelectMaster(ids []string) (string, error) {
	cands, err := candidates(ids)
	if err != nil {
		return "", err
	}

	master, _ := generic.MinFunc(cands, func(a, b string) bool {
		wa, wb := r.weight(a), r.weight(b)
		if wa != wb {
			return wa > wb
		}

		return a < b
	})

	return master, nil
}

func (r Rendezvous) weight(id string) uint64 {
	return murmur3.Sum64([]byte(r.Seed + "/" + id))
}
