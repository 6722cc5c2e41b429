package election

import "github.com/maxpoletaev/sparkpool/internal/generic"

// Lexicographic selects the smallest identifier in byte order, so "10" wins
// over "2".
type Lexicographic struct{}

func (Lexicographic) SelectMaster(ids []string) (string, error) {
	cands, err := candidates(ids)
	if err != nil {
		return "", err
	}

	master, _ := generic.MinFunc(cands, func(a, b string) bool {
		return a < b
	})

	return master, nil
}
