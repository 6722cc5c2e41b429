// Package election picks the Spark master out of the pool membership.
//
// There is no coordination channel between nodes other than the pool service
// itself, so every node runs the selection locally over its own snapshot of
// node identifiers. Selectors are pure functions of the identifier set: they
// never depend on the order of the input, on the wall clock or on randomness,
// so every node observing the same set elects the same master.
package election

import (
	"fmt"
	"strings"

	"github.com/maxpoletaev/sparkpool/internal/baseerror"
	"github.com/maxpoletaev/sparkpool/internal/generic"
	"github.com/maxpoletaev/sparkpool/internal/set"
	"github.com/maxpoletaev/sparkpool/pool"
)

// ErrNoEligibleMaster is returned when there are no nodes to select from.
var ErrNoEligibleMaster = baseerror.New("no eligible master")

// Selector maps a set of node identifiers to the identifier of the master.
type Selector interface {
	SelectMaster(ids []string) (string, error)
}

type Strategy string

const (
	StrategyLexicographic Strategy = "lexicographic"
	StrategyNumericSuffix Strategy = "numeric-suffix"
	StrategyRendezvous    Strategy = "rendezvous"

	// DefaultStrategy orders numbered nodes the way humans do, so that of
	// "10" and "2" the master is "2".
	DefaultStrategy = StrategyNumericSuffix
)

// ParseStrategy validates the strategy name.
func ParseStrategy(name string) (Strategy, error) {
	switch s := Strategy(strings.ToLower(strings.TrimSpace(name))); s {
	case StrategyLexicographic, StrategyNumericSuffix, StrategyRendezvous:
		return s, nil
	case "":
		return DefaultStrategy, nil
	default:
		return "", fmt.Errorf("unknown election strategy: %q", name)
	}
}

// New creates a selector for the given strategy. The seed is only used by the
// rendezvous strategy and must be the same on every node, the pool ID is a
// natural choice.
func New(strategy Strategy, seed string) (Selector, error) {
	switch strategy {
	case StrategyLexicographic:
		return Lexicographic{}, nil
	case StrategyNumericSuffix, "":
		return NumericSuffix{}, nil
	case StrategyRendezvous:
		return Rendezvous{Seed: seed}, nil
	default:
		return nil, fmt.Errorf("unknown election strategy: %q", strategy)
	}
}

// SelectFromNodes runs the selector over the identifiers of the given nodes.
func SelectFromNodes(sel Selector, nodes []pool.Node) (string, error) {
	return sel.SelectMaster(pool.NodeIDs(nodes))
}

// candidates removes duplicates and empty identifiers.
func candidates(ids []string) ([]string, error) {
	uniq := set.New(generic.Filter(ids, func(id string) bool {
		return id != ""
	})...)

	if uniq.Len() == 0 {
		return nil, ErrNoEligibleMaster
	}

	return uniq.Values(), nil
}
