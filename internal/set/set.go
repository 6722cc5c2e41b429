package set

import "github.com/maxpoletaev/sparkpool/internal/generic"

type Set[T comparable] map[T]struct{}

func (s Set[T]) Add(val T) {
	s[val] = struct{}{}
}

func (s Set[T]) Values() []T {
	return generic.MapKeys(s)
}

func (s Set[T]) Len() int {
	return len(s)
}

func New[T comparable](sl ...T) Set[T] {
	set := make(Set[T], len(sl))
	for _, val := range sl {
		set.Add(val)
	}
	return set
}
