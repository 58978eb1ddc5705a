package iterator

import "iter"

func Collect[T any](it iter.Seq[T]) []T {
	p := []T{}
	for value := range it {
		p = append(p, value)
	}
	return p
}

func Collect2[K, V any](it iter.Seq2[K, V]) ([]K, []V) {
	leftElems := []K{}
	rightElems := []V{}
	for left, right := range it {
		leftElems = append(leftElems, left)
		rightElems = append(rightElems, right)
	}
	return leftElems, rightElems
}

// TryCollect gathers values from a fallible iterator, stopping at and
// returning the first non-nil error.
func TryCollect[T any](it iter.Seq2[T, error]) ([]T, error) {
	p := []T{}
	for value, err := range it {
		if err != nil {
			return nil, err
		}
		p = append(p, value)
	}
	return p, nil
}
