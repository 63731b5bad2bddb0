package sorting

// Comparator defines an ordering over row elements: negative when a
// orders before b, zero when equal, positive when a orders after b.
type Comparator[T any] func(a, b T) int

// Reverse returns a comparator applying the opposite order of cmp.
func Reverse[T any](cmp Comparator[T]) Comparator[T] {
	return func(a, b T) int {
		return cmp(b, a)
	}
}
