package collections_test

import (
	"fmt"

	"github.com/therobotinitiative/Halcyon/halcyon/collections"
)

func ExamplePushFront() {
	recent := []string{"b.txt", "c.txt"}

	collections.PushFront(&recent, "a.txt")
	collections.PushFront[string](nil, "ignored")

	fmt.Println(recent)

	// Output:
	// [a.txt b.txt c.txt]
}

func ExampleAddIfPossible() {
	queue := collections.NewBoundedQueue[int](1)

	collections.AddIfPossible[int](queue, 1)
	collections.AddIfPossible[int](queue, 2)

	first, ok := collections.PopFirst[int](queue)

	fmt.Println(first, ok, queue.Len())

	// Output:
	// 1 true 0
}
