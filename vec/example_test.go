package vec_test

import (
	"fmt"

	"github.com/plus3/inplace/vec"
)

func ExampleVector() {
	v := vec.New[string](4)
	_ = v.Push("a")
	_ = v.Push("c")
	_, _ = v.Insert(1, "b")

	for i, s := range v.All() {
		fmt.Println(i, s)
	}
	fmt.Println(v.Reserve(5))
	// Output:
	// 0 a
	// 1 b
	// 2 c
	// vec: capacity exceeded: need 5 slots, capacity 4
}

func ExampleVector_Erase() {
	v, _ := vec.Of(5, 1, 2, 3, 4, 5)
	_, _ = v.Erase(1, 3)
	fmt.Println(v.Data())
	// Output:
	// [1 4 5]
}

func ExampleVector_Push() {
	v := vec.New[int](2)
	fmt.Println(v.Push(1))
	fmt.Println(v.Push(2))
	fmt.Println(v.Push(3))
	// Output:
	// <nil>
	// <nil>
	// vec: capacity exceeded: need 3 slots, capacity 2
}
