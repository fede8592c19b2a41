package order_test

import (
	"fmt"

	"github.com/matzehuels/gridsort/pkg/order"
)

func ExampleStore_Swap() {
	m, _ := order.Init([]string{"a", "b", "c", "d", "e", "f"})
	store := order.NewStore(m)

	store.Subscribe("f", func(o int) {
		fmt.Println("f moved to", o)
	})

	_ = store.Swap("a", "f")
	fmt.Println(store.Load().IDs())
	// Output:
	// f moved to 0
	// [f b c d e a]
}
