package main

import (
	"fmt"
	"time"

	"forward-list/forwardlist"
	"forward-list/internal/platform/helper"
)

const bulkCount = 2_000_000

func printList[T any](label string, l *forwardlist.List[T]) {
	fmt.Printf("%s: %v size=%d empty=%t\n", label, l.Values(), l.Len(), l.IsEmpty())
}

func main() {
	l := forwardlist.New[int]()
	printList("fresh", l)

	l.PushFront(3)
	l.PushFront(2)
	l.PushFront(1)
	printList("after PushFront 3,2,1", l)

	l.InsertAfter(l.Begin(), 10)
	printList("after InsertAfter(begin, 10)", l)

	l.EraseAfter(l.Begin())
	printList("after EraseAfter(begin)", l)

	l.PopFront()
	printList("after PopFront", l)

	clone := l.Clone()
	clone.PushFront(-1)
	printList("clone mutated", clone)
	printList("original untouched", l)

	other := forwardlist.Of(7, 8, 9)
	forwardlist.Swap(l, other)
	printList("after swap, l", l)
	printList("after swap, other", other)

	fmt.Printf("Equal(l, clone)=%t Less(other, l)=%t\n",
		forwardlist.Equal(l, clone), forwardlist.Less(other, l))

	{
		start := time.Now()
		bulk := forwardlist.New[int]()
		for i := 0; i < bulkCount; i++ {
			helper.Log.Debugf("Pushing element %d", i)
			bulk.PushFront(i)
		}
		elapsed := time.Since(start)
		fmt.Printf("Time elapsed PushFront x%d: %s\n", bulkCount, elapsed)

		start = time.Now()
		sum := 0
		for v := range bulk.All() {
			sum += v
		}
		elapsed = time.Since(start)
		fmt.Printf("Time elapsed traversal: %s (sum %d)\n", elapsed, sum)

		start = time.Now()
		bulk.Clear()
		elapsed = time.Since(start)
		fmt.Printf("Time elapsed Clear: %s (size %d)\n", elapsed, bulk.Len())
	}

	helper.Log.Info("demo finished")
}
