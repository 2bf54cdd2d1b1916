package traversal

// queue is a FIFO of slots backed by a single slice. Popped entries are not
// reclaimed; a traversal pushes each slot at most once, so the slice never
// grows past the node count.
type queue struct {
	items []int
	head  int
}

func newQueue(capacity int) *queue {
	return &queue{items: make([]int, 0, capacity)}
}

func (q *queue) push(slot int) {
	q.items = append(q.items, slot)
}

func (q *queue) pop() int {
	slot := q.items[q.head]
	q.head++
	return slot
}

func (q *queue) empty() bool {
	return q.head == len(q.items)
}
