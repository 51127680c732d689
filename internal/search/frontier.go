package search

import "container/heap"

// Node is one frontier entry: a state together with its path cost and,
// for the priority-ordered engines, the priority it was pushed with
// (cost for UCS, cost+heuristic for A*).
type Node struct {
	State    *State
	Cost     int
	Priority int
	seq      int
}

// Frontier is the open list every search engine drives through the same
// loop (spec.md §4.7); only its push/pop order differs between
// strategies.
type Frontier interface {
	Push(n *Node)
	Pop() *Node
	IsEmpty() bool
	Size() int
}

// stackFrontier is last-in-first-out, giving depth-first search.
type stackFrontier struct {
	nodes []*Node
}

func (f *stackFrontier) Push(n *Node) { f.nodes = append(f.nodes, n) }

func (f *stackFrontier) Pop() *Node {
	n := f.nodes[len(f.nodes)-1]
	f.nodes = f.nodes[:len(f.nodes)-1]
	return n
}

func (f *stackFrontier) IsEmpty() bool { return len(f.nodes) == 0 }
func (f *stackFrontier) Size() int     { return len(f.nodes) }

// queueFrontier is first-in-first-out, giving breadth-first search.
type queueFrontier struct {
	nodes []*Node
	head  int
}

func (f *queueFrontier) Push(n *Node) { f.nodes = append(f.nodes, n) }

func (f *queueFrontier) Pop() *Node {
	n := f.nodes[f.head]
	f.nodes[f.head] = nil
	f.head++
	if f.head > 64 && f.head*2 > len(f.nodes) {
		remaining := append([]*Node(nil), f.nodes[f.head:]...)
		f.nodes = remaining
		f.head = 0
	}
	return n
}

func (f *queueFrontier) IsEmpty() bool { return f.head >= len(f.nodes) }
func (f *queueFrontier) Size() int     { return len(f.nodes) - f.head }

// heapItems backs priorityFrontier's container/heap plumbing.
type heapItems []*Node

func (h heapItems) Len() int { return len(h) }
func (h heapItems) Less(i, j int) bool {
	if h[i].Priority != h[j].Priority {
		return h[i].Priority < h[j].Priority
	}
	return h[i].seq < h[j].seq
}
func (h heapItems) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *heapItems) Push(x interface{}) {
	*h = append(*h, x.(*Node))
}
func (h *heapItems) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// priorityFrontier orders by ascending Priority, giving UCS (priority =
// cost) or A* (priority = cost + heuristic) depending on what the caller
// sets on each Node before pushing. Ties break by push order so equal-
// priority nodes behave like a FIFO queue, keeping results deterministic.
type priorityFrontier struct {
	items heapItems
	seq   int
}

func (f *priorityFrontier) Push(n *Node) {
	n.seq = f.seq
	f.seq++
	heap.Push(&f.items, n)
}

func (f *priorityFrontier) Pop() *Node {
	return heap.Pop(&f.items).(*Node)
}

func (f *priorityFrontier) IsEmpty() bool { return len(f.items) == 0 }
func (f *priorityFrontier) Size() int     { return len(f.items) }

func newFrontier(strategy string) Frontier {
	switch strategy {
	case "bfs":
		return &queueFrontier{}
	case "ucs", "astar":
		return &priorityFrontier{}
	default:
		return &stackFrontier{}
	}
}
