package partition

// busyItem is a track that is occupied until end.
type busyItem struct {
	end float64
	idx int
}

// busyPQ is a min-heap of busyItem by end, then track index.
type busyPQ []busyItem

func (pq busyPQ) Len() int { return len(pq) }

func (pq busyPQ) Less(i, j int) bool {
	if pq[i].end != pq[j].end {
		return pq[i].end < pq[j].end
	}

	return pq[i].idx < pq[j].idx
}

func (pq busyPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *busyPQ) Push(x interface{}) { *pq = append(*pq, x.(busyItem)) }

func (pq *busyPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// freePQ is a min-heap of free track indices.
type freePQ []int

func (pq freePQ) Len() int            { return len(pq) }
func (pq freePQ) Less(i, j int) bool  { return pq[i] < pq[j] }
func (pq freePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *freePQ) Push(x interface{}) { *pq = append(*pq, x.(int)) }

func (pq *freePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	idx := old[n-1]
	*pq = old[:n-1]

	return idx
}
