package fptree

// headerEntry is the header-index record for one distinct item label: its
// rank (smaller = more frequent), the aggregate traversal-count summed
// over every tree node bearing this item, and the head/tail of the
// same-item sibling chain. The chain is append-only and preserves the
// creation order of the nodes that carry this item.
type headerEntry struct {
	item  string
	rank  int
	count int64
	head  *node
	tail  *node
}

// append attaches n to the logical end of this entry's sibling chain.
func (h *headerEntry) append(n *node) {
	if h.head == nil {
		h.head = n
		h.tail = n
		return
	}
	h.tail.next = n
	h.tail = n
}

// resetChain clears the read-count of every node on this entry's chain.
func (h *headerEntry) resetChain() {
	if h.head != nil {
		h.head.resetRead()
	}
}
