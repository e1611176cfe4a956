// Implements the WaitQueue, one per server, holding customers waiting for
// that server. Customers are enqueued on arrival routing and dequeued in
// first-come-first-served order when the server's slot frees up.

package sim

import (
	"fmt"
	"strings"
)

// WaitQueue is a FIFO queue of customers waiting for one server.
// Insertion order is arrival routing order; the only consumer is the
// move-to-server transition, which always takes the front.
type WaitQueue struct {
	queue []*Customer
}

// Enqueue adds a customer to the back of the queue.
func (wq *WaitQueue) Enqueue(c *Customer) {
	wq.queue = append(wq.queue, c)
}

// Dequeue removes and returns the customer at the front of the queue.
// Returns nil if the queue is empty.
func (wq *WaitQueue) Dequeue() *Customer {
	if len(wq.queue) == 0 {
		return nil
	}
	front := wq.queue[0]
	wq.queue = wq.queue[1:]
	return front
}

// Peek returns the front customer without removing it, or nil if empty.
func (wq *WaitQueue) Peek() *Customer {
	if len(wq.queue) == 0 {
		return nil
	}
	return wq.queue[0]
}

// Len returns the number of waiting customers.
func (wq *WaitQueue) Len() int {
	return len(wq.queue)
}

func (wq *WaitQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, c := range wq.queue {
		sb.WriteString(fmt.Sprint(c.ID))
		if i < len(wq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
