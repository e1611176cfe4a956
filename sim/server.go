package sim

// Server is a single-capacity service station fed by its own FIFO queue.
// The slot holds at most one customer; the only transition that fills it is
// move-to-server, and the only one that empties it is Finish.
type Server struct {
	// Queue holds customers routed here that have not started service.
	Queue *WaitQueue
	// InService is the slot occupant, or nil while the server is idle.
	InService *Customer
}

// NewServer creates an idle server with an empty queue.
func NewServer() *Server {
	return &Server{Queue: &WaitQueue{}}
}

// Busy reports whether the slot is occupied.
func (s *Server) Busy() bool {
	return s.InService != nil
}

// Load returns the server's load score used by arrival routing:
// waiting-queue length plus one if the slot is occupied.
func (s *Server) Load() int {
	load := s.Queue.Len()
	if s.Busy() {
		load++
	}
	return load
}
