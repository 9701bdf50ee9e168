package entities

// Identity describes the running process as reported in the header block.
type Identity struct {
	PID      int
	ThreadID uint64
	// Name is the executable name, used when the argument vector is empty.
	Name     string
	Platform string
}
