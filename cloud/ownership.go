package cloud

// Ownership tags who is responsible for a container's buffer. The tag is a
// proper type rather than a read-only flag so the mutation and growth rules
// are enforced where the buffer is touched.
type Ownership uint8

const (
	// Owned containers hold a private buffer they may mutate and grow.
	Owned Ownership = iota
	// BorrowedRO containers are immutable zero-copy views over external bytes.
	BorrowedRO
	// BorrowedRW containers may mutate external bytes in place but never
	// grow, reallocate or release them.
	BorrowedRW
)

// Mutable reports whether the container may write through its buffer.
func (o Ownership) Mutable() bool {
	return o != BorrowedRO
}

func (o Ownership) String() string {
	switch o {
	case Owned:
		return "owned"
	case BorrowedRO:
		return "borrowed-ro"
	case BorrowedRW:
		return "borrowed-rw"
	default:
		return "unknown"
	}
}
