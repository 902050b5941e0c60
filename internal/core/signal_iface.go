package core

// Frame is a raw outbound payload, already encoded for the wire.
type Frame []byte

// SignalConnection abstracts a session's messaging transport.
// Owned by the adapter; the adapter must Close() it.
type SignalConnection interface {
	TrySend(Frame) error
	Close()
}
