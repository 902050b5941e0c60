package domain

// RoomName is a named partition of sessions sharing a broadcast scope
// and coordinate space. Rooms are implicit; they exist while occupied.
type RoomName string

func (r RoomName) Valid() bool {
	return r != "" && len(r) <= MaxRoomNameLen
}
