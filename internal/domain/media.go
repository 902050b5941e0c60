package domain

import "time"

// MediaKind is one of the three publication channels a session may hold.
type MediaKind string

const (
	MediaScreen MediaKind = "screen"
	MediaAudio  MediaKind = "audio"
	MediaVideo  MediaKind = "video"
)

func (k MediaKind) Valid() bool {
	switch k {
	case MediaScreen, MediaAudio, MediaVideo:
		return true
	}
	return false
}

// Kinds lists all media kinds in a fixed order.
func Kinds() []MediaKind {
	return []MediaKind{MediaScreen, MediaAudio, MediaVideo}
}

// Publication is a session's active outbound stream of one kind.
// At most one live Publication exists per (session, kind).
type Publication struct {
	SessionID SessionID
	Room      RoomName
	Kind      MediaKind
	StartedAt time.Time
}
