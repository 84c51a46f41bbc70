// Package domain defines the core media types shared by the index,
// the enumerator, and the picker.
package domain

// Category is the kind of sound being picked.
type Category int

// Sound categories.
const (
	CategoryUnknown Category = iota
	CategoryRingtone
	CategoryNotification
	CategoryAlarm
)

// String returns the category name as stored in the index.
func (c Category) String() string {
	switch c {
	case CategoryRingtone:
		return "ringtone"
	case CategoryNotification:
		return "notification"
	case CategoryAlarm:
		return "alarm"
	default:
		return "unknown"
	}
}

// ParseCategory maps an index/config string back to a Category.
// Unrecognized input yields CategoryUnknown.
func ParseCategory(s string) Category {
	switch s {
	case "ringtone":
		return CategoryRingtone
	case "notification":
		return CategoryNotification
	case "alarm":
		return CategoryAlarm
	default:
		return CategoryUnknown
	}
}

// Sound is a single candidate in the index.
type Sound struct {
	URI      string
	Title    string
	Path     string
	Category Category
}

// Symbolic URIs for the per-category system defaults. A picker caller stores
// one of these to mean "follow the system default" rather than a concrete
// sound; the picker resolves it to a playable URI only for previewing.
const (
	DefaultRingtoneURI     = "tone://default/ringtone"
	DefaultNotificationURI = "tone://default/notification"
	DefaultAlarmURI        = "tone://default/alarm"
)

// DefaultURIFor returns the symbolic default URI for a category.
// Ringtone and Unknown both map to the ringtone default.
func DefaultURIFor(c Category) string {
	switch c {
	case CategoryNotification:
		return DefaultNotificationURI
	case CategoryAlarm:
		return DefaultAlarmURI
	default:
		return DefaultRingtoneURI
	}
}

// IsDefaultURI reports whether uri is one of the symbolic default URIs.
func IsDefaultURI(uri string) bool {
	switch uri {
	case DefaultRingtoneURI, DefaultNotificationURI, DefaultAlarmURI:
		return true
	default:
		return false
	}
}

// Stream selects which volume stream previews play on.
type Stream int

// Volume streams.
const (
	StreamMusic Stream = iota
	StreamRing
	StreamNotification
	StreamAlarm
)

// StreamFor returns the preferred preview stream for a category.
func StreamFor(c Category) Stream {
	switch c {
	case CategoryNotification:
		return StreamNotification
	case CategoryAlarm:
		return StreamAlarm
	case CategoryRingtone:
		return StreamRing
	default:
		return StreamMusic
	}
}

// AttributeFlags is a bitmask of playback attribute flags applied to a
// preview handle before it starts.
type AttributeFlags uint32

// Attribute flags.
const (
	// FlagEnforceAudible requests the sound play even under muted profiles.
	FlagEnforceAudible AttributeFlags = 1 << iota
	// FlagBypassMix routes playback past the shared mixer volume.
	FlagBypassMix
	// FlagLowLatency requests a small playback buffer.
	FlagLowLatency
)
