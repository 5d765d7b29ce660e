package domain

// Storage key layout. One JSON array of bookings per owner plus two
// well-known keys for the current session and the theme preference.
const (
	BookingsKeyPrefix = "bookings_"
	SessionKey        = "washe_session"
	ThemeKey          = "wash-e-theme"
)

// Theme preference values
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Business validation constants
const (
	MinMachines      = 1
	MaxMachines      = 3
	DefaultMachines  = 1
	MaxCommentLength = 200
)

// Buildings список корпусов общежития с прачечными
var Buildings = []string{
	"Building 36",
	"Building 39",
}

// Days дни недели, доступные для бронирования
var Days = []string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

// Times часовые слоты, доступные для бронирования
var Times = []string{
	"08:00 AM",
	"09:00 AM",
	"10:00 AM",
	"11:00 AM",
	"12:00 PM",
	"01:00 PM",
	"02:00 PM",
	"03:00 PM",
	"04:00 PM",
	"05:00 PM",
	"06:00 PM",
	"07:00 PM",
	"08:00 PM",
}

// IsValidBuilding returns true if the building is in the catalog
func IsValidBuilding(building string) bool {
	return contains(Buildings, building)
}

// IsValidDay returns true if the day is a known weekday name
func IsValidDay(day string) bool {
	return contains(Days, day)
}

// IsValidTime returns true if the time is a known slot label
func IsValidTime(t string) bool {
	return contains(Times, t)
}

// IsValidTheme returns true if the value is a known theme preference
func IsValidTheme(theme string) bool {
	return theme == ThemeDark || theme == ThemeLight
}

func contains(list []string, value string) bool {
	for _, v := range list {
		if v == value {
			return true
		}
	}
	return false
}

// BookingsKey returns the storage key holding the booking list of the owner
func BookingsKey(ownerID string) string {
	return BookingsKeyPrefix + ownerID
}

// OwnerFromKey extracts the owner identity from a booking-list storage key
func OwnerFromKey(key string) string {
	return key[len(BookingsKeyPrefix):]
}
