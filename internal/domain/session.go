package domain

// Session represents the authenticated identity stored under SessionKey.
// Only uid and email are persisted; the admin flag is re-derived from the
// configured administrator email on every sign-in and session restore.
type Session struct {
	UID     string `json:"uid"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"-"`
}

// StatusNotification is emitted by the status watcher when an
// externally-applied status change is detected for a booking.
type StatusNotification struct {
	OwnerID  string        `json:"ownerId"`
	Building string        `json:"building"`
	Day      string        `json:"day"`
	Time     string        `json:"time"`
	Status   BookingStatus `json:"status"`
	Label    string        `json:"label"`
	Message  string        `json:"message"`
}
