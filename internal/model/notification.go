package model

// Notification is an activity entry served by /fakeApi/notifications.
type Notification struct {
	ID      string `json:"id"`
	Date    string `json:"date"`
	Message string `json:"message"`
	User    string `json:"user"`
	Read    bool   `json:"read"`
	// IsNew is !Read as of the last merge. Marking everything read clears it.
	IsNew bool `json:"isNew"`
}
