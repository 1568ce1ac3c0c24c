package model

// Volunteer request statuses.
const (
	VolunteerStatusPending  = "pending"
	VolunteerStatusApproved = "approved"
	VolunteerStatusRejected = "rejected"
)

// VolunteerRequest is a devotee's offer to volunteer, reviewed by admins.
type VolunteerRequest struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// AnalyticsRow is one bucket of the seva bookings analytics view.
type AnalyticsRow struct {
	Label    string `json:"label"` // weekday, week, or month name
	Bookings int64  `json:"bookings"`
	Amount   int64  `json:"amount"`
}

// Analytics tiers. Only the daily tier is recomputed from live data.
const (
	AnalyticsTierDaily   = "daily"
	AnalyticsTierWeekly  = "weekly"
	AnalyticsTierMonthly = "monthly"
)

// ExportUser is one row of the privacy export download.
type ExportUser struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Consent bool   `json:"consent"`
}

// MediaItem is a gallery entry published from the admin panel.
type MediaItem struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	Type      string `json:"type"`
	CreatedAt string `json:"created_at"`
}

// TimingUpdate is a temple timings row published from the admin panel.
type TimingUpdate struct {
	ID        string `json:"id"`
	Location  string `json:"location"`
	Darshan   string `json:"darshan"`
	Prasada   string `json:"prasada"`
	CreatedAt string `json:"created_at"`
}

// BulkNotification is a queued broadcast message.
type BulkNotification struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}
