package model

// Branch is a matha branch or affiliated centre.
type Branch struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Address   string   `json:"address"`
	City      string   `json:"city"`
	State     string   `json:"state"`
	Pincode   string   `json:"pincode"`
	Phone     string   `json:"phone,omitempty"`
	Email     string   `json:"email,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
	Timings   string   `json:"timings,omitempty"`
}

// Gallery item types.
const (
	GalleryTypeImage = "image"
	GalleryTypeVideo = "video"
)

// GalleryItem is a photo or video in the media gallery.
type GalleryItem struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Type         string `json:"type"`
	URL          string `json:"url"`
	ThumbnailURL string `json:"thumbnail_url,omitempty"`
	Category     string `json:"category"`
	EventDate    string `json:"event_date,omitempty"`
	CreatedAt    string `json:"created_at"`
}

// Notification types and priorities.
const (
	NotificationTypeAnnouncement = "announcement"
	NotificationTypeEvent        = "event"
	NotificationTypeSeva         = "seva"
	NotificationTypeAlert        = "alert"

	NotificationPriorityLow    = "low"
	NotificationPriorityMedium = "medium"
	NotificationPriorityHigh   = "high"
)

// Notification is an active notice shown to devotees.
type Notification struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	Priority  string `json:"priority"`
	Link      string `json:"link,omitempty"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

// Publication types.
const (
	PublicationTypeBook       = "book"
	PublicationTypePravachana = "pravachana"
	PublicationTypeArticle    = "article"
)

// Publication is a book, pravachana recording, or article.
type Publication struct {
	ID            string `json:"id"`
	Title         string `json:"title"`
	Author        string `json:"author,omitempty"`
	Description   string `json:"description,omitempty"`
	Type          string `json:"type"`
	Language      string `json:"language"`
	CoverURL      string `json:"cover_url,omitempty"`
	FileURL       string `json:"file_url,omitempty"`
	PublishedYear int    `json:"published_year,omitempty"`
	CreatedAt     string `json:"created_at"`
}

// PanchangaDay is the almanac detail for one day.
type PanchangaDay struct {
	Tithi          string   `json:"tithi"`
	Paksha         string   `json:"paksha"`
	Vaara          string   `json:"vaara"`
	Nakshatra      string   `json:"nakshatra"`
	Yoga           string   `json:"yoga"`
	Karana         string   `json:"karana"`
	Sunrise        string   `json:"sunrise"`
	Sunset         string   `json:"sunset"`
	Moonrise       string   `json:"moonrise"`
	Moonset        string   `json:"moonset"`
	RahuKala       string   `json:"rahu_kala"`
	YamaGanda      string   `json:"yama_ganda"`
	GulikaKala     string   `json:"gulika_kala"`
	AbhijitMuhurta string   `json:"abhijit_muhurta"`
	BrahmaMuhurta  string   `json:"brahma_muhurta"`
	SpecialEvents  []string `json:"special_events,omitempty"`
}

// TempleEvent is an upcoming festival or observance.
type TempleEvent struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
}

// VrindavanaLocation marks where a guru's brindavana is situated.
type VrindavanaLocation struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

// Guru is one entry of the guru parampara lineage.
type Guru struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	KannadaName   string              `json:"kannada_name,omitempty"`
	Title         string              `json:"title,omitempty"`
	Period        string              `json:"period"`
	AshramaGuru   string              `json:"ashrama_guru,omitempty"`
	Shishya       string              `json:"shishya,omitempty"`
	AaradhaneDate string              `json:"aaradhane_date,omitempty"`
	Biography     string              `json:"biography"`
	BiographyHTML string              `json:"biography_html,omitempty"`
	KeyWorks      []string            `json:"key_works,omitempty"`
	Vrindavana    *VrindavanaLocation `json:"vrindavana,omitempty"`
	IsBhootaraja  bool                `json:"is_bhootaraja,omitempty"`
}

// NewsItem is a headline card on the home feed.
type NewsItem struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url,omitempty"`
}

// TimingRow is one row of the temple timings table on the home feed.
type TimingRow struct {
	Location string `json:"location"`
	Darshan  string `json:"darshan"`
	Prasada  string `json:"prasada"`
}

// Announcement is a short notice published from the admin panel.
type Announcement struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}
