package content

import "github.com/PRAJWAL-RAMGOND/matha-connect/internal/model"

// Built-in datasets served whenever the remote backend is unavailable or
// empty. They mirror the matha's published information so the app stays
// useful offline.

func ptrFloat(v float64) *float64 { return &v }

// FallbackBranches returns the known matha branches and affiliated centres.
func FallbackBranches() []model.Branch {
	return []model.Branch{
		{
			ID:        "sode",
			Name:      "Sode Sri Vadiraja Matha",
			Address:   "Sode Village, Sirsi Taluk",
			City:      "Sirsi",
			State:     "Karnataka",
			Pincode:   "581402",
			Phone:     "+91 8384 234567",
			Email:     "office@sodematha.in",
			Latitude:  ptrFloat(14.6167),
			Longitude: ptrFloat(74.8333),
			Timings:   "5:00 AM - 8:30 PM",
		},
		{
			ID:        "udupi",
			Name:      "Sode Matha, Udupi",
			Address:   "Car Street, near Sri Krishna Matha",
			City:      "Udupi",
			State:     "Karnataka",
			Pincode:   "576101",
			Phone:     "+91 820 2520598",
			Latitude:  ptrFloat(13.3409),
			Longitude: ptrFloat(74.7421),
			Timings:   "5:30 AM - 9:00 PM",
		},
		{
			ID:      "bengaluru",
			Name:    "Sode Matha Branch, Bengaluru",
			Address: "Gandhi Bazaar, Basavanagudi",
			City:    "Bengaluru",
			State:   "Karnataka",
			Pincode: "560004",
			Phone:   "+91 80 26612345",
			Timings: "6:00 AM - 8:00 PM",
		},
		{
			ID:      "mumbai",
			Name:    "Sode Matha Branch, Mumbai",
			Address: "Matunga East",
			City:    "Mumbai",
			State:   "Maharashtra",
			Pincode: "400019",
			Phone:   "+91 22 24012345",
			Timings: "6:00 AM - 8:30 PM",
		},
	}
}

// FallbackGallery returns sample gallery items from recent utsavas.
func FallbackGallery() []model.GalleryItem {
	return []model.GalleryItem{
		{
			ID:        "g1",
			Title:     "Sri Vadiraja Aradhana Mahotsava",
			Type:      model.GalleryTypeImage,
			URL:       "/media/aradhana-mahotsava.jpg",
			Category:  "festivals",
			EventDate: "2026-03-08",
			CreatedAt: "2026-03-09T08:00:00Z",
		},
		{
			ID:        "g2",
			Title:     "Chaturmasya Sankalpa at Sode",
			Type:      model.GalleryTypeImage,
			URL:       "/media/chaturmasya-sankalpa.jpg",
			Category:  "observances",
			EventDate: "2026-07-10",
			CreatedAt: "2026-07-10T18:30:00Z",
		},
		{
			ID:        "g3",
			Title:     "Evening Deepotsava",
			Type:      model.GalleryTypeVideo,
			URL:       "/media/deepotsava.mp4",
			Category:  "darshana",
			CreatedAt: "2026-01-14T19:00:00Z",
		},
		{
			ID:        "g4",
			Title:     "Annadaana Seva",
			Type:      model.GalleryTypeImage,
			URL:       "/media/annadaana.jpg",
			Category:  "seva",
			CreatedAt: "2025-12-20T12:30:00Z",
		},
	}
}

// FallbackNotifications returns the standing notices shown to devotees.
func FallbackNotifications() []model.Notification {
	return []model.Notification{
		{
			ID:        "n1",
			Title:     "Sri Vadiraja Aradhana",
			Message:   "Aradhana Mahotsava in March 2026. All devotees welcome.",
			Type:      model.NotificationTypeEvent,
			Priority:  model.NotificationPriorityHigh,
			IsActive:  true,
			CreatedAt: "2026-02-01T06:00:00Z",
		},
		{
			ID:        "n2",
			Title:     "Chaturmasya Sankalpa",
			Message:   "Chaturmasya Sankalpa at Udupi. Register now for sevas.",
			Type:      model.NotificationTypeSeva,
			Priority:  model.NotificationPriorityMedium,
			IsActive:  true,
			CreatedAt: "2026-02-10T06:00:00Z",
		},
		{
			ID:        "n3",
			Title:     "Youth Quiz Competition",
			Message:   "Register before Feb 28 for the youth quiz competition.",
			Type:      model.NotificationTypeAnnouncement,
			Priority:  model.NotificationPriorityMedium,
			IsActive:  true,
			CreatedAt: "2026-02-12T09:00:00Z",
		},
		{
			ID:        "n4",
			Title:     "Live Darshana",
			Message:   "Daily live darshana streaming now available on YouTube.",
			Type:      model.NotificationTypeAnnouncement,
			Priority:  model.NotificationPriorityLow,
			IsActive:  true,
			CreatedAt: "2026-01-20T08:00:00Z",
		},
	}
}

// FallbackPublications returns the matha's core published works.
func FallbackPublications() []model.Publication {
	return []model.Publication{
		{
			ID:        "p1",
			Title:     "Yukti Mallika",
			Author:    "Sri Vadiraja Theertha",
			Type:      model.PublicationTypeBook,
			Language:  "Sanskrit",
			CreatedAt: "2025-11-01T00:00:00Z",
		},
		{
			ID:        "p2",
			Title:     "Tirtha Prabandha",
			Author:    "Sri Vadiraja Theertha",
			Type:      model.PublicationTypeBook,
			Language:  "Sanskrit",
			CreatedAt: "2025-11-01T00:00:00Z",
		},
		{
			ID:        "p3",
			Title:     "Lakshmi Shobhane",
			Author:    "Sri Vadiraja Theertha",
			Type:      model.PublicationTypeBook,
			Language:  "Kannada",
			CreatedAt: "2025-11-01T00:00:00Z",
		},
		{
			ID:        "p4",
			Title:     "Dvaita Vedanta: An Introduction for Youth",
			Type:      model.PublicationTypeArticle,
			Language:  "English",
			CreatedAt: "2026-01-05T00:00:00Z",
		},
		{
			ID:        "p5",
			Title:     "Chaturmasya Pravachana Series",
			Type:      model.PublicationTypePravachana,
			Language:  "Kannada",
			CreatedAt: "2025-08-15T00:00:00Z",
		},
	}
}

// FallbackEvents returns the upcoming festival calendar.
func FallbackEvents() []model.TempleEvent {
	return []model.TempleEvent{
		{ID: "e1", Title: "Magha Shudha Ekadashi", Date: "Feb 15", Description: "Vrata"},
		{ID: "e2", Title: "Magha Poornima", Date: "Feb 19", Description: "Festival"},
		{ID: "e3", Title: "Phalguna Shudha Ekadashi", Date: "Mar 01", Description: "Vrata"},
		{ID: "e4", Title: "Sri Vadiraja Aradhana", Date: "Mar 08", Description: "Aradhana"},
		{ID: "e5", Title: "Holi / Kamadahana", Date: "Mar 14", Description: "Festival"},
		{ID: "e6", Title: "Ugadi, Hindu New Year", Date: "Mar 26", Description: "Festival"},
		{ID: "e7", Title: "Sri Rama Navami", Date: "Apr 06", Description: "Festival"},
		{ID: "e8", Title: "Hanuman Jayanti", Date: "Apr 10", Description: "Festival"},
	}
}

// GuruParampara returns the lineage of the Sode matha, founder first,
// with Sri Bhootarajaru appended as the guardian entry.
func GuruParampara() []model.Guru {
	sode := &model.VrindavanaLocation{Name: "Sode, Sirsi, Karnataka", Latitude: 14.6167, Longitude: 74.8333}
	return []model.Guru{
		{
			ID:            "sri-vadiraja-theertha",
			Name:          "Sri Vadiraja Theertha",
			KannadaName:   "ಶ್ರೀ ವಾದಿರಾಜ ತೀರ್ಥರು",
			Title:         "Founder",
			Period:        "1480-1600 CE",
			AshramaGuru:   "Sri Vageesha Theertha",
			Shishya:       "Sri Vedavyasa Theertha",
			AaradhaneDate: "Phalguna Shukla Tritiya",
			Biography: "Sri Vadiraja Theertha, one of the greatest saints of the Dvaita tradition, " +
				"was a renowned scholar, poet, and social reformer. Born as Bhuvarahacharya, he was " +
				"initiated into sanyasa by Sri Vageesha Theertha. He served as the pontiff of the Sode " +
				"Matha for over 80 years, composing numerous literary and philosophical works. He is " +
				"celebrated for his devotion to Lord Hayagriva and Trivikrama.",
			KeyWorks: []string{
				"Yukti Mallika",
				"Tirtha Prabandha",
				"Lakshmi Shobhane",
				"Dashavathara Stuti",
				"Svapna Vrindavana Akhyana",
			},
			Vrindavana: sode,
		},
		{
			ID:            "sri-vedavyasa-theertha",
			Name:          "Sri Vedavyasa Theertha",
			KannadaName:   "ಶ್ರೀ ವೇದವ್ಯಾಸ ತೀರ್ಥರು",
			Period:        "1600-1640 CE",
			AshramaGuru:   "Sri Vadiraja Theertha",
			Shishya:       "Sri Vidyadhiraja Theertha",
			AaradhaneDate: "Margashirsha Krishna Pratipada",
			Biography: "Sri Vedavyasa Theertha was a devoted disciple of Sri Vadiraja Theertha and " +
				"continued the rich spiritual lineage of the Sode Matha. He was known for his deep " +
				"scholarship and devotion.",
			KeyWorks:   []string{"Continuation of Matha traditions"},
			Vrindavana: sode,
		},
		{
			ID:            "sri-vidyadhiraja-theertha",
			Name:          "Sri Vidyadhiraja Theertha",
			KannadaName:   "ಶ್ರೀ ವಿದ್ಯಾಧಿರಾಜ ತೀರ್ಥರು",
			Period:        "1640-1680 CE",
			AshramaGuru:   "Sri Vedavyasa Theertha",
			Shishya:       "Sri Vishwapathi Theertha",
			AaradhaneDate: "Vaishakha Shukla Navami",
			Biography: "Sri Vidyadhiraja Theertha upheld the Dvaita tradition with dedication, " +
				"preserving the teachings and legacy of the Sode Matha during his pontificate.",
			KeyWorks:   []string{"Preservation of Matha heritage"},
			Vrindavana: sode,
		},
		{
			ID:            "sri-vishwapathi-theertha",
			Name:          "Sri Vishwapathi Theertha",
			KannadaName:   "ಶ್ರೀ ವಿಶ್ವಪತಿ ತೀರ್ಥರು",
			Period:        "1680-1720 CE",
			AshramaGuru:   "Sri Vidyadhiraja Theertha",
			Shishya:       "Sri Vishwanidhi Theertha",
			AaradhaneDate: "Aashada Shukla Chaturthi",
			Biography: "Sri Vishwapathi Theertha served the Sode Matha with great devotion, " +
				"nurturing the spiritual traditions passed down through the lineage.",
			KeyWorks:   []string{"Spiritual discourses and traditions"},
			Vrindavana: sode,
		},
		{
			ID:          "sri-vishwothama-theertha",
			Name:        "Sri Sri Vishwothama Theertha Swamiji",
			KannadaName: "ಶ್ರೀ ಶ್ರೀ ವಿಶ್ವೋತ್ತಮ ತೀರ್ಥ ಶ್ರೀಪಾದಂಗಳವರು",
			Title:       "Current Peetadhipathi",
			Period:      "1980-Present",
			AshramaGuru: "Sri Vishwapriya Theertha",
			Shishya:     "Sri Vishwavallabha Theertha",
			Biography: "Sri Sri Vishwothama Theertha Swamiji is the current Peetadhipathi of Sode " +
				"Sri Vadiraja Matha. Under his leadership, the Matha has expanded its spiritual, " +
				"educational, and social service activities significantly across India.",
			KeyWorks: []string{
				"Expansion of Matha activities",
				"Social service initiatives",
				"Annadaana programs",
				"Educational institutions",
			},
		},
		{
			ID:          "sri-vishwavallabha-theertha",
			Name:        "Sri Sri Vishwavallabha Theertha Swamiji",
			KannadaName: "ಶ್ರೀ ಶ್ರೀ ವಿಶ್ವವಲ್ಲಭ ತೀರ್ಥ ಶ್ರೀಪಾದಂಗಳವರು",
			Title:       "Peetadhipathi",
			Period:      "2015-Present",
			AshramaGuru: "Sri Vishwothama Theertha",
			Biography: "Sri Sri Vishwavallabha Theertha Swamiji is carrying forward the legacy of " +
				"the Sode Matha with youthful energy, engaging with devotees across the world and " +
				"promoting Dvaita philosophy among the younger generation.",
			KeyWorks: []string{
				"Youth engagement programs",
				"Digital outreach",
				"Promotion of Dvaita philosophy",
			},
		},
		{
			ID:          "sri-bhootarajaru",
			Name:        "Sri Bhootarajaru",
			KannadaName: "ಶ್ರೀ ಭೂತರಾಜರು",
			Period:      "Eternal Divine Attendant",
			Biography: "Sri Bhootarajaru is revered as the divine attendant and guardian spirit of " +
				"the Sode Sri Vadiraja Matha. Devotees believe that Sri Bhootarajaru, blessed by Sri " +
				"Vadiraja Theertha himself, continues to protect the Matha and its devotees. The " +
				"sacred shrine of Sri Bhootarajaru at Sode is a place of immense devotion where " +
				"devotees seek blessings for protection and well-being.",
			KeyWorks: []string{
				"Guardian of Sode Matha",
				"Divine protector of devotees",
				"Blessed by Sri Vadiraja Theertha",
			},
			Vrindavana:   sode,
			IsBhootaraja: true,
		},
	}
}

// Sevas returns the bookable seva catalog with offering amounts in rupees.
func Sevas() []model.Seva {
	return []model.Seva{
		{ID: "abhisheka", Name: "Abhisheka Seva", Description: "Sacred abhisheka to the Lord", Amount: 501},
		{ID: "anna", Name: "Anna Santarpane", Description: "Feeding devotees & community", Amount: 1001},
		{ID: "satyanarayana", Name: "Satyanarayana Pooja", Description: "For prosperity & well-being", Amount: 2501},
		{ID: "tulabhara", Name: "Tulabhara", Description: "Offering equivalent weight in grains", Amount: 1101},
		{ID: "kumkumarchana", Name: "Kumkumarchana", Description: "Worship with kumkum", Amount: 351},
		{ID: "navagraha", Name: "Navagraha Homa", Description: "Planetary peace homa", Amount: 3001},
	}
}

// RoomTypes returns the guest house accommodation categories.
func RoomTypes() []model.RoomType {
	return []model.RoomType{
		{ID: "single", Name: "Single Room", Description: "For 1-2 persons", Rate: 500},
		{ID: "double", Name: "Double Room", Description: "For 2-4 persons", Rate: 800},
		{ID: "dormitory", Name: "Dormitory", Description: "Shared accommodation", Rate: 200, PerBed: true},
		{ID: "family", Name: "Family Suite", Description: "For families up to 6", Rate: 1200},
	}
}

// HomeNews returns the headline cards for the home feed.
func HomeNews() []model.NewsItem {
	return []model.NewsItem{
		{ID: 1, Title: "Chaturmasya Vrata commences at Sode Matha"},
		{ID: 2, Title: "Special Puja for Narasimha Jayanti celebrations"},
		{ID: 3, Title: "Sri Vadiraja Aradhana Mahotsava dates announced"},
		{ID: 4, Title: "Dasa Sahitya lecture series this weekend"},
		{ID: 5, Title: "New Annadaana initiative launched for devotees"},
	}
}

// HomeAnnouncements returns the scrolling ticker lines for the home feed.
func HomeAnnouncements() []string {
	return []string{
		"Sri Vadiraja Aradhana - March 2026 - All devotees welcome",
		"Chaturmasya Sankalpa at Udupi - Register now for sevas",
		"Youth Quiz Competition - Register before Feb 28",
		"Daily live darshana streaming now available on YouTube",
	}
}

// HomeTimings returns the temple timings table for the home feed.
func HomeTimings() []model.TimingRow {
	return []model.TimingRow{
		{Location: "Sode", Darshan: "5:00 a.m. to 8:30 a.m.", Prasada: "Noon 11:30 a.m."},
	}
}
