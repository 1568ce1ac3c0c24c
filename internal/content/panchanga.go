package content

import (
	"time"

	"github.com/PRAJWAL-RAMGOND/matha-connect/internal/model"
)

// Almanac details are generated from weekday-indexed templates until the
// backend serves computed panchanga. Sunday is index 0, matching
// time.Weekday.
var panchangaTemplates = [7]model.PanchangaDay{
	{
		Tithi:          "Shukla Dwitiya",
		Paksha:         "Shukla",
		Vaara:          "Sunday",
		Nakshatra:      "Rohini",
		Yoga:           "Shubha",
		Karana:         "Balava",
		Sunrise:        "06:17 AM",
		Sunset:         "06:24 PM",
		Moonrise:       "08:44 AM",
		Moonset:        "09:40 PM",
		RahuKala:       "04:52 PM - 06:24 PM",
		YamaGanda:      "12:19 PM - 01:51 PM",
		GulikaKala:     "03:20 PM - 04:52 PM",
		AbhijitMuhurta: "12:01 PM - 12:49 PM",
		BrahmaMuhurta:  "04:41 AM - 05:29 AM",
		SpecialEvents:  []string{"Tulasi Archane", "Madhyahna Mahapuja", "Evening Deepotsava"},
	},
	{
		Tithi:          "Shukla Tritiya",
		Paksha:         "Shukla",
		Vaara:          "Monday",
		Nakshatra:      "Mrigashira",
		Yoga:           "Siddha",
		Karana:         "Kaulava",
		Sunrise:        "06:16 AM",
		Sunset:         "06:23 PM",
		Moonrise:       "09:31 AM",
		Moonset:        "10:24 PM",
		RahuKala:       "07:49 AM - 09:21 AM",
		YamaGanda:      "10:54 AM - 12:26 PM",
		GulikaKala:     "01:58 PM - 03:30 PM",
		AbhijitMuhurta: "12:01 PM - 12:49 PM",
		BrahmaMuhurta:  "04:40 AM - 05:28 AM",
		SpecialEvents:  []string{"Rudrabhisheka", "Parayana Satra", "Ratri Bhajane"},
	},
	{
		Tithi:          "Shukla Chaturthi",
		Paksha:         "Shukla",
		Vaara:          "Tuesday",
		Nakshatra:      "Ardra",
		Yoga:           "Dhruva",
		Karana:         "Taitila",
		Sunrise:        "06:16 AM",
		Sunset:         "06:23 PM",
		Moonrise:       "10:18 AM",
		Moonset:        "11:08 PM",
		RahuKala:       "03:29 PM - 05:01 PM",
		YamaGanda:      "09:20 AM - 10:52 AM",
		GulikaKala:     "12:25 PM - 01:57 PM",
		AbhijitMuhurta: "12:01 PM - 12:49 PM",
		BrahmaMuhurta:  "04:40 AM - 05:28 AM",
		SpecialEvents:  []string{"Ganapati Archane", "Chaturthi Sankalpa", "Maha Mangalarati"},
	},
	{
		Tithi:          "Shukla Panchami",
		Paksha:         "Shukla",
		Vaara:          "Wednesday",
		Nakshatra:      "Punarvasu",
		Yoga:           "Harshana",
		Karana:         "Garaja",
		Sunrise:        "06:15 AM",
		Sunset:         "06:22 PM",
		Moonrise:       "11:04 AM",
		Moonset:        "11:53 PM",
		RahuKala:       "12:24 PM - 01:56 PM",
		YamaGanda:      "07:47 AM - 09:19 AM",
		GulikaKala:     "10:51 AM - 12:23 PM",
		AbhijitMuhurta: "12:00 PM - 12:48 PM",
		BrahmaMuhurta:  "04:39 AM - 05:27 AM",
		SpecialEvents:  []string{"Hayagriva Stotra Parayana", "Vidya Seva", "Satsanga"},
	},
	{
		Tithi:          "Shukla Shashti",
		Paksha:         "Shukla",
		Vaara:          "Thursday",
		Nakshatra:      "Pushya",
		Yoga:           "Vajra",
		Karana:         "Vanija",
		Sunrise:        "06:15 AM",
		Sunset:         "06:22 PM",
		Moonrise:       "11:51 AM",
		Moonset:        "--",
		RahuKala:       "01:56 PM - 03:28 PM",
		YamaGanda:      "06:15 AM - 07:47 AM",
		GulikaKala:     "09:19 AM - 10:51 AM",
		AbhijitMuhurta: "12:00 PM - 12:48 PM",
		BrahmaMuhurta:  "04:39 AM - 05:27 AM",
		SpecialEvents:  []string{"Guru Vandane", "Vishnu Sahasranama", "Deepa Seva"},
	},
	{
		Tithi:          "Shukla Saptami",
		Paksha:         "Shukla",
		Vaara:          "Friday",
		Nakshatra:      "Ashlesha",
		Yoga:           "Sukarma",
		Karana:         "Vishti",
		Sunrise:        "06:14 AM",
		Sunset:         "06:21 PM",
		Moonrise:       "12:36 PM",
		Moonset:        "12:39 AM",
		RahuKala:       "10:50 AM - 12:22 PM",
		YamaGanda:      "03:27 PM - 04:59 PM",
		GulikaKala:     "07:46 AM - 09:18 AM",
		AbhijitMuhurta: "12:00 PM - 12:48 PM",
		BrahmaMuhurta:  "04:38 AM - 05:26 AM",
		SpecialEvents:  []string{"Lakshmi Pooja", "Evening Utsava", "Prasada Vitarane"},
	},
	{
		Tithi:          "Shukla Ashtami",
		Paksha:         "Shukla",
		Vaara:          "Saturday",
		Nakshatra:      "Magha",
		Yoga:           "Shobhana",
		Karana:         "Bava",
		Sunrise:        "06:14 AM",
		Sunset:         "06:21 PM",
		Moonrise:       "01:22 PM",
		Moonset:        "01:26 AM",
		RahuKala:       "09:18 AM - 10:50 AM",
		YamaGanda:      "01:55 PM - 03:27 PM",
		GulikaKala:     "06:14 AM - 07:46 AM",
		AbhijitMuhurta: "12:00 PM - 12:48 PM",
		BrahmaMuhurta:  "04:38 AM - 05:26 AM",
		SpecialEvents:  []string{"Hanuman Chalisa Parayana", "Sankirtane", "Ratri Seva"},
	},
}

// PanchangaFor returns the almanac detail for the given date.
func PanchangaFor(date time.Time) model.PanchangaDay {
	return panchangaTemplates[int(date.Weekday())]
}
