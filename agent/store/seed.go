package store

// New builds the store with the fixed seed. Construction is the only place
// records other than appointments are created; tests rely on these exact
// values.
func New() *Store {
	return &Store{
		customers: map[string]Customer{
			"john_smith": {
				Name:            "John Smith",
				Phone:           "555-0101",
				Email:           "john.smith@email.com",
				HairType:        "straight",
				PreferredBarber: "Mike",
				LastVisit:       "2024-01-15",
				Preferences:     []string{"short sides", "scissor cut"},
			},
			"sarah_johnson": {
				Name:            "Sarah Johnson",
				Phone:           "555-0102",
				Email:           "sarah.j@email.com",
				HairType:        "curly",
				PreferredBarber: "Tony",
				LastVisit:       "2024-02-03",
				Preferences:     []string{"layered cut", "no product"},
			},
			"david_wilson": {
				Name:            "David Wilson",
				Phone:           "555-0103",
				Email:           "david.wilson@email.com",
				HairType:        "wavy",
				PreferredBarber: "Mike",
				LastVisit:       "2023-12-20",
				Preferences:     []string{"fade", "beard lineup"},
			},
		},
		customerKeys: []string{"john_smith", "sarah_johnson", "david_wilson"},

		appointments: []Appointment{
			{
				ID:       "apt001",
				Customer: "Sarah Johnson",
				Barber:   "Tony",
				Date:     "2024-03-04",
				Time:     "11:00 AM",
				Service:  "Haircut",
				Status:   "confirmed",
			},
		},

		services: []Service{
			{Slug: "haircut", Name: "Haircut", Price: 25, Duration: 30},
			{Slug: "beard_trim", Name: "Beard Trim", Price: 15, Duration: 15},
			{Slug: "haircut_beard", Name: "Haircut + Beard", Price: 35, Duration: 45},
			{Slug: "premium_package", Name: "Premium Grooming Package", Price: 60, Duration: 75},
		},

		barbers: []string{"Mike", "Tony", "Alex"},
		schedules: map[string]map[string][]string{
			"Mike": {
				"monday":    {"9:00 AM", "10:00 AM", "11:00 AM", "2:00 PM", "3:00 PM"},
				"tuesday":   {"9:00 AM", "10:00 AM", "1:00 PM", "2:00 PM"},
				"wednesday": {"10:00 AM", "11:00 AM", "3:00 PM", "4:00 PM"},
				"friday":    {"9:00 AM", "11:00 AM", "2:00 PM", "4:00 PM"},
				"saturday":  {"10:00 AM", "11:00 AM", "12:00 PM", "1:00 PM"},
			},
			"Tony": {
				"monday":    {"10:00 AM", "11:00 AM", "1:00 PM", "4:00 PM"},
				"wednesday": {"9:00 AM", "10:00 AM", "2:00 PM", "3:00 PM"},
				"friday":    {"10:00 AM", "12:00 PM", "3:00 PM"},
				"saturday":  {"9:00 AM", "10:00 AM", "2:00 PM", "3:00 PM"},
			},
			"Alex": {
				"tuesday":  {"11:00 AM", "1:00 PM", "2:00 PM", "3:00 PM"},
				"friday":   {"9:00 AM", "10:00 AM", "1:00 PM"},
				"saturday": {"11:00 AM", "1:00 PM", "2:00 PM", "4:00 PM"},
			},
		},

		hairCareTips: []string{
			"Wash your hair no more than three times a week to preserve natural oils.",
			"Use a conditioner suited to your hair type after every wash.",
			"Pat hair dry with a towel instead of rubbing to reduce breakage.",
			"Trim every 4-6 weeks to keep ends healthy.",
		},
		stylingAdvice: []string{
			"Round faces suit styles with height on top and shorter sides.",
			"A matte clay gives hold without shine for textured cuts.",
			"Ask your barber for a scissor cut if you want a softer look.",
			"Bring a reference photo so we can match the style to your face shape.",
		},
		shopPolicies: []string{
			"Appointments can be cancelled or rescheduled up to 24 hours in advance.",
			"We accept cash, all major cards, and contactless payment.",
			"Walk-ins are welcome but booked customers take priority.",
			"Arriving more than 15 minutes late may require rebooking.",
		},
	}
}
