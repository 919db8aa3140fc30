package travel

import "time"

// Reference returns the built-in dataset: twelve state and private visits
// between 1949 and 1970, grouped into five journeys.
func Reference() *Catalog {
	c, err := NewCatalog(referenceDestinations(), referenceJourneys())
	if err != nil {
		panic("travel: reference dataset is invalid: " + err.Error())
	}
	return c
}

func referenceDestinations() []Destination {
	return []Destination{
		{
			ID:           "usa-1949",
			Country:      "United States",
			City:         "Washington, D.C.",
			Coordinates:  Coordinates{Lat: 38.9072, Lng: -77.0369},
			StartDate:    NewDate(1949, time.November, 16),
			EndDate:      NewDate(1949, time.December, 10),
			Category:     Diplomatic,
			Summary:      "Official state visit to meet with President Harry Truman. Discussions focused on oil agreements and modernization assistance.",
			Significance: "First major diplomatic visit establishing strong US-Iran relations during the early Cold War period.",
			Images: []string{
				"https://images.unsplash.com/photo-1601133560909-254f0c43b66f?w=800",
				"https://images.unsplash.com/photo-1509114397022-ed747cca3f65?w=800",
			},
			Meetings: []string{"President Harry S. Truman", "Secretary of State Dean Acheson"},
		},
		{
			ID:           "uk-1959",
			Country:      "United Kingdom",
			City:         "London",
			Coordinates:  Coordinates{Lat: 51.5074, Lng: -0.1278},
			StartDate:    NewDate(1959, time.May, 5),
			EndDate:      NewDate(1959, time.May, 15),
			Category:     Diplomatic,
			Summary:      "State visit hosted by Queen Elizabeth II. Discussions on regional security and economic cooperation.",
			Significance: "Strengthened Anglo-Iranian relations and cultural exchange programs.",
			Images: []string{
				"https://images.unsplash.com/photo-1513635269975-59663e0ac1ad?w=800",
				"https://images.unsplash.com/photo-1543832923-44667a44c804?w=800",
			},
			Meetings: []string{"Queen Elizabeth II", "Prime Minister Harold Macmillan"},
		},
		{
			ID:           "france-1961",
			Country:      "France",
			City:         "Paris",
			Coordinates:  Coordinates{Lat: 48.8566, Lng: 2.3522},
			StartDate:    NewDate(1961, time.October, 10),
			EndDate:      NewDate(1961, time.October, 18),
			Category:     Diplomatic,
			Summary:      "Official visit with President Charles de Gaulle focusing on trade agreements and cultural initiatives.",
			Significance: "Advanced French-Iranian economic partnerships and educational exchanges.",
			Images: []string{
				"https://images.unsplash.com/photo-1502602898657-3e91760cbb34?w=800",
				"https://images.unsplash.com/photo-1511739001486-6bfe10ce785f?w=800",
			},
			Meetings: []string{"President Charles de Gaulle", "Foreign Minister Maurice Couve de Murville"},
		},
		{
			ID:           "india-1956",
			Country:      "India",
			City:         "New Delhi",
			Coordinates:  Coordinates{Lat: 28.6139, Lng: 77.2090},
			StartDate:    NewDate(1956, time.February, 20),
			EndDate:      NewDate(1956, time.March, 5),
			Category:     Diplomatic,
			Summary:      "State visit to strengthen ties with the Non-Aligned Movement leader. Cultural and economic discussions.",
			Significance: "Balanced Iran's foreign policy between Eastern and Western blocs.",
			Images: []string{
				"https://images.unsplash.com/photo-1587474260584-136574528ed5?w=800",
				"https://images.unsplash.com/photo-1524492412937-b28074a5d7da?w=800",
			},
			Meetings: []string{"Prime Minister Jawaharlal Nehru"},
		},
		{
			ID:           "ussr-1965",
			Country:      "Soviet Union",
			City:         "Moscow",
			Coordinates:  Coordinates{Lat: 55.7558, Lng: 37.6173},
			StartDate:    NewDate(1965, time.June, 21),
			EndDate:      NewDate(1965, time.July, 1),
			Category:     Diplomatic,
			Summary:      "Groundbreaking visit to improve relations with northern neighbor. Negotiated economic and border agreements.",
			Significance: "Demonstrated Iran's independent foreign policy and regional diplomacy.",
			Images: []string{
				"https://images.unsplash.com/photo-1513326738677-b964603b136d?w=800",
				"https://images.unsplash.com/photo-1547448415-e9f5b28e570d?w=800",
			},
			Meetings: []string{"Premier Alexei Kosygin", "Foreign Minister Andrei Gromyko"},
		},
		{
			ID:           "germany-1967",
			Country:      "West Germany",
			City:         "Bonn",
			Coordinates:  Coordinates{Lat: 50.7374, Lng: 7.0982},
			StartDate:    NewDate(1967, time.May, 27),
			EndDate:      NewDate(1967, time.June, 4),
			Category:     Diplomatic,
			Summary:      "State visit amid student protests. Focus on economic cooperation and industrial development.",
			Significance: "Highlighted challenges of modernization and political reform pressures.",
			Images: []string{
				"https://images.unsplash.com/photo-1564594704827-f7f57ec90229?w=800",
				"https://images.unsplash.com/photo-1599946347371-68eb71b16afc?w=800",
			},
			Meetings: []string{"President Heinrich Lübke", "Chancellor Kurt Georg Kiesinger"},
		},
		{
			ID:           "japan-1958",
			Country:      "Japan",
			City:         "Tokyo",
			Coordinates:  Coordinates{Lat: 35.6762, Lng: 139.6503},
			StartDate:    NewDate(1958, time.May, 5),
			EndDate:      NewDate(1958, time.May, 20),
			Category:     Diplomatic,
			Summary:      "Comprehensive visit to establish economic and cultural ties with Japan.",
			Significance: "Opened new markets for Iranian oil and initiated technology transfer agreements.",
			Images: []string{
				"https://images.unsplash.com/photo-1540959733332-eab4deabeeaf?w=800",
				"https://images.unsplash.com/photo-1503899036084-c55cdd92da26?w=800",
			},
			Meetings: []string{"Emperor Hirohito", "Prime Minister Nobusuke Kishi"},
		},
		{
			ID:           "egypt-1964",
			Country:      "Egypt",
			City:         "Cairo",
			Coordinates:  Coordinates{Lat: 30.0444, Lng: 31.2357},
			StartDate:    NewDate(1964, time.April, 10),
			EndDate:      NewDate(1964, time.April, 18),
			Category:     Diplomatic,
			Summary:      "Visit to engage with Pan-Arab leadership and discuss regional stability.",
			Significance: "Complex diplomatic mission balancing Arab relations with Iranian interests.",
			Images: []string{
				"https://images.unsplash.com/photo-1572252009286-268acec5ca0a?w=800",
				"https://images.unsplash.com/photo-1553913861-c0fddf2619ee?w=800",
			},
			Meetings: []string{"President Gamal Abdel Nasser"},
		},
		{
			ID:           "italy-1969",
			Country:      "Italy",
			City:         "Rome",
			Coordinates:  Coordinates{Lat: 41.9028, Lng: 12.4964},
			StartDate:    NewDate(1969, time.April, 22),
			EndDate:      NewDate(1969, time.May, 2),
			Category:     StateFunction,
			Summary:      "State visit including audience with Pope Paul VI and cultural heritage tours.",
			Significance: "Celebrated ancient Persian-Roman connections and contemporary partnerships.",
			Images: []string{
				"https://images.unsplash.com/photo-1552832230-c0197dd311b5?w=800",
				"https://images.unsplash.com/photo-1515542622106-78bda8ba0e5b?w=800",
			},
			Meetings: []string{"President Giuseppe Saragat", "Pope Paul VI"},
		},
		{
			ID:           "switzerland-1970",
			Country:      "Switzerland",
			City:         "Geneva",
			Coordinates:  Coordinates{Lat: 46.2044, Lng: 6.1432},
			StartDate:    NewDate(1970, time.August, 12),
			EndDate:      NewDate(1970, time.August, 22),
			Category:     Personal,
			Summary:      "Private vacation combined with banking meetings and health consultations.",
			Significance: "Reflected personal diplomacy and financial management practices.",
			Images: []string{
				"https://images.unsplash.com/photo-1530122037265-a5f1f91d3b99?w=800",
				"https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800",
			},
		},
		{
			ID:           "canada-1959",
			Country:      "Canada",
			City:         "Ottawa",
			Coordinates:  Coordinates{Lat: 45.4215, Lng: -75.6972},
			StartDate:    NewDate(1959, time.June, 10),
			EndDate:      NewDate(1959, time.June, 20),
			Category:     Diplomatic,
			Summary:      "State visit promoting trade relations and Iranian uranium exports to Canada.",
			Significance: "Established important economic ties with Commonwealth nations.",
			Images: []string{
				"https://images.unsplash.com/photo-1517935706615-2717063c2225?w=800",
				"https://images.unsplash.com/photo-1503614472-8c93d56e92ce?w=800",
			},
			Meetings: []string{"Prime Minister John Diefenbaker"},
		},
		{
			ID:           "austria-1963",
			Country:      "Austria",
			City:         "Vienna",
			Coordinates:  Coordinates{Lat: 48.2082, Lng: 16.3738},
			StartDate:    NewDate(1963, time.September, 15),
			EndDate:      NewDate(1963, time.September, 25),
			Category:     StateFunction,
			Summary:      "Official visit to neutral Austria, cultural events and opera attendance.",
			Significance: "Emphasized Iran's position as a bridge between East and West.",
			Images: []string{
				"https://images.unsplash.com/photo-1516550893923-42d28e5677af?w=800",
				"https://images.unsplash.com/photo-1609856878074-cf31e21ccb6b?w=800",
			},
			Meetings: []string{"President Adolf Schärf"},
		},
	}
}

func referenceJourneys() []Journey {
	return []Journey{
		{
			ID:             "journey-1949",
			Name:           "First Western Tour",
			Description:    "Inaugural diplomatic mission to establish Iran as a key ally in the post-WWII order.",
			Year:           1949,
			DestinationIDs: []string{"usa-1949"},
		},
		{
			ID:             "journey-1956-58",
			Name:           "Asian Outreach",
			Description:    "Strategic visits to major Asian powers to diversify diplomatic and economic relationships.",
			Year:           1956,
			DestinationIDs: []string{"india-1956", "japan-1958"},
		},
		{
			ID:             "journey-1959",
			Name:           "Commonwealth Connection",
			Description:    "Tour of Commonwealth nations to strengthen trade and diplomatic ties.",
			Year:           1959,
			DestinationIDs: []string{"uk-1959", "canada-1959"},
		},
		{
			ID:             "journey-1961-67",
			Name:           "European Engagements",
			Description:    "Series of state visits to major European powers during the Cold War.",
			Year:           1961,
			DestinationIDs: []string{"france-1961", "austria-1963", "egypt-1964", "ussr-1965", "germany-1967"},
		},
		{
			ID:             "journey-1969-70",
			Name:           "Cultural and Personal Diplomacy",
			Description:    "Combining state functions with personal travel and cultural exchanges.",
			Year:           1969,
			DestinationIDs: []string{"italy-1969", "switzerland-1970"},
		},
	}
}
