package mockapi

import "github.com/kmoser/stationcal/internal/rental"

// Stations is the fixture data set served by the mock API. It mirrors the
// hosted mock backend: two stations with an April 2025 booking block.
var Stations = []rental.Station{
	{
		ID:   "2",
		Name: "Berlin",
		Bookings: []rental.Booking{
			{
				ID:                    "1",
				CustomerName:          "John Doe",
				StartDate:             "2025-04-10T10:00:00",
				EndDate:               "2025-04-12T18:00:00",
				PickupReturnStationID: "1",
			},
			{
				ID:                    "2",
				CustomerName:          "Jane Smith",
				StartDate:             "2025-04-11T09:00:00",
				EndDate:               "2025-04-13T17:00:00",
				PickupReturnStationID: "1",
			},
			{
				ID:                    "3",
				CustomerName:          "Alice Johnson",
				StartDate:             "2025-04-14T08:00:00",
				EndDate:               "2025-04-15T19:00:00",
				PickupReturnStationID: "1",
			},
			{
				ID:                    "4",
				CustomerName:          "Bob Williams",
				StartDate:             "2025-04-15T11:00:00",
				EndDate:               "2025-04-18T16:00:00",
				PickupReturnStationID: "1",
			},
			{
				ID:                    "5",
				CustomerName:          "Carol Brown",
				StartDate:             "2025-04-17T10:30:00",
				EndDate:               "2025-04-19T15:30:00",
				PickupReturnStationID: "1",
			},
		},
	},
	{
		ID:   "34",
		Name: "Frankfurt",
		Bookings: []rental.Booking{
			{
				ID:                    "12",
				CustomerName:          "John Doe",
				StartDate:             "2025-04-10T10:00:00",
				EndDate:               "2025-04-12T18:00:00",
				PickupReturnStationID: "2",
			},
			{
				ID:                    "13",
				CustomerName:          "Jane Smith",
				StartDate:             "2025-04-11T09:00:00",
				EndDate:               "2025-04-13T17:00:00",
				PickupReturnStationID: "2",
			},
			{
				ID:                    "14",
				CustomerName:          "Alice Johnson",
				StartDate:             "2025-04-14T08:00:00",
				EndDate:               "2025-04-15T19:00:00",
				PickupReturnStationID: "2",
			},
			{
				ID:                    "15",
				CustomerName:          "Bob Williams",
				StartDate:             "2025-04-15T11:00:00",
				EndDate:               "2025-04-18T16:00:00",
				PickupReturnStationID: "2",
			},
			{
				ID:                    "16",
				CustomerName:          "Carol Brown",
				StartDate:             "2025-04-17T10:30:00",
				EndDate:               "2025-04-19T15:30:00",
				PickupReturnStationID: "2",
			},
		},
	},
}
