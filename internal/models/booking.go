package models

import "dmbookAdmin/internal/docstore"

// BookingSummary is how a booking is listed on user and estate screens.
type BookingSummary struct {
	ID            string      `json:"id"`
	PlaceName     interface{} `json:"placeName,omitempty"`
	City          string      `json:"city"`
	Country       string      `json:"country"`
	StartDate     string      `json:"startDate"`
	EndDate       string      `json:"endDate"`
	DateOfBooking string      `json:"dateOfBooking"`
	NetTotal      interface{} `json:"netTotal"`
	Status        interface{} `json:"status,omitempty"`
}

func NewBookingSummary(id string, booking Record) BookingSummary {
	return BookingSummary{
		ID:            id,
		PlaceName:     booking.Get("NameEn"),
		City:          booking.Text(DefaultUnknown, "City"),
		Country:       booking.Text(DefaultUnknown, "Country"),
		StartDate:     booking.Text(DefaultNA, "StartDate"),
		EndDate:       booking.Text(DefaultNA, "EndDate"),
		DateOfBooking: booking.Text(DefaultNA, "DateOfBooking"),
		NetTotal:      booking.Or("NetTotal", DefaultNetTotal),
		Status:        booking.Get("Status"),
	}
}

// EstateBooking is a booking of an estate together with the booking user's
// document, when that user still exists.
type EstateBooking struct {
	BookingSummary
	User *docstore.Snapshot `json:"user,omitempty"`
}
