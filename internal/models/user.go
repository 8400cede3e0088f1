package models

import (
	"dmbookAdmin/internal/docstore"
)

// ProviderProfile is a provider user with the estates they own.
type ProviderProfile struct {
	UserID    string           `json:"userId"`
	FirstName string           `json:"firstName"`
	LastName  string           `json:"lastName"`
	Email     string           `json:"email"`
	Phone     string           `json:"phone"`
	Gender    string           `json:"gender"`
	IsSmoker  string           `json:"isSmoker"`
	State     string           `json:"state"`
	Estates   []ProviderEstate `json:"estates"`
}

func NewProviderProfile(id string, user Record, estates []ProviderEstate) ProviderProfile {
	if estates == nil {
		estates = []ProviderEstate{}
	}
	return ProviderProfile{
		UserID:    id,
		FirstName: user.Text(DefaultUnknown, "FirstName"),
		LastName:  user.Text(DefaultUnknown, "LastName"),
		Email:     user.Text(DefaultEmail, "Email"),
		Phone:     user.Text(DefaultPhone, "PhoneNumber"),
		Gender:    user.Text(DefaultUnknown, "Gender"),
		IsSmoker:  user.Text(DefaultUnknown, "IsSmoker"),
		State:     user.Text(DefaultUnknown, "State"),
		Estates:   estates,
	}
}

// UserListEntry renders a user as {id, ...stored fields, accountType}, in the
// stored field order. accountType is null when TypeAccount holds no number.
func UserListEntry(user docstore.Snapshot) *docstore.Node {
	out := docstore.NewObject()
	out.Set("id", docstore.NodeOf(user.Key()))
	user.ForEach(func(field docstore.Snapshot) bool {
		out.Set(field.Key(), field.Node().Clone())
		return false
	})
	if n := ParseAccountType(RecordOf(user).Get("TypeAccount")); n != nil {
		out.Set("accountType", docstore.NodeOf(*n))
	} else {
		out.Set("accountType", docstore.Null())
	}
	return out
}

// UserWithBookings is a user document and the bookings they made.
type UserWithBookings struct {
	User     docstore.Snapshot `json:"user"`
	Bookings []BookingSummary  `json:"bookings"`
}
