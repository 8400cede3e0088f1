package models

import (
	"strings"
	"time"

	"dmbookAdmin/internal/docstore"
)

// Comment is a reply appended to a customer feedback entry.
type Comment struct {
	ID        string
	Text      string
	Author    string
	Timestamp time.Time
}

// Node renders the comment in its stored field order.
func (c Comment) Node() *docstore.Node {
	author := c.Author
	if author == "" {
		author = DefaultAuthor
	}
	n := docstore.NewObject()
	n.Set("id", docstore.NodeOf(c.ID))
	n.Set("text", docstore.NodeOf(c.Text))
	n.Set("author", docstore.NodeOf(author))
	n.Set("timestamp", docstore.NodeOf(c.Timestamp.UTC().Format("2006-01-02T15:04:05.000Z")))
	return n
}

// FeedbackUser is the author block of a customer feedback entry.
type FeedbackUser struct {
	UserID          interface{} `json:"userId,omitempty"`
	Email           string      `json:"email"`
	Phone           string      `json:"phone"`
	ProfileImageURL string      `json:"ProfileImageUrl"`
}

// FeedbackEstate is the reviewed estate block of a customer feedback entry.
type FeedbackEstate struct {
	EstateID interface{} `json:"estateId,omitempty"`
	NameEn   string      `json:"NameEn"`
	City     string      `json:"City"`
	Country  string      `json:"Country"`
}

// CustomerFeedbackView is a customer's feedback joined with its author and
// the estate it is about.
type CustomerFeedbackView struct {
	FeedbackID string           `json:"feedbackId"`
	UserName   string           `json:"userName"`
	User       FeedbackUser     `json:"user"`
	Estate     FeedbackEstate   `json:"estate"`
	Feedback   string           `json:"feedback"`
	Rating     interface{}      `json:"rating"`
	Comments   []*docstore.Node `json:"comments"`
	Timestamp  interface{}      `json:"timestamp"`
}

// NewCustomerFeedbackView builds the view. userFound tells an absent author
// apart from one with empty name fields; both read as "Anonymous".
func NewCustomerFeedbackView(id string, entry docstore.Snapshot, user Record, userFound bool, estate Record) CustomerFeedbackView {
	fb := RecordOf(entry)
	return CustomerFeedbackView{
		FeedbackID: id,
		UserName:   displayName(user, userFound),
		User: FeedbackUser{
			UserID:          fb.Get("UserID"),
			Email:           user.Text(DefaultEmail, "Email"),
			Phone:           user.Text(DefaultPhone, "PhoneNumber"),
			ProfileImageURL: user.Text(DefaultLogo, "ProfileImageUrl"),
		},
		Estate: FeedbackEstate{
			EstateID: fb.Get("EstateID"),
			NameEn:   estate.Text(DefaultEstateName, "NameEn"),
			City:     estate.Text(DefaultCity, "City"),
			Country:  estate.Text(DefaultCountry, "Country"),
		},
		Feedback:  fb.Text(DefaultFeedbackText, "feedback"),
		Rating:    fb.Or("rating", 0),
		Comments:  CommentNodes(entry.Child("comments")),
		Timestamp: fb.Or("timestamp", ""),
	}
}

func displayName(user Record, found bool) string {
	if !found {
		return DefaultAuthor
	}
	name := strings.TrimSpace(user.Text("", "FirstName") + " " + user.Text("", "LastName"))
	if name == "" {
		return DefaultAuthor
	}
	return name
}

// CommentNodes lists stored comments in order, whether they were saved as an
// array or as a keyed object. Anything else reads as no comments.
func CommentNodes(comments docstore.Snapshot) []*docstore.Node {
	out := []*docstore.Node{}
	for _, c := range comments.Children() {
		out = append(out, c.Node())
	}
	return out
}

// RatingDetail is the single rating surfaced from a provider's feedback.
type RatingDetail struct {
	EstateID   string      `json:"EstateID"`
	EstateName string      `json:"EstateName"`
	Comment    string      `json:"comment"`
	Rating     interface{} `json:"rating"`
	Timestamp  string      `json:"timestamp"`
}

// FirstRating returns the first entry of a ratings collection, or nil when
// there is none. Later ratings are intentionally not surfaced.
func FirstRating(ratings docstore.Snapshot) *RatingDetail {
	children := ratings.Children()
	if len(children) == 0 {
		return nil
	}
	r := RecordOf(children[0])
	return &RatingDetail{
		EstateID:   r.Text(DefaultRatingEstateID, "EstateID"),
		EstateName: r.Text(DefaultRatingEstateName, "EstateName"),
		Comment:    r.Text(DefaultRatingComment, "comment"),
		Rating:     r.Or("rating", 0),
		Timestamp:  LocaleTimestamp(r.Get("timestamp")),
	}
}

// ProviderFeedbackView is a provider's feedback about a customer.
type ProviderFeedbackView struct {
	FeedbackID         string      `json:"feedbackId"`
	CustomerName       string      `json:"CustomerName"`
	AverageRating      interface{} `json:"averageRating"`
	RatingCount        interface{} `json:"ratingCount"`
	EstateProfileImage string      `json:"estateProfileImage"`
	*RatingDetail
}

func NewProviderFeedbackView(id string, entry Record, rating *RatingDetail, estate Record) ProviderFeedbackView {
	return ProviderFeedbackView{
		FeedbackID:         id,
		CustomerName:       entry.Text(DefaultCustomerName, "CustomerName"),
		AverageRating:      entry.Or("averageRating", 0),
		RatingCount:        entry.Or("ratingCount", 0),
		EstateProfileImage: estate.Text(DefaultEstateImage, "FacilityImageUrl"),
		RatingDetail:       rating,
	}
}

const localeLayout = "1/2/2006, 3:04:05 PM"

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// LocaleTimestamp renders a stored timestamp (epoch milliseconds or an ISO
// date string) as an en-US date-time string in UTC.
func LocaleTimestamp(v interface{}) string {
	if !Truthy(v) {
		return DefaultRatingTimestamp
	}
	switch t := v.(type) {
	case float64:
		return time.UnixMilli(int64(t)).UTC().Format(localeLayout)
	case string:
		for _, layout := range timestampLayouts {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed.UTC().Format(localeLayout)
			}
		}
	}
	return DefaultRatingTimestamp
}
