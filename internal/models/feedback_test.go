package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dmbookAdmin/internal/docstore"
)

func snap(t *testing.T, key, doc string) docstore.Snapshot {
	t.Helper()
	n, err := docstore.DecodeJSON([]byte(doc))
	require.NoError(t, err)
	return docstore.NewSnapshot(key, n)
}

func TestCustomerFeedbackViewDefaults(t *testing.T) {
	entry := snap(t, "F1", `{"UserID":"U1","EstateID":"E1","comments":{"k2":{"text":"b"},"k1":{"text":"a"}}}`)

	v := NewCustomerFeedbackView("F1", entry, Record{}, false, Record{})
	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"feedbackId":"F1",
		"userName":"Anonymous",
		"user":{"userId":"U1","email":"No Email","phone":"No Phone","ProfileImageUrl":"https://via.placeholder.com/100"},
		"estate":{"estateId":"E1","NameEn":"Unknown Estate","City":"Unknown City","Country":"Unknown Country"},
		"feedback":"No feedback provided",
		"rating":0,
		"comments":[{"text":"b"},{"text":"a"}],
		"timestamp":""
	}`, string(out))
}

func TestCustomerFeedbackUserName(t *testing.T) {
	entry := snap(t, "F1", `{"feedback":"great"}`)

	v := NewCustomerFeedbackView("F1", entry, Record{"FirstName": "Lina"}, true, Record{})
	assert.Equal(t, "Lina", v.UserName)

	v = NewCustomerFeedbackView("F1", entry, Record{"FirstName": "Lina", "LastName": "Haddad"}, true, Record{})
	assert.Equal(t, "Lina Haddad", v.UserName)

	v = NewCustomerFeedbackView("F1", entry, Record{"Email": "x@y.z"}, true, Record{})
	assert.Equal(t, DefaultAuthor, v.UserName)
	assert.Equal(t, "x@y.z", v.User.Email)
	assert.Equal(t, []*docstore.Node{}, v.Comments)
}

func TestCommentNodeFieldOrder(t *testing.T) {
	c := Comment{ID: "c1", Text: "thanks", Timestamp: time.Date(2024, 1, 15, 10, 30, 0, 5e6, time.UTC)}

	out, err := json.Marshal(c.Node())
	require.NoError(t, err)
	assert.Equal(t, `{"id":"c1","text":"thanks","author":"Anonymous","timestamp":"2024-01-15T10:30:00.005Z"}`, string(out))
}

func TestProviderFeedbackFirstRatingOnly(t *testing.T) {
	ratings := snap(t, "ratings", `{
		"r1":{"EstateID":"E1","rating":4,"timestamp":1705314600000},
		"r2":{"EstateID":"E2","rating":1}
	}`)

	v := NewProviderFeedbackView("PF1", Record{"CustomerName": "Omar"}, FirstRating(ratings), Record{})
	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"feedbackId":"PF1",
		"CustomerName":"Omar",
		"averageRating":0,
		"ratingCount":0,
		"estateProfileImage":"https://via.placeholder.com/150",
		"EstateID":"E1",
		"EstateName":"Unknown Estate Name",
		"comment":"No comment provided",
		"rating":4,
		"timestamp":"1/15/2024, 10:30:00 AM"
	}`, string(out))
}

func TestProviderFeedbackWithoutRatings(t *testing.T) {
	v := NewProviderFeedbackView("PF2", Record{}, FirstRating(docstore.Snapshot{}), Record{"FacilityImageUrl": "img"})
	out, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"feedbackId":"PF2",
		"CustomerName":"Unknown Customer",
		"averageRating":0,
		"ratingCount":0,
		"estateProfileImage":"img"
	}`, string(out))
}

func TestLocaleTimestamp(t *testing.T) {
	assert.Equal(t, "1/15/2024, 10:30:00 AM", LocaleTimestamp(float64(1705314600000)))
	assert.Equal(t, "3/5/2023, 9:07:01 PM", LocaleTimestamp("2023-03-05T21:07:01Z"))
	assert.Equal(t, "3/5/2023, 12:00:00 AM", LocaleTimestamp("2023-03-05"))
	assert.Equal(t, DefaultRatingTimestamp, LocaleTimestamp(nil))
	assert.Equal(t, DefaultRatingTimestamp, LocaleTimestamp("yesterday"))
	assert.Equal(t, DefaultRatingTimestamp, LocaleTimestamp(true))
}
