// Package notify pushes estate review outcomes to providers over Firebase
// Cloud Messaging.
package notify

import (
	"context"
	"fmt"

	"firebase.google.com/go/messaging"
	"github.com/rs/zerolog"

	"dmbookAdmin/internal/models"
)

// Sender is the part of *messaging.Client the notifier uses.
type Sender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// FCM publishes to the per-provider topic the provider app subscribes to.
type FCM struct {
	Client Sender
	Log    *zerolog.Logger
}

func NewFCM(client Sender, logger *zerolog.Logger) *FCM {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &FCM{Client: client, Log: logger}
}

// Topic is the topic a provider's devices subscribe to.
func Topic(ownerID string) string {
	return "provider-" + ownerID
}

func (f *FCM) EstateDecided(ctx context.Context, ownerID, estateID string, state models.EstateState) error {
	message := decisionMessage(ownerID, estateID, state)
	if message == nil {
		return nil
	}
	id, err := f.Client.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("fcm send to %s: %w", message.Topic, err)
	}
	f.Log.Info().
		Str("topic", message.Topic).
		Str("estate", estateID).
		Str("message_id", id).
		Msg("estate decision pushed")
	return nil
}

func decisionMessage(ownerID, estateID string, state models.EstateState) *messaging.Message {
	var title, body string
	switch state {
	case models.EstateAccepted:
		title, body = "Estate accepted", "Your estate has been reviewed and is now listed."
	case models.EstateRejected:
		title, body = "Estate rejected", "Your estate did not pass review and has been removed."
	default:
		return nil
	}
	return &messaging.Message{
		Topic: Topic(ownerID),
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: map[string]string{
			"estateId":   estateID,
			"isAccepted": string(state),
		},
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				ChannelID: "high_priority_channel",
			},
		},
		APNS: &messaging.APNSConfig{
			Headers: map[string]string{
				"apns-priority": "10",
			},
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Alert: &messaging.ApsAlert{
						Title: title,
						Body:  body,
					},
					Sound: "default",
				},
			},
		},
	}
}
