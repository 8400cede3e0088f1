package services

import (
	"context"

	"github.com/rs/zerolog"

	"dmbookAdmin/internal/models"
)

// Notifier tells estate owners about review decisions.
type Notifier interface {
	EstateDecided(ctx context.Context, ownerID, estateID string, state models.EstateState) error
}

// NopNotifier drops every notification.
type NopNotifier struct{}

func (NopNotifier) EstateDecided(context.Context, string, string, models.EstateState) error {
	return nil
}

func loggerOrNop(l *zerolog.Logger) *zerolog.Logger {
	if l != nil {
		return l
	}
	nop := zerolog.Nop()
	return &nop
}
