package core

import (
	"context"

	"firebase.google.com/go/v4/messaging"

	"familysync-backend/internal/models"
)

// fcmSender delivers notifications through Firebase Cloud Messaging.
type fcmSender struct {
	client *messaging.Client
}

// NewFCMSender wraps a Firebase messaging client as a PushSender.
func NewFCMSender(client *messaging.Client) PushSender {
	return &fcmSender{client: client}
}

func (f *fcmSender) Send(ctx context.Context, tokens []string, n models.PushNotification) (int, error) {
	if len(tokens) == 0 {
		return 0, nil
	}
	msg := &messaging.MulticastMessage{
		Tokens: tokens,
		Notification: &messaging.Notification{
			Title: n.Title,
			Body:  n.Body,
		},
		Data: n.Data,
	}
	resp, err := f.client.SendEachForMulticast(ctx, msg)
	if err != nil {
		return len(tokens), err
	}
	return resp.FailureCount, nil
}
