// Package push delivers device notifications through FCM. Delivery is
// best-effort; callers decide whether a failure matters.
package push

import (
	"context"

	"firebase.google.com/go/v4/messaging"
)

// Payload is what lands on the device: a visible notification and an
// optional route the app should open when tapped.
type Payload struct {
	Title     string
	Body      string
	RouteName string
}

type Sender interface {
	SendToDevice(ctx context.Context, token string, p Payload) error
}

type fcmSender struct {
	client *messaging.Client
}

func NewFCMSender(client *messaging.Client) Sender {
	return &fcmSender{client: client}
}

func (s *fcmSender) SendToDevice(ctx context.Context, token string, p Payload) error {
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: p.Title,
			Body:  p.Body,
		},
	}
	if p.RouteName != "" {
		msg.Data = map[string]string{"routeName": p.RouteName}
	}

	_, err := s.client.Send(ctx, msg)
	return err
}
