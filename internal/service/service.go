// Package service exposes the gRPC surface other platform services use to
// push asynchronous notifications to a user.
package service

import (
	"context"
	"encoding/json"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/s21platform/exchange-chat-service/pkg/notification"
)

type Service struct {
	notification.UnimplementedNotificationServiceServer

	relay NotificationRelay
}

func New(relay NotificationRelay) *Service {
	return &Service{relay: relay}
}

func (s *Service) PushNotification(_ context.Context, in *notification.PushNotificationIn) (*notification.PushNotificationOut, error) {
	if strings.TrimSpace(in.UserUuid) == "" {
		return nil, status.Error(codes.InvalidArgument, "user_uuid is required")
	}
	if strings.TrimSpace(in.Type) == "" {
		return nil, status.Error(codes.InvalidArgument, "type is required")
	}

	if err := s.relay.Push(in.UserUuid, in.Type, json.RawMessage(in.Payload)); err != nil {
		return nil, status.Error(codes.Internal, "failed to push notification")
	}

	return &notification.PushNotificationOut{}, nil
}
