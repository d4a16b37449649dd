package notification

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"

	housekeepingRepo "github.com/pyetrosoares0910-source/pms-backend-sub000/database/repository/housekeeping"
	"github.com/pyetrosoares0910-source/pms-backend-sub000/utils"
)

// DefaultNotificationService delivers pushes over FCM. When the FCM client
// was never initialized (no credentials configured) sends become no-ops.
type DefaultNotificationService struct {
	Housekeeping housekeepingRepo.HousekeepingRepository
}

func NewDefaultNotificationService(hk housekeepingRepo.HousekeepingRepository) (*DefaultNotificationService, error) {
	if hk == nil {
		return nil, fmt.Errorf("notification service initialization error: housekeeping repository is nil")
	}
	return &DefaultNotificationService{Housekeeping: hk}, nil
}

func (s *DefaultNotificationService) SendMaidPush(ctx context.Context, maidID, title, body string, data map[string]string) error {
	logger := utils.GetLogger()
	if utils.FCMClient == nil {
		logger.Debug("push skipped, FCM not configured", zap.String("maidID", maidID))
		return nil
	}

	maid, err := s.Housekeeping.GetMaid(ctx, maidID)
	if err != nil {
		return fmt.Errorf("failed to load maid %s: %w", maidID, err)
	}
	if maid == nil || maid.FCMToken == "" {
		logger.Debug("push skipped, maid has no device token", zap.String("maidID", maidID))
		return nil
	}

	msg := &messaging.Message{
		Token: maid.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send push to maid %s: %w", maidID, err)
	}
	return nil
}
