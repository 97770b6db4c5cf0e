package notification

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"musicschool/internal/domain/lead"
)

// Service handles notification business logic and the daily reminder run
type Service struct {
	repo  RepositoryInterface
	leads LeadSource
	log   *zap.SugaredLogger
}

// NewService creates notification service
func NewService(repo RepositoryInterface, leads LeadSource, log *zap.SugaredLogger) *Service {
	return &Service{repo: repo, leads: leads, log: log}
}

// ListByUser returns a user's notifications
func (s *Service) ListByUser(ctx context.Context, userID int64, unreadOnly bool, limit, offset int) ([]*Notification, error) {
	return s.repo.ListByUser(ctx, userID, unreadOnly, limit, offset)
}

// MarkRead flags a notification as read
func (s *Service) MarkRead(ctx context.Context, userID, id int64) error {
	return s.repo.MarkRead(ctx, userID, id)
}

// RemindDueFollowUps creates one reminder per open lead whose follow-up
// date is due, for the owning user. Runs are idempotent within a day: a
// dedup key per lead per date suppresses repeats.
func (s *Service) RemindDueFollowUps(ctx context.Context) (int, error) {
	today := time.Now().Format(lead.DateLayout)

	due, err := s.leads.DueFollowUps(ctx, today)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, l := range due {
		if !l.OwnerID.Valid {
			continue // unowned leads have nobody to remind
		}

		key := fmt.Sprintf("%s:%d:%s", TypeFollowUpDue, l.ID, today)
		exists, err := s.repo.ExistsByDedupKey(ctx, key)
		if err != nil {
			return created, err
		}
		if exists {
			continue
		}

		leadID := l.ID
		n := &Notification{
			UserID:    l.OwnerID.Int64,
			LeadID:    &leadID,
			Type:      TypeFollowUpDue,
			Title:     "Follow-up due",
			Body:      fmt.Sprintf("Follow up with %s %s (due %s)", l.FirstName, l.LastName, l.FollowUpDate),
			DedupKey:  key,
			CreatedAt: time.Now(),
		}
		if err := s.repo.Create(ctx, n); err != nil {
			return created, err
		}
		created++
	}

	s.log.Infow("follow-up reminders created", "due", len(due), "created", created)
	return created, nil
}

// Cleanup removes notifications older than the retention window.
func (s *Service) Cleanup(ctx context.Context, retentionDays int) error {
	start := time.Now()

	deleted, err := s.repo.DeleteOlderThan(ctx, time.Duration(retentionDays*24)*time.Hour)
	if err != nil {
		s.log.Errorw("notification cleanup failed", "err", err)
		return err
	}

	s.log.Infow("notification cleanup completed", "deleted", deleted, "took", time.Since(start))
	return nil
}
