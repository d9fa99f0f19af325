package scheduler

import (
	"github.com/ratemystore/ratemystore-backend/internal/app/repository"
	"github.com/ratemystore/ratemystore-backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

// RatingScheduler 매장 평균 평점 야간 재계산 스케줄러
// 평균은 평점 쓰기 트랜잭션 안에서 갱신되지만, 운영자가 데이터를 직접
// 수정한 경우를 대비해 밤마다 전체를 다시 계산한다.
type RatingScheduler struct {
	cron       *cron.Cron
	ratingRepo repository.RatingRepository
}

// NewRatingScheduler 평점 재계산 스케줄러 생성
func NewRatingScheduler(ratingRepo repository.RatingRepository) *RatingScheduler {
	return &RatingScheduler{
		cron:       cron.New(),
		ratingRepo: ratingRepo,
	}
}

// Start 스케줄러 시작
func (s *RatingScheduler) Start() error {
	// 매일 새벽 3시에 전체 매장 평균 재계산
	// cron 표현식: "0 3 * * *" = 매일 3시 0분
	_, err := s.cron.AddFunc("0 3 * * *", func() {
		logger.Info("Starting scheduled rating average reconcile", nil)

		if err := s.ratingRepo.RecomputeAllAverages(); err != nil {
			logger.Error("Failed to reconcile rating averages", err)
			return
		}

		logger.Info("Successfully reconciled rating averages", nil)
	})

	if err != nil {
		logger.Error("Failed to add cron job for rating reconcile", err)
		return err
	}

	s.cron.Start()
	logger.Info("Rating scheduler started successfully (daily at 3:00 AM)", nil)

	return nil
}

// Stop 스케줄러 중지
func (s *RatingScheduler) Stop() {
	logger.Info("Stopping rating scheduler...", nil)
	s.cron.Stop()
	logger.Info("Rating scheduler stopped", nil)
}
