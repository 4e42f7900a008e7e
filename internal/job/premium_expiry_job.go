package job

import (
	"Fable/internal/repository"
	"context"
	log "log/slog"
	"time"
)

// PremiumExpiryJob 每日将会员已过期的用户降回 FREE
type PremiumExpiryJob struct {
	userRepo repository.UserRepo
}

func NewPremiumExpiryJob(userRepo repository.UserRepo) *PremiumExpiryJob {
	return &PremiumExpiryJob{userRepo: userRepo}
}

func (s *PremiumExpiryJob) Run() {
	ctx := context.Background()
	log.Info("start premium expiry job")

	demoted, err := s.userRepo.DemoteExpiredPremium(ctx, time.Now().UTC())
	if err != nil {
		log.Error("failed to demote expired premium users", "err", err)
		return
	}

	if demoted > 0 {
		log.Info("premium expiry job finished", "demoted_count", demoted)
	}
}
