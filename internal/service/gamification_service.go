package service

import (
	"Fable/internal/api/dto"
	"Fable/internal/model"
	"Fable/internal/pkg/consts"
	"Fable/internal/pkg/util"
	"Fable/internal/repository"
	"context"
	log "log/slog"
	"time"

	"github.com/jinzhu/copier"
)

// achievementSpec 成就阈值定义。按 total_stories / current_streak 的精确相等触发，
// 计数跳过阈值（如批量导入）则永久错过，这是既定策略而非缺陷
type achievementSpec struct {
	Threshold   int
	Type        string
	Title       string
	Description string
	XPReward    int
}

var storyAchievements = []achievementSpec{
	{1, "first_story", "First Words", "Write your first story", 25},
	{5, "five_stories", "Storyteller", "Write 5 stories", 50},
	{10, "ten_stories", "Wordsmith", "Write 10 stories", 75},
	{20, "twenty_stories", "Novelist in Training", "Write 20 stories", 100},
	{50, "fifty_stories", "Prolific Author", "Write 50 stories", 200},
	{100, "hundred_stories", "Master Storyteller", "Write 100 stories", 500},
	{500, "five_hundred_stories", "Living Library", "Write 500 stories", 1000},
}

var streakAchievements = []achievementSpec{
	{3, "three_day_streak", "Getting Warm", "Write stories 3 days in a row", 30},
	{7, "week_streak", "Week of Wonder", "Write stories 7 days in a row", 100},
	{30, "month_streak", "Unstoppable", "Write stories 30 days in a row", 500},
}

type GamificationService interface {
	RecordStoryCreated(ctx context.Context, userID uint64) (*model.UserStats, error)
	CheckAndAwardAchievements(ctx context.Context, stats *model.UserStats) ([]*model.UserAchievement, error)
	AwardXP(ctx context.Context, userID uint64, amount int) error
	RecordLogin(ctx context.Context, userID uint64) (int, bool, error)
	GetStats(ctx context.Context, userID uint64) (*dto.StatsDTO, error)
	GetAchievements(ctx context.Context, userID uint64) ([]*dto.AchievementDTO, error)
}

type GamificationServiceImpl struct {
	statsRepo       repository.UserStatsRepo
	achievementRepo repository.AchievementRepo
	loginStreakRepo repository.LoginStreakRepo
	now             func() time.Time
}

func NewGamificationService(
	statsRepo repository.UserStatsRepo,
	achievementRepo repository.AchievementRepo,
	loginStreakRepo repository.LoginStreakRepo,
) GamificationService {
	return &GamificationServiceImpl{
		statsRepo:       statsRepo,
		achievementRepo: achievementRepo,
		loginStreakRepo: loginStreakRepo,
		now:             time.Now,
	}
}

// RecordStoryCreated 创作账本推进：同日不重复计 streak，隔日 +1，断档重置为 1，
// 全部变更以 user_id 为键单次落盘
func (s *GamificationServiceImpl) RecordStoryCreated(ctx context.Context, userID uint64) (*model.UserStats, error) {
	stats, err := s.statsRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	newStreak := 1
	if stats.LastStoryDate != nil {
		switch {
		case util.SameCalendarDay(*stats.LastStoryDate, now):
			newStreak = stats.CurrentStreak
		case util.IsYesterdayOf(*stats.LastStoryDate, now):
			newStreak = stats.CurrentStreak + 1
		}
	}

	stats.CurrentStreak = newStreak
	if newStreak > stats.LongestStreak {
		stats.LongestStreak = newStreak
	}
	stats.TotalXP += consts.StoryXPAward
	stats.TotalStories++
	stats.LastStoryDate = &now

	if err = s.statsRepo.Update(ctx, stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// CheckAndAwardAchievements 基于刚更新过的账本检查成就。
// 两条链各自取首个精确命中，单次调用每类至多授予一枚
func (s *GamificationServiceImpl) CheckAndAwardAchievements(ctx context.Context, stats *model.UserStats) ([]*model.UserAchievement, error) {
	var awarded []*model.UserAchievement

	if a, err := s.awardFirstMatch(ctx, stats.UserID, stats.TotalStories, storyAchievements); err != nil {
		return nil, err
	} else if a != nil {
		awarded = append(awarded, a)
	}

	if a, err := s.awardFirstMatch(ctx, stats.UserID, stats.CurrentStreak, streakAchievements); err != nil {
		return nil, err
	} else if a != nil {
		awarded = append(awarded, a)
	}

	return awarded, nil
}

func (s *GamificationServiceImpl) awardFirstMatch(ctx context.Context, userID uint64, value int, specs []achievementSpec) (*model.UserAchievement, error) {
	for _, spec := range specs {
		if value != spec.Threshold {
			continue
		}

		achievement := &model.UserAchievement{
			UserID:          userID,
			AchievementType: spec.Type,
			Title:           spec.Title,
			Description:     spec.Description,
			XPReward:        spec.XPReward,
			EarnedAt:        s.now(),
		}

		created, err := s.achievementRepo.CreateAchievement(ctx, achievement)
		if err != nil {
			return nil, err
		}
		if !created {
			// 已授予过，幂等 no-op
			return nil, nil
		}

		if err = s.statsRepo.AddXP(ctx, userID, spec.XPReward); err != nil {
			return nil, err
		}

		log.InfoContext(ctx, "achievement awarded",
			"user_id", userID, "type", spec.Type, "xp_reward", spec.XPReward)
		return achievement, nil
	}
	return nil, nil
}

// AwardXP 无条件加 XP，无上限；用于登录连击与分享奖励
func (s *GamificationServiceImpl) AwardXP(ctx context.Context, userID uint64, amount int) error {
	if _, err := s.statsRepo.GetOrCreate(ctx, userID); err != nil {
		return err
	}
	return s.statsRepo.AddXP(ctx, userID, amount)
}

// RecordLogin 登录连击账本，与创作 streak 互不影响；返回更新后的连击天数，
// advanced 标记当天是否真正推进过（同日重复登录为 false，避免重复发奖）
func (s *GamificationServiceImpl) RecordLogin(ctx context.Context, userID uint64) (int, bool, error) {
	now := s.now()

	streak, err := s.loginStreakRepo.Get(ctx, userID)
	if err != nil {
		return 0, false, err
	}

	if streak == nil {
		streak = &model.LoginStreak{UserID: userID, CurrentStreak: 1, LongestStreak: 1, LastLogin: now}
		if err = s.loginStreakRepo.Upsert(ctx, streak); err != nil {
			return 0, false, err
		}
		return 1, true, nil
	}

	switch {
	case util.SameCalendarDay(streak.LastLogin, now):
		return streak.CurrentStreak, false, nil
	case util.IsYesterdayOf(streak.LastLogin, now):
		streak.CurrentStreak++
		if streak.CurrentStreak > streak.LongestStreak {
			streak.LongestStreak = streak.CurrentStreak
		}
	default:
		streak.CurrentStreak = 1
	}

	streak.LastLogin = now
	if err = s.loginStreakRepo.Upsert(ctx, streak); err != nil {
		return 0, false, err
	}
	return streak.CurrentStreak, true, nil
}

func (s *GamificationServiceImpl) GetStats(ctx context.Context, userID uint64) (*dto.StatsDTO, error) {
	stats, err := s.statsRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	statsDTO := &dto.StatsDTO{}
	if err = copier.Copy(statsDTO, stats); err != nil {
		return nil, err
	}

	login, err := s.loginStreakRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if login != nil {
		statsDTO.LoginStreak = login.CurrentStreak
		statsDTO.LongestLoginStreak = login.LongestStreak
	}

	return statsDTO, nil
}

func (s *GamificationServiceImpl) GetAchievements(ctx context.Context, userID uint64) ([]*dto.AchievementDTO, error) {
	achievements, err := s.achievementRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AchievementDTO, 0, len(achievements))
	for _, a := range achievements {
		item := &dto.AchievementDTO{}
		if err = copier.Copy(item, a); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, nil
}
