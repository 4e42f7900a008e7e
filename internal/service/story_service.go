package service

import (
	"Fable/internal/api/dto"
	"Fable/internal/model"
	"Fable/internal/pkg/consts"
	"Fable/internal/pkg/llm"
	"Fable/internal/pkg/redis"
	"Fable/internal/pkg/util"
	"Fable/internal/repository"
	"context"
	log "log/slog"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

// StoryLLM 文本补全协作方
type StoryLLM interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

type StoryService interface {
	Generate(ctx context.Context, userID uint64, req *dto.GenerateStoryDTO) (*dto.StoryResultDTO, error)
	ListStories(ctx context.Context, userID uint64, limit, offset int) (*dto.StoryListDTO, error)
	ShareStory(ctx context.Context, userID, storyID uint64) (*dto.ShareResultDTO, error)
	GetSharedStory(ctx context.Context, shareID string) (*dto.StoryDTO, error)
}

type StoryServiceImpl struct {
	storyRepo       repository.StoryRepo
	userRepo        repository.UserRepo
	usageSvc        UsageService
	gamificationSvc GamificationService
	generator       StoryLLM
	shareURL        string
}

func NewStoryService(
	storyRepo repository.StoryRepo,
	userRepo repository.UserRepo,
	usageSvc UsageService,
	gamificationSvc GamificationService,
	generator StoryLLM,
	shareURL string,
) StoryService {
	return &StoryServiceImpl{
		storyRepo:       storyRepo,
		userRepo:        userRepo,
		usageSvc:        usageSvc,
		gamificationSvc: gamificationSvc,
		generator:       generator,
		shareURL:        shareURL,
	}
}

// Generate 生成编排：限额检查 → 续写前文加载 → 提示词组装 → 上游补全 →
// 标题剥离 → 落库 → 游戏化账本推进 → 扣减额度后重新评估剩余值
func (s *StoryServiceImpl) Generate(ctx context.Context, userID uint64, req *dto.GenerateStoryDTO) (*dto.StoryResultDTO, error) {
	if strings.TrimSpace(req.Prompt) == "" {
		return nil, ErrMissingPrompt
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	preRemaining, err := s.usageSvc.EnsureUnderLimit(ctx, user)
	if err != nil {
		return nil, err
	}

	var priorContent string
	if req.ContinuedFromID != nil {
		// 任意故事都可作为续写上下文，不校验归属
		prior, err := s.storyRepo.GetStoryByID(ctx, *req.ContinuedFromID)
		if err != nil {
			return nil, err
		}
		if prior == nil {
			return nil, ErrStoryNotFound
		}
		priorContent = prior.Content
	}

	systemPrompt, userPrompt := llm.BuildPrompts(llm.PromptRequest{
		Prompt:       req.Prompt,
		Genre:        req.Genre,
		Tone:         req.Tone,
		Archetype:    req.Archetype,
		PriorContent: priorContent,
	})

	raw, err := s.generator.Complete(ctx, systemPrompt, userPrompt)
	if err != nil {
		log.ErrorContext(ctx, "story generation failed", "err", err)
		return nil, UnExpectedError
	}

	title, content := llm.ExtractTitle(raw)

	story := &model.Story{
		UserID:          userID,
		Prompt:          req.Prompt,
		Content:         content,
		Title:           title,
		Genre:           req.Genre,
		Tone:            req.Tone,
		ContinuedFromID: req.ContinuedFromID,
		WordCount:       util.CountWords(content),
	}
	if err = s.storyRepo.CreateStory(ctx, story); err != nil {
		return nil, err
	}

	// 故事已落库，账本推进失败只记日志不回滚
	stats, err := s.gamificationSvc.RecordStoryCreated(ctx, userID)
	if err != nil {
		log.ErrorContext(ctx, "record story created failed", "err", err, "user_id", userID)
	} else if _, err = s.gamificationSvc.CheckAndAwardAchievements(ctx, stats); err != nil {
		log.ErrorContext(ctx, "achievement check failed", "err", err, "user_id", userID)
	}

	var remaining *int
	if preRemaining != nil {
		remaining, err = s.usageSvc.ConsumeAndRemaining(ctx, user)
		if err != nil {
			return nil, err
		}
	}

	storyDTO := &dto.StoryDTO{}
	if err = copier.Copy(storyDTO, story); err != nil {
		return nil, err
	}

	return &dto.StoryResultDTO{Story: storyDTO, Remaining: remaining}, nil
}

func (s *StoryServiceImpl) ListStories(ctx context.Context, userID uint64, limit, offset int) (*dto.StoryListDTO, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	stories, err := s.storyRepo.GetStoriesByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, err
	}

	remaining, err := s.usageSvc.Remaining(ctx, user)
	if err != nil {
		return nil, err
	}

	list := make([]*dto.StoryDTO, 0, len(stories))
	for _, story := range stories {
		storyDTO := &dto.StoryDTO{}
		if err = copier.Copy(storyDTO, story); err != nil {
			return nil, err
		}
		list = append(list, storyDTO)
	}

	return &dto.StoryListDTO{Stories: list, Remaining: remaining}, nil
}

// ShareStory 为自己的故事签发稳定分享链接，已有 share_id 时直接复用
func (s *StoryServiceImpl) ShareStory(ctx context.Context, userID, storyID uint64) (*dto.ShareResultDTO, error) {
	story, err := s.storyRepo.GetStoryByID(ctx, storyID)
	if err != nil {
		return nil, err
	}
	if story == nil || story.UserID != userID {
		return nil, ErrStoryNotFound
	}

	if story.ShareID == nil {
		shareID := uuid.NewString()
		if err = s.storyRepo.SetShareID(ctx, storyID, shareID); err != nil {
			return nil, err
		}
		story.ShareID = &shareID
	}

	storyDTO := &dto.StoryDTO{}
	if err = copier.Copy(storyDTO, story); err != nil {
		return nil, err
	}

	return &dto.ShareResultDTO{
		Story:    storyDTO,
		ShareURL: s.shareURL + *story.ShareID,
	}, nil
}

func (s *StoryServiceImpl) GetSharedStory(ctx context.Context, shareID string) (*dto.StoryDTO, error) {
	key := consts.SharedStoryKey + shareID
	value, err := redis.GetValue(ctx, key)
	if err == nil && value != "" {
		var storyDTO dto.StoryDTO
		if err = json.Unmarshal([]byte(value), &storyDTO); err == nil {
			return &storyDTO, nil
		}
	}

	story, err := s.storyRepo.GetStoryByShareID(ctx, shareID)
	if err != nil {
		return nil, err
	}
	if story == nil {
		return nil, ErrStoryNotFound
	}

	storyDTO := &dto.StoryDTO{}
	if err = copier.Copy(storyDTO, story); err != nil {
		return nil, err
	}

	if jsonStr, err := json.Marshal(storyDTO); err == nil {
		_ = redis.SetWithExpiration(ctx, key, string(jsonStr), time.Hour*1)
	}

	return storyDTO, nil
}
