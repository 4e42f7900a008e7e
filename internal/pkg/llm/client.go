package llm

import (
	"Fable/internal/api/config"
	"context"
	"fmt"
	log "log/slog"

	"github.com/pkg/errors"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Client 故事生成客户端。未配置上游时 model 为 nil，走本地模板兜底，不触网
type Client struct {
	model     llms.Model
	textModel string
}

func NewClient(cfg config.LLMConfig) *Client {
	if cfg.ApiKey == "" {
		log.Warn("LLM未配置，故事生成将使用本地模板")
		return &Client{}
	}

	llm, err := openai.New(
		openai.WithModel(cfg.TextModel),
		openai.WithToken(cfg.ApiKey),
		openai.WithBaseURL(cfg.URL),
	)
	if err != nil {
		log.Error("AI大模型初始化失败，故事生成将使用本地模板", "err", err)
		return &Client{}
	}

	return &Client{model: llm, textModel: cfg.TextModel}
}

// Complete 请求上游补全；未配置时返回确定性的占位故事
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	if c.model == nil {
		return placeholderStory(userPrompt), nil
	}

	if err := TextSem.Acquire(ctx, 1); err != nil {
		return "", err
	}
	defer TextSem.Release(1)

	messages := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{
				llms.TextPart(systemPrompt),
			},
		},
		{
			Role: llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{
				llms.TextPart(userPrompt),
			},
		},
	}

	log.Info("正在请求AI大模型")
	resp, err := c.model.GenerateContent(ctx, messages,
		llms.WithModel(c.textModel),
		llms.WithTemperature(0.9),
	)
	if err != nil {
		return "", errors.Wrap(err, "story completion request failed")
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("story completion returned no choices")
	}

	return resp.Choices[0].Content, nil
}

func placeholderStory(userPrompt string) string {
	excerpt := []rune(userPrompt)
	if len(excerpt) > 80 {
		excerpt = excerpt[:80]
	}
	return fmt.Sprintf(
		"**An Unwritten Tale**\nThe storyteller looked at the request before them: %q. "+
			"Ink was low and the hour was late, so they wrote the only honest thing they could. "+
			"Every story begins as a promise, and this one is still waiting to be kept. "+
			"Come back when the storyteller has found their pen again.",
		string(excerpt),
	)
}
