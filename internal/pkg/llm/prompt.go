package llm

import (
	"fmt"
	"strings"
)

const systemPrompt = "You are a celebrated flash-fiction author. Write vivid, complete short stories. " +
	"Begin your reply with the story title wrapped in double asterisks on the first line, " +
	"for example **The Lighthouse**, followed by the story body."

// PromptRequest 生成请求的全部创作参数
type PromptRequest struct {
	Prompt       string
	Genre        *string
	Tone         *string
	Archetype    *string
	PriorContent string
}

// BuildPrompts 组装 system/user 指令；续写时嵌入前文全文并压缩篇幅上限
func BuildPrompts(req PromptRequest) (string, string) {
	var sb strings.Builder

	if req.PriorContent != "" {
		sb.WriteString("Continue the following story. Here is what has been written so far:\n\n")
		sb.WriteString(req.PriorContent)
		sb.WriteString("\n\nContinue it based on this direction: ")
		sb.WriteString(req.Prompt)
		sb.WriteString("\nKeep the continuation under 400 words.")
	} else {
		sb.WriteString("Write a short story of 200-400 words based on this idea: ")
		sb.WriteString(req.Prompt)
	}

	if req.Genre != nil && *req.Genre != "" {
		sb.WriteString(fmt.Sprintf("\nGenre: %s.", *req.Genre))
	}
	if req.Tone != nil && *req.Tone != "" {
		sb.WriteString(fmt.Sprintf("\nTone: %s.", *req.Tone))
	}
	if req.Archetype != nil && *req.Archetype != "" {
		sb.WriteString(fmt.Sprintf("\nProtagonist archetype: %s.", *req.Archetype))
	}

	return systemPrompt, sb.String()
}
