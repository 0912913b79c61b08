package service

import (
	"fmt"
	"strings"
	"text/template"

	"journey_poster/internal/domain"
)

const (
	storySystemPrompt      = "You are an expert AI educator creating engaging LinkedIn content."
	regenerateSystemPrompt = "You are an expert AI educator. Create a DIFFERENT version of this post with fresh perspective."
)

var storyTemplate = template.Must(template.New("story").Parse(`You are an expert AI educator and storyteller. Your task is to create an engaging LinkedIn post about an AI concept that reads like a captivating story.

## Today's Topic Information:
- **Day**: {{.Day}} of {{.TotalDays}}
- **Topic**: {{.Topic}}
- **Category**: {{.Category}}
- **Difficulty Level**: {{.Difficulty}}
- **Key Points to Cover**: {{.KeyPoints}}
- **Story Angle**: {{.StoryAngle}}

## Previous Posts Summary (for continuity):
{{.PreviousPosts}}

## Guidelines:

1. **Story Format**: Start with a hook - a relatable scenario, question, or mini-story that draws readers in
2. **Educational Value**: Weave the technical concepts naturally into the narrative
3. **Progression**: Build on previous days' concepts when applicable
4. **Engagement**: Include a thought-provoking question or call-to-action at the end
5. **Accessibility**: Explain complex concepts using simple analogies
6. **Length**: Keep it between {{.MinLength}}-{{.TargetLength}} characters (LinkedIn optimal)
7. **Structure**: Use short paragraphs, emojis sparingly for visual breaks
8. **Voice**: Professional yet conversational, passionate about AI

## Format:
- Start with an attention-grabbing opening line
- Use 2-3 short paragraphs for the story/explanation
- Include 1-2 real-world examples or applications
- End with a reflection question or teaser for tomorrow
- Add a separator line before hashtags

## DO NOT:
- Use overly technical jargon without explanation
- Make it feel like a textbook
- Include code snippets
- Use more than {{.HashtagCount}} hashtags
- Exceed {{.MaxLength}} characters

Write the complete LinkedIn post now:
`))

var hashtagTemplate = template.Must(template.New("hashtags").Parse(`Based on the following LinkedIn post about AI, generate exactly {{.Count}} relevant and popular hashtags.
The hashtags should be a mix of:
- Broad AI/Tech hashtags (for reach)
- Specific topic hashtags (for relevance)
- Community hashtags (for engagement)

Post content:
{{.Content}}

Return only the hashtags, space-separated, starting with #. Example: #AI #MachineLearning #TechEducation #DataScience #FutureOfWork
`))

type storyPromptData struct {
	Day           int
	TotalDays     int
	Topic         string
	Category      string
	Difficulty    domain.Difficulty
	KeyPoints     string
	StoryAngle    string
	PreviousPosts string
	MinLength     int
	TargetLength  int
	MaxLength     int
	HashtagCount  int
}

func (g *Generator) storyPrompt(entry *domain.CurriculumEntry, previous, feedback string) (string, error) {
	data := storyPromptData{
		Day:           entry.Day,
		TotalDays:     g.config.TotalDays,
		Topic:         entry.Topic,
		Category:      entry.Category,
		Difficulty:    entry.Difficulty,
		KeyPoints:     strings.Join(entry.KeyPoints, ", "),
		StoryAngle:    entry.StoryAngle,
		PreviousPosts: previous,
		MinLength:     g.config.MinPostLength,
		TargetLength:  g.config.MaxPostLength - 500,
		MaxLength:     g.config.MaxPostLength,
		HashtagCount:  g.config.HashtagCount,
	}

	var b strings.Builder
	if err := storyTemplate.Execute(&b, data); err != nil {
		return "", fmt.Errorf("render story prompt: %w", err)
	}

	if feedback != "" {
		fmt.Fprintf(&b, "\n\n## Additional Feedback:\n%s\n\nPlease incorporate this feedback in the new version.", feedback)
	}

	return b.String(), nil
}

func (g *Generator) hashtagPrompt(content string) (string, error) {
	var b strings.Builder
	err := hashtagTemplate.Execute(&b, struct {
		Count   int
		Content string
	}{g.config.HashtagCount, content})
	if err != nil {
		return "", fmt.Errorf("render hashtag prompt: %w", err)
	}
	return b.String(), nil
}
