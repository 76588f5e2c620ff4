package catalog

import (
	"context"
	"strings"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"

	"github.com/AlvaroMoyaL/fitapp/internal/errors"
)

// Describer fills in missing exercise descriptions using the OpenAI API.
type Describer struct {
	client openai.Client
}

// NewDescriber creates a describer with the given API key.
func NewDescriber(apiKey string) *Describer {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &Describer{client: client}
}

// Describe generates a short plain-text description for the exercise.
func (d *Describer) Describe(ctx context.Context, exercise Exercise) (string, error) {
	if exercise.Name == "" {
		return "", errors.New("exercise name cannot be empty")
	}

	prompt := "Write a concise description (80-120 words) of the exercise \"" + exercise.Name + "\"" +
		" targeting the " + exercise.Target + " (" + exercise.BodyPart + ").\n\n" +
		"Cover, in this order: what the movement trains, how to perform it with good form in 2-3 sentences," +
		" and one common mistake to avoid. Use simple language a beginner can follow." +
		" Do not use headings or bullet points."

	completion, err := d.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModelGPT4o,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage("You are a fitness coach writing exercise descriptions for a workout app."),
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", errors.Wrap(err, "chat completion")
	}

	if len(completion.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	description := strings.TrimSpace(completion.Choices[0].Message.Content)
	if description == "" {
		return "", errors.New("chat completion returned empty description")
	}

	return description, nil
}
