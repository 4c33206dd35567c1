package discord

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"
)

func (d *discordImpl) GetWebhookURL() string {
	return fmt.Sprintf("%s/%s/%s", d.config.BaseURL, d.webhook.ID, d.webhook.Token)
}

func (d *discordImpl) SendMessage(ctx context.Context, content string) error {
	return d.send(ctx, WebhookPayload{
		Content:  truncate(content, maxDescriptionLength),
		Username: d.config.DefaultUsername,
	})
}

func (d *discordImpl) SendEmbed(ctx context.Context, options MessageOptions) error {
	ts := options.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	fields := make([]EmbedField, 0, len(options.Fields))
	for _, f := range options.Fields {
		f.Value = truncate(f.Value, maxFieldValueLength)
		fields = append(fields, f)
	}

	username := options.Username
	if username == "" {
		username = d.config.DefaultUsername
	}
	avatar := options.AvatarURL
	if avatar == "" {
		avatar = d.config.DefaultAvatarURL
	}

	return d.send(ctx, WebhookPayload{
		Username:  username,
		AvatarURL: avatar,
		Embeds: []Embed{{
			Title:       options.Title,
			Description: truncate(options.Description, maxDescriptionLength),
			Color:       colorFor(options.Type),
			Timestamp:   ts.UTC().Format(time.RFC3339),
			Footer:      options.Footer,
			Author:      options.Author,
			Fields:      fields,
			Thumbnail:   options.Thumbnail,
			Image:       options.Image,
		}},
	})
}

func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	opts := MessageOptions{
		Type:        MessageTypeError,
		Title:       title,
		Description: description,
	}
	if err != nil {
		opts.Fields = []EmbedField{{Name: "Error", Value: err.Error()}}
	}
	return d.SendEmbed(ctx, opts)
}

func (d *discordImpl) ReportBug(ctx context.Context, message string) error {
	return d.SendEmbed(ctx, MessageOptions{
		Type:        MessageTypeError,
		Title:       "Bug report",
		Description: "```\n" + truncate(message, maxDescriptionLength-8) + "\n```",
	})
}

func (d *discordImpl) Close() error {
	return nil
}

func (d *discordImpl) send(ctx context.Context, p WebhookPayload) error {
	resp, err := d.client.Post(ctx, d.GetWebhookURL(), p, nil)
	if err != nil {
		d.l.Errorf(ctx, "discord.send: Post failed: %v", err)
		return err
	}
	if !resp.IsSuccess() {
		d.l.Errorf(ctx, "discord.send: status=%d body=%s", resp.StatusCode, string(resp.Body))
		return fmt.Errorf("%w: %d", errUnexpectedReply, resp.StatusCode)
	}
	return nil
}

func colorFor(t MessageType) int {
	switch t {
	case MessageTypeSuccess:
		return colorSuccess
	case MessageTypeWarning:
		return colorWarning
	case MessageTypeError:
		return colorError
	default:
		return colorInfo
	}
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-3]) + "..."
}
