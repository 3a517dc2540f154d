package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rookgm/phoenixbot/internal/models"
)

// Sender is the part of the Telegram client used by the bot
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// Notifier sends order summaries, operator warnings and announcements
type Notifier struct {
	sender      Sender
	operator    int64
	botUsername string
}

// NewNotifier creates new Notifier. Operator 0 turns operator warnings off.
func NewNotifier(sender Sender, operator int64, botUsername string) *Notifier {
	return &Notifier{
		sender:      sender,
		operator:    operator,
		botUsername: botUsername,
	}
}

// NotifyChannel sends plain text to channel
func (n *Notifier) NotifyChannel(ctx context.Context, channelID, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg, err := channelMessage(channelID, text)
	if err != nil {
		return err
	}

	_, err = n.sender.Send(msg)
	return err
}

// NotifyOperator sends plain text to the operator
func (n *Notifier) NotifyOperator(ctx context.Context, text string) error {
	if n.operator == 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := n.sender.Send(tgbotapi.NewMessage(n.operator, text))
	return err
}

// Publish posts Markdown announcement to channel with a button opening the bot menu
func (n *Notifier) Publish(ctx context.Context, channelID, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg, err := channelMessage(channelID, text)
	if err != nil {
		return err
	}
	msg.ParseMode = tgbotapi.ModeMarkdown
	if n.botUsername != "" {
		msg.ReplyMarkup = channelPostKeyboard(n.botUsername)
	}

	_, err = n.sender.Send(msg)
	return err
}

// channelMessage addresses text to @username or numeric chat id
func channelMessage(channelID, text string) (tgbotapi.MessageConfig, error) {
	if strings.HasPrefix(channelID, "@") {
		return tgbotapi.NewMessageToChannel(channelID, text), nil
	}

	id, err := strconv.ParseInt(channelID, 10, 64)
	if err != nil {
		return tgbotapi.MessageConfig{}, fmt.Errorf("%w: %q", models.ErrInvalidChannel, channelID)
	}
	return tgbotapi.NewMessage(id, text), nil
}
