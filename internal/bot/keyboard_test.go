package bot

import (
	"context"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rookgm/phoenixbot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 30))
	assert.Equal(t, strings.Repeat("й", 30)+"...", truncate(strings.Repeat("й", 31), 30))
}

func TestMainMenuKeyboard(t *testing.T) {
	kb := mainMenuKeyboard(models.Categories())

	var widths []int
	for _, r := range kb.InlineKeyboard {
		widths = append(widths, len(r))
	}
	assert.Equal(t, []int{1, 2, 2, 1}, widths)
	require.NotNil(t, kb.InlineKeyboard[0][0].CallbackData)
	assert.Equal(t, "category_optimization", *kb.InlineKeyboard[0][0].CallbackData)
}

func TestDeleteListKeyboard_Limits(t *testing.T) {
	var offerings []models.Offering
	for i := 1; i <= 12; i++ {
		offerings = append(offerings, models.Offering{ID: int64(i), Name: strings.Repeat("x", 40)})
	}

	kb := deleteListKeyboard(offerings)
	require.Len(t, kb.InlineKeyboard, deleteListLimit+1)
	assert.Equal(t, "🗑️ "+strings.Repeat("x", 30)+"...", kb.InlineKeyboard[0][0].Text)
}

func TestChannelMessage(t *testing.T) {
	msg, err := channelMessage("@orders", "hi")
	require.NoError(t, err)
	assert.Equal(t, "@orders", msg.ChannelUsername)

	msg, err = channelMessage("-1001234567890", "hi")
	require.NoError(t, err)
	assert.Equal(t, int64(-1001234567890), msg.ChatID)

	_, err = channelMessage("orders", "hi")
	assert.ErrorIs(t, err, models.ErrInvalidChannel)
}

func TestNotifier_NoOperator(t *testing.T) {
	sender := &fakeSender{}
	n := NewNotifier(sender, 0, "phoenix_bot")

	require.NoError(t, n.NotifyOperator(context.Background(), "warning"))
	assert.Empty(t, sender.sent)
}

func TestNotifier_PublishAttachesMenuButton(t *testing.T) {
	sender := &fakeSender{}
	n := NewNotifier(sender, operatorID, "phoenix_bot")

	require.NoError(t, n.Publish(context.Background(), "@news", "*Sale*"))
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0].(tgbotapi.MessageConfig)
	kb, ok := msg.ReplyMarkup.(tgbotapi.InlineKeyboardMarkup)
	require.True(t, ok)
	require.NotNil(t, kb.InlineKeyboard[0][0].URL)
	assert.Equal(t, "https://t.me/phoenix_bot?start=channel", *kb.InlineKeyboard[0][0].URL)
}
