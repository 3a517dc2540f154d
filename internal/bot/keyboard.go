package bot

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rookgm/phoenixbot/internal/models"
)

const (
	offeringButtonLimit = 50
	deleteButtonLimit   = 30
	deleteListLimit     = 10
)

// truncate cuts s to limit runes, appending "..." when cut
func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit]) + "..."
}

func button(text, data string) tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardButtonData(text, data)
}

func row(buttons ...tgbotapi.InlineKeyboardButton) []tgbotapi.InlineKeyboardButton {
	return tgbotapi.NewInlineKeyboardRow(buttons...)
}

func mainMenuButton() tgbotapi.InlineKeyboardButton {
	return button("🏠 Main menu", cbMainMenu)
}

// mainMenuKeyboard puts the first catalog category alone, then pairs the rest
func mainMenuKeyboard(categories []models.Category) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i := 0; i < len(categories); {
		width := 2
		if i == 0 {
			width = 1
		}
		end := i + width
		if end > len(categories) {
			end = len(categories)
		}

		var buttons []tgbotapi.InlineKeyboardButton
		for _, c := range categories[i:end] {
			buttons = append(buttons, button(c.Label, cbCategory+c.Key))
		}
		rows = append(rows, row(buttons...))
		i = end
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func categoryKeyboard(offerings []models.Offering) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, o := range offerings {
		rows = append(rows, row(button(truncate(o.Name, offeringButtonLimit), fmt.Sprintf("%s%d", cbService, o.ID))))
	}
	rows = append(rows, row(mainMenuButton()))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func offeringKeyboard(id int64, categoryKey string) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		row(
			button("📄 Details", fmt.Sprintf("%s%d", cbDetails, id)),
			button("✅ Order", fmt.Sprintf("%s%d", cbOrder, id)),
		),
	}
	if categoryKey != "" {
		rows = append(rows, row(button("🔙 Back", cbCategory+categoryKey), mainMenuButton()))
	} else {
		rows = append(rows, row(mainMenuButton()))
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func detailsKeyboard(id int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		row(button("✅ Order", fmt.Sprintf("%s%d", cbOrder, id))),
		row(button("🔙 To service", fmt.Sprintf("%s%d", cbService, id)), mainMenuButton()),
	)
}

func backToMainKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(row(mainMenuButton()))
}

func contactKeyboard(manager, channel string) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	if manager != "" {
		rows = append(rows, row(tgbotapi.NewInlineKeyboardButtonURL("💬 Message the manager", "https://t.me/"+manager)))
	}
	if strings.HasPrefix(channel, "@") {
		rows = append(rows, row(tgbotapi.NewInlineKeyboardButtonURL("📢 Our channel", "https://t.me/"+strings.TrimPrefix(channel, "@"))))
	}
	rows = append(rows, row(mainMenuButton()))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func channelPostKeyboard(botUsername string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		row(tgbotapi.NewInlineKeyboardButtonURL("🔥 Open menu", "https://t.me/"+botUsername+"?start=channel")),
	)
}

func adminMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		row(button("📦 Manage services", cbAdminServices)),
		row(button("➕ Add service", cbAdminAddService)),
		row(button("📊 Statistics", cbAdminStats)),
		row(button("📝 Post to channel", cbAdminPost)),
		row(button("⚙️ Settings", cbAdminSettings)),
		row(button("❌ Close", cbAdminClose)),
	)
}

func adminServicesKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		row(button("📋 List services", cbAdminList)),
		row(button("🗑️ Delete service", cbAdminDeleteService)),
		row(button("🔙 Back", cbAdminMenu)),
	)
}

func backKeyboard(data string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(row(button("🔙 Back", data)))
}

func addCategoryKeyboard(categories []models.Category) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for _, c := range categories {
		rows = append(rows, row(button(c.Label, cbAddCategory+c.Key)))
	}
	rows = append(rows, row(button("🔙 Cancel", cbAdminMenu)))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func deleteListKeyboard(offerings []models.Offering) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton
	for i, o := range offerings {
		if i == deleteListLimit {
			break
		}
		rows = append(rows, row(button("🗑️ "+truncate(o.Name, deleteButtonLimit), fmt.Sprintf("%s%d", cbDeleteService, o.ID))))
	}
	rows = append(rows, row(button("🔙 Back", cbAdminServices)))
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func confirmDeleteKeyboard(id int64) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		row(button("✅ Yes, delete", fmt.Sprintf("%s%d", cbConfirmDelete, id))),
		row(button("❌ Cancel", cbAdminDeleteService)),
	)
}

func settingsKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		row(button("📢 Change order channel", cbAdminSetChannel)),
		row(button("👤 Change manager", cbAdminSetManager)),
		row(button("🎁 Change giveaway text", cbAdminSetGiveaway)),
		row(button("🔙 Back", cbAdminMenu)),
	)
}

func addedKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		row(button("➕ Add another", cbAdminAddService)),
		row(button("🔙 To admin panel", cbAdminMenu)),
	)
}
