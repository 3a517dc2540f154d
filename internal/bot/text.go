package bot

import (
	"fmt"
	"strings"

	"github.com/rookgm/phoenixbot/internal/intake"
	"github.com/rookgm/phoenixbot/internal/models"
	"github.com/rookgm/phoenixbot/internal/service"
	"github.com/rookgm/phoenixbot/internal/settings"
)

const statsTimeLayout = "02.01.2006 15:04"

const (
	textWelcome = "🔥 Phoenix PS Bot 🔥\n\n" +
		"Welcome! We provide professional Windows optimization and customization services.\n\n" +
		"Choose a category from the menu below:"

	textAbout = "🧾 About us\n\n" +
		"Phoenix PS is a team of specialists in Windows optimization and PC overclocking.\n\n" +
		"🔥 Why us:\n" +
		"• Years of experience\n" +
		"• Individual approach to every client\n" +
		"• Warranty on all work\n" +
		"• Support after optimization\n\n" +
		"💪 We will help you:\n" +
		"• Raise PC performance\n" +
		"• Get rid of lags and freezes\n" +
		"• Tune the system for your tasks\n" +
		"• Overclock components safely"

	textTryAgain       = "❌ Something went wrong. Please try again later."
	textOrderFailed    = "❌ The order could not be processed. Please try again later."
	textOfferingGone   = "This service is no longer available."
	textChooseCategory = "❌ Please choose a category from the menu."
	textStartOver      = "❌ State error. Please start over."
	textNoChannel      = "❌ The channel is not configured! Use /set_channel"
	textNothingToDrop  = "📭 There are no services to delete."
	textNotFound       = "❌ Service not found."
	textEmptyCatalog   = "📭 No services yet."

	textAdminHelp = "🔧 Phoenix PS Bot admin commands\n\n" +
		"Interface:\n" +
		"• /admin - admin panel with buttons\n\n" +
		"Commands:\n" +
		"• /add_service category|name|description|price\n" +
		"• /list_services - list services\n" +
		"• /delete_service ID - delete service\n" +
		"• /set_manager username - manager\n" +
		"• /set_channel @channel - channel\n" +
		"• /post text - post to channel\n" +
		"• /cancel - cancel the current dialog\n\n" +
		"Current settings:\n" +
		"• Manager: %s\n" +
		"• Channel: %s"
)

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func contactsText(v settings.Values) string {
	manager := "not set"
	if v.ManagerUsername != "" {
		manager = "@" + v.ManagerUsername
	}

	return fmt.Sprintf("📞 Contacts and ordering\n\n"+
		"👤 Manager: %s\n"+
		"📱 Channel: %s\n"+
		"🕐 Working hours: 9:00 - 21:00 (MSK)\n\n"+
		"📋 How to order:\n"+
		"1. Choose a service from the menu\n"+
		"2. Press \"Order\"\n"+
		"3. Your request is sent\n"+
		"4. We contact you to discuss the details\n\n"+
		"💳 Payment methods:\n"+
		"• Bank card\n"+
		"• Fast payment system\n"+
		"• Cryptocurrency",
		manager, orDefault(v.ChannelID, "not set"))
}

func emptyCategoryText(label string) string {
	return fmt.Sprintf("📭 There are no services in %s yet.\n\nNew offers will appear here soon!", label)
}

func categoryText(label string) string {
	return fmt.Sprintf("📋 %s\n\nChoose a service:", label)
}

func offeringText(o *models.Offering) string {
	return fmt.Sprintf("💼 %s\n\n💰 Price: %s\n\n📝 Description:\n%s\n\nChoose an action:", o.Name, o.Price, o.Description)
}

func detailsText(o *models.Offering) string {
	return fmt.Sprintf("📄 Detailed information\n\n"+
		"💼 Service: %s\n"+
		"💰 Price: %s\n"+
		"📂 Category: %s\n\n"+
		"📝 Full description:\n%s\n\n"+
		"🔥 What is included:\n"+
		"• Diagnostics of the current system state\n"+
		"• Professional optimization\n"+
		"• Testing after the work is done\n"+
		"• Advice on further use\n"+
		"• Support for 7 days after the service\n\n"+
		"⚡ Lead time: 1 to 3 hours\n"+
		"🛡 Warranty: 30 days\n\n"+
		"Ready to order? Press the button below! 👇",
		o.Name, o.Price, o.Category, o.Description)
}

func orderSuccessText(name string) string {
	return fmt.Sprintf("✅ You chose: %s.\nYour request has been sent! We will contact you soon.", name)
}

func adminPanelText(channel string) string {
	return fmt.Sprintf("🔧 Phoenix PS Bot admin panel\n\n⚙️ Current settings:\n📢 Order channel: %s\n\nChoose an action:",
		orDefault(channel, "not set"))
}

func adminServicesText(count int) string {
	return fmt.Sprintf("📦 Service management\n\n📊 Total services: %d\n\nChoose an action:", count)
}

func offeringListText(offerings []models.Offering) string {
	if len(offerings) == 0 {
		return "📭 The service list is empty\n\nAdd one with:\n/add_service category|name|description|price"
	}

	var b strings.Builder
	b.WriteString("📋 All services:\n\n")
	for _, o := range offerings {
		fmt.Fprintf(&b, "🔹 ID %d: %s\n   💰 %s | 📂 %s\n\n", o.ID, o.Name, o.Price, o.Category)
	}
	return b.String()
}

func deleteListText(total int) string {
	shown := total
	if shown > deleteListLimit {
		shown = deleteListLimit
	}
	return fmt.Sprintf("🗑️ Delete a service\n\n📋 Choose a service to delete (showing %d of %d):", shown, total)
}

func confirmDeleteText(o *models.Offering) string {
	return fmt.Sprintf("🗑️ Confirm deletion\n\n📋 Service: %s\n💰 Price: %s\n📂 Category: %s\n\n❓ Are you sure you want to delete this service?",
		o.Name, o.Price, o.Category)
}

func statsText(s *service.Stats) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📊 Bot statistics\n\n📦 Services: %d\n📋 Orders: %d\n🕐 Updated: %s\n\n📈 By category:",
		s.Offerings, s.Orders, s.GeneratedAt.Format(statsTimeLayout))
	for _, c := range s.ByCategory {
		fmt.Fprintf(&b, "\n• %s: %d services", c.Category.Label, c.Count)
	}
	return b.String()
}

func settingsText(v settings.Values) string {
	manager := "not set"
	if v.ManagerUsername != "" {
		manager = "@" + v.ManagerUsername
	}
	return fmt.Sprintf("⚙️ Bot settings\n\n📢 Order channel: %s\n👤 Manager: %s\n\nChoose a setting to change:",
		orDefault(v.ChannelID, "not set"), manager)
}

func adminHelpText(v settings.Values) string {
	manager := "not set"
	if v.ManagerUsername != "" {
		manager = "@" + v.ManagerUsername
	}
	return fmt.Sprintf(textAdminHelp, manager, orDefault(v.ChannelID, "not set"))
}

func addServiceUsage(categories []models.Category) string {
	var b strings.Builder
	b.WriteString("❌ Format: /add_service category|name|description|price\n\nCategories:")
	for _, c := range categories {
		b.WriteString("\n• " + c.Label)
	}
	return b.String()
}

// promptText asks for the input the pending step needs
func promptText(st intake.State, channel string) string {
	switch s := st.(type) {
	case intake.AwaitingCategory:
		return "➕ Adding a new service\n\n📂 Choose a category for the new service:"
	case intake.AwaitingName:
		return fmt.Sprintf("📝 Adding a service to category: %s\n\nEnter the service name (for example: '⚡ Basic Windows optimization'):", s.Category.Label)
	case intake.AwaitingDescription:
		return fmt.Sprintf("📝 Adding service: %s\n\nEnter the service description (for example: 'Junk cleanup, startup optimization'):", s.Name)
	case intake.AwaitingPrice:
		return fmt.Sprintf("💰 Adding service: %s\n\nEnter the price (for example: '1500 units' or 'Free'):", s.Name)
	case intake.AwaitingChannel:
		return "📢 Order channel\n\nEnter the channel where orders are published (for example: @helprepairpc or -1001234567890):"
	case intake.AwaitingManager:
		return "👤 Manager\n\nEnter the manager username (for example: phoen1xPC):"
	case intake.AwaitingGiveaway:
		return "🎁 Giveaway\n\nSend the new giveaway description:"
	case intake.AwaitingPost:
		return fmt.Sprintf("📝 Send the text to publish to channel %s.\n\nThe bot attaches the '🔥 Open menu' button automatically.", channel)
	default:
		return textStartOver
	}
}

func repromptText(st intake.State, channel string) string {
	if _, ok := st.(intake.AwaitingCategory); ok {
		return textChooseCategory
	}
	return "❌ Please send a text message.\n\n" + promptText(st, channel)
}

func offeringAddedText(o *models.Offering) string {
	return fmt.Sprintf("✅ Service added!\n\n📋 Name: %s\n💰 Price: %s\n📂 Category: %s\n🆔 ID: %d", o.Name, o.Price, o.Category, o.ID)
}
