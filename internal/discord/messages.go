package discord

// Friendly message constants for Discord responses
const (
	MsgPlayerNotFound    = "👤 **Player Not Found**\nSave your levels first with `/player set`."
	MsgInvalidOptions    = "⚠️ **Invalid Options**\nCheck the compost and sort choices."
	MsgPricesUnavailable = "📉 **Prices Unavailable**\nThe price feed is down, try again shortly."
	MsgAPIUnavailable    = "🔌 **Calculator Offline**\nCould not reach the calculator service."
	MsgNoPlayers         = "No players saved yet."

	MsgGenericError = "❌ Something went wrong."
)

// Log messages
const (
	LogMsgBotRunning           = "Discord bot is now running"
	LogMsgBotReady             = "Bot is ready"
	LogMsgSessionCloseFailed   = "Failed to close Discord session"
	LogMsgHandlerPanic         = "Interaction handler panicked"
	LogMsgHealthServerStarting = "Starting Discord health server"
	LogMsgHealthServerFailed   = "Discord health server failed"
	LogMsgHealthWriteFailed    = "Failed to write health response"
	LogMsgUnknownCommand       = "Received unknown command"
	LogMsgCommandsUnchanged    = "Commands unchanged, skipping registration"
	LogMsgCommandsUpdated      = "Commands updated"
	LogMsgPingFailed           = "Calculator health check failed"
)

// Embed colors
const (
	ColorHerbs    = 0x2ecc71
	ColorDegraded = 0xf39c12
	ColorPlayer   = 0x3498db
)

// Footer constants for standardized embed footers.
const (
	FooterHerbCalc = "HerbFarmCalc"
)

// MaxAutocompleteChoices is Discord's limit on autocomplete suggestions
const MaxAutocompleteChoices = 25
