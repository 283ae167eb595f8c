package report

// Output platforms
const (
	PlatformDiscord  = "discord"
	PlatformTerminal = "terminal"
)

// DiscordMaxRows bounds the table embedded in a Discord reply
const DiscordMaxRows = 14

// Column headers
const (
	ColHerb     = "Herb"
	ColLevel    = "Lvl"
	ColSurvival = "Survival"
	ColYield    = "Yield"
	ColXP       = "XP"
	ColCost     = "Cost"
	ColRevenue  = "Revenue"
	ColProfit   = "Profit"
)

// Text fragments
const (
	MsgUnavailableMarker = "*"
	MsgUnavailableNote   = "* requires a higher Farming level"
	MsgWarningsHeader    = "Warnings:"
	MsgPatchesHeader     = "Patches:"
	MsgNoResults         = "No herbs to show."
	MsgSummaryFormat     = "Farming %d, Magic %d, sorted by %s"
)
