package styles

// Tip: To find icons use https://github.com/loichyan/nerdfix

var (
	IconWork        = ""     //
	IconBreak       = ""     //
	IconDone        = ""     //
	IconPending     = ""     //
	IconSkipped     = ""     //
	IconDistraction = ""     //
	IconBell        = ""     //
	IconTomato      = "\U000F1AD9" // 󱫙
)

// ASCII fallbacks for plain CLI tables where nerd fonts may be absent.
var (
	MarkDone    = "x"
	MarkPending = " "
	MarkSkipped = "-"
)
