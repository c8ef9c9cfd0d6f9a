package logcolors

// ANSI color codes for log prefixes
const (
	Reset  = "\033[0m"
	Green  = "\033[32m"
	Blue   = "\033[34m"
	Purple = "\033[35m"
	Cyan   = "\033[36m"
	Red    = "\033[31m"
)

// Server/Init log prefixes
const (
	LogServer = Green + "[Server]" + Reset
	LogConfig = Cyan + "[Config]" + Reset
	LogStats  = Blue + "[Stats]" + Reset
)

// Request pipeline log prefixes
const (
	LogAuth     = Purple + "[Auth]" + Reset
	LogLogin    = Green + "[Login]" + Reset
	LogSearch   = Blue + "[Search]" + Reset
	LogUpstream = Cyan + "[Upstream]" + Reset
	LogWarning  = Red + "[Warning]" + Reset
)
