package cli

// ANSI color codes
const (
	ColorReset      = "\033[0m"
	ColorLightBrown = "\033[38;5;180m" // echoed command lines
	ColorOrange     = "\033[38;5;208m"
	ColorGray       = "\033[90m"
	ColorRed        = "\033[31m"
	ColorBold       = "\033[1m"
)
