package entities

// Log output settings
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Config holds everything a clangfetch run can be configured with
type Config struct {
	Source   ScriptSource
	Download DownloadSettings
	Log      LogSettings
}

// DownloadSettings configures the HTTP downloader
type DownloadSettings struct {
	TimeoutMinutes int
	UserAgent      string
}

// LogSettings configures the process logger
type LogSettings struct {
	Level  string // debug, info, warn, error
	Format string // console or json
}

// DefaultConfig returns the configuration used when no file is given
func DefaultConfig() *Config {
	return &Config{
		Source: DefaultScriptSource(),
		Download: DownloadSettings{
			TimeoutMinutes: 5,
			UserAgent:      "clangfetch/1.0",
		},
		Log: LogSettings{
			Level:  "info",
			Format: LogFormatConsole,
		},
	}
}
