package logger

// Console implements a console based logger.
// Console output always goes to stderr, stdout is reserved for the password.
type Console struct {
	Enabled          bool `toml:"enabled" json:"enabled"`
	UseConsoleWriter bool `toml:"useConsoleWriter" json:"useConsoleWriter"`
	NoColor          bool `toml:"noColor" json:"noColor"`
}

// LogFile implements a file based logger.
type LogFile struct {
	Enabled bool   `toml:"enabled" json:"enabled"`
	Path    string `toml:"path" json:"path"`

	ErrorLog        string `toml:"error" json:"error" mapstructure:"error"`
	ErrorMaxSize    int    `toml:"errorMaxSize" json:"errorMaxSize"`
	ErrorMaxBackups int    `toml:"errorMaxBackups" json:"errorMaxBackups"`
	ErrorMaxAge     int    `toml:"errorMaxAge" json:"errorMaxAge"`

	InfoLog        string `toml:"info" json:"info" mapstructure:"info"`
	InfoMaxSize    int    `toml:"infoMaxSize" json:"infoMaxSize"`
	InfoMaxBackups int    `toml:"infoMaxBackups" json:"infoMaxBackups"`
	InfoMaxAge     int    `toml:"infoMaxAge" json:"infoMaxAge"`

	TraceLog        string `toml:"trace" json:"trace" mapstructure:"trace"`
	TraceMaxSize    int    `toml:"traceMaxSize" json:"traceMaxSize"`
	TraceMaxBackups int    `toml:"traceMaxBackups" json:"traceMaxBackups"`
	TraceMaxAge     int    `toml:"traceMaxAge" json:"traceMaxAge"`

	WarnLog        string `toml:"warn" json:"warn" mapstructure:"warn"`
	WarnMaxSize    int    `toml:"warnMaxSize" json:"warnMaxSize"`
	WarnMaxBackups int    `toml:"warnMaxBackups" json:"warnMaxBackups"`
	WarnMaxAge     int    `toml:"warnMaxAge" json:"warnMaxAge"`
}

// Log implements the logger config.
type Log struct {
	LogLevel     string `toml:"logLevel" json:"logLevel" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
	ReportCaller bool   `toml:"reportCaller" json:"reportCaller"`

	AppName     string `toml:"appName" json:"appName"`
	ServiceName string `toml:"serviceName" json:"serviceName"`

	Console Console `toml:"console" json:"console"`
	File    LogFile `toml:"file" json:"file"`
}
