package config

// Flags represents CLI command-line flags for the tably application.
type Flags struct {
	RefreshRate *float32 // Refresh rate in seconds
	LogLevel    *string  // Log level (e.g. debug, info, warn, error)
	LogFile     *string  // Path to log file
	Sort        *string  // Default sort column name
	Desc        *bool    // Sort the default column descending
	Mouse       *bool    // Enable mouse support
	Indicators  *string  // Header indicator style (arrows, plain)
}

// NewFlags creates a new Flags instance with default values set.
func NewFlags() *Flags {
	refreshRate := float32(DefaultRefreshRate)
	logLevel := DefaultLogLevel
	logFile := ""
	sortCol := ""
	desc := false
	mouse := true
	indicators := ""

	return &Flags{
		RefreshRate: &refreshRate,
		LogLevel:    &logLevel,
		LogFile:     &logFile,
		Sort:        &sortCol,
		Desc:        &desc,
		Mouse:       &mouse,
		Indicators:  &indicators,
	}
}

// IsBoolSet returns true if a bool pointer is non-nil and true.
func IsBoolSet(b *bool) bool {
	return b != nil && *b
}

// IsStringSet returns true if a string pointer is non-nil and non-empty.
func IsStringSet(s *string) bool {
	return s != nil && *s != ""
}
