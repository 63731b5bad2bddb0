package config

import "time"

// Default values.
const (
	DefaultRefreshRate = 2.0
	DefaultLogLevel    = "info"
	DefaultIndicators  = "arrows"
	DefaultSortColumn  = "NAME"
)

// SortPref captures the default sort column and direction.
type SortPref struct {
	Column    string `yaml:"column"`
	Ascending bool   `yaml:"ascending"`
}

// Tably represents the tably global configuration.
type Tably struct {
	RefreshRate float32  `yaml:"refreshRate"`
	LogLevel    string   `yaml:"logLevel"`
	LogFile     string   `yaml:"logFile"`
	Mouse       bool     `yaml:"mouse"`
	Indicators  string   `yaml:"indicators"`
	DefaultSort SortPref `yaml:"defaultSort"`
}

// NewTably creates a Tably with default settings.
func NewTably() *Tably {
	return &Tably{
		RefreshRate: DefaultRefreshRate,
		LogLevel:    DefaultLogLevel,
		Mouse:       true,
		Indicators:  DefaultIndicators,
		DefaultSort: SortPref{Column: DefaultSortColumn, Ascending: true},
	}
}

// Validate ensures Tably has valid settings.
func (t *Tably) Validate() {
	if t.RefreshRate <= 0 {
		t.RefreshRate = DefaultRefreshRate
	}

	if t.LogLevel == "" {
		t.LogLevel = DefaultLogLevel
	}

	if t.LogFile == "" {
		t.LogFile = AppLogFile
	}

	if t.Indicators != "arrows" && t.Indicators != "plain" {
		t.Indicators = DefaultIndicators
	}

	if t.DefaultSort.Column == "" {
		t.DefaultSort = SortPref{Column: DefaultSortColumn, Ascending: true}
	}
}

// Override applies CLI flag overrides to the configuration.
func (t *Tably) Override(flags *Flags) {
	if flags == nil {
		return
	}

	if flags.RefreshRate != nil && *flags.RefreshRate > 0 {
		t.RefreshRate = *flags.RefreshRate
	}

	if IsStringSet(flags.LogLevel) {
		t.LogLevel = *flags.LogLevel
	}

	if IsStringSet(flags.LogFile) {
		t.LogFile = *flags.LogFile
	}

	// The mouse flag defaults to true, so only an explicit
	// --mouse=false is distinguishable from the default.
	if flags.Mouse != nil && !*flags.Mouse {
		t.Mouse = false
	}

	if IsStringSet(flags.Indicators) {
		t.Indicators = *flags.Indicators
	}

	if IsStringSet(flags.Sort) {
		t.DefaultSort = SortPref{Column: *flags.Sort, Ascending: true}
	}

	// Desc flips whatever sort column ends up active.
	if IsBoolSet(flags.Desc) {
		t.DefaultSort.Ascending = false
	}
}

// RefreshDur returns the refresh rate as a duration.
func (t *Tably) RefreshDur() time.Duration {
	return time.Duration(float64(t.RefreshRate) * float64(time.Second))
}
