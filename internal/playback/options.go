package playback

// Defaults for the tracker timing windows, in milliseconds.
const (
	DefaultLeadInMs         = 300
	DefaultTokenToleranceMs = 50
	DefaultHighlightOffset  = 0
)

// Option configures a Tracker.
type Option func(*config)

type config struct {
	leadInMs          float64
	toleranceMs       float64
	highlightOffsetMs float64
}

func defaultConfig() config {
	return config{
		leadInMs:          DefaultLeadInMs,
		toleranceMs:       DefaultTokenToleranceMs,
		highlightOffsetMs: DefaultHighlightOffset,
	}
}

// WithLeadIn sets how long before the first line starts it is shown as a
// preview.
func WithLeadIn(ms float64) Option {
	return func(c *config) {
		c.leadInMs = max(ms, 0)
	}
}

// WithTokenTolerance widens each token's active window by ms on both sides
// to absorb audio clock jitter.
func WithTokenTolerance(ms float64) Option {
	return func(c *config) {
		c.toleranceMs = max(ms, 0)
	}
}

// WithHighlightOffset shifts token highlighting; positive values highlight
// earlier. Line selection is unaffected.
func WithHighlightOffset(ms float64) Option {
	return func(c *config) {
		c.highlightOffsetMs = ms
	}
}
