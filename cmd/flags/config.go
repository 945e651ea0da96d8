package flags

import "time"

var (
	Debug    bool
	BaseURL  string
	Timeout  time.Duration
	Interval time.Duration
	Wait     time.Duration
	Key      string
)
