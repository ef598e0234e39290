package engine

import "time"

// Clock abstracts time.Now so tests can drive the typing detector
// without sleeping.
type Clock func() time.Time
