package cli

import "time"

// nowFunc is swapped in tests that assert on dated export filenames.
var nowFunc = time.Now
