package boxscript

// Version is the library/CLI release string.
const Version = "0.2.0"

// BuildDate is stamped by the release build via -ldflags.
var BuildDate = "unknown"
