package utils

// REVISION is overridden at build time with -ldflags "-X .../utils.REVISION=<sha>".
var REVISION = "dev"
