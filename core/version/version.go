package version

// Version is the release version stamped into the CLI.
const Version = "v0.2.0"
