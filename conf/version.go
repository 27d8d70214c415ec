package conf

// Set at build time with -ldflags "-X github.com/snowzach/thingapi/conf.GitVersion=..."
var (
	Executable = "thingapi"
	GitVersion = "unknown"
)
