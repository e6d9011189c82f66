package logger

// Config holds configuration for the logger.
type Config struct {
	// Level is the minimum level logged (debug, info, warn, error).
	Level string `mapstructure:"level" default:"info"`
	// Format is the encoding: console for humans, json for machines.
	Format string `mapstructure:"format" default:"console"`
	// Output is a zap sink path such as stdout, stderr or a file.
	Output string `mapstructure:"output" default:"stdout"`
}
