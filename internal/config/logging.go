package config

import "github.com/Faultbox/nurbs-editor/internal/logger"

// LoggerOptions converts the logging section for logger.Init.
func (l LoggingConfig) LoggerOptions() logger.Options {
	return logger.Options{
		Level:      l.Level,
		File:       l.LogFile,
		MaxSizeMB:  l.MaxSizeMB,
		MaxBackups: l.MaxBackups,
		MaxAgeDays: l.MaxAgeDays,
		Compress:   l.Compress,
	}
}
