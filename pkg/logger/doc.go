// Package logger builds configured log/slog loggers for the CLI.
//
// It is a small factory over the standard structured logger: callers pick an
// output format (text for humans, JSON for aggregation), a level, and an
// output writer through functional options.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithOutput(os.Stderr),
//	)
//	log.Debug("parsed", slog.String("year", p.Year), logger.Error(err))
package logger
