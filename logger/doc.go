// Package logger provides structured logging for synthkit built on zerolog.
//
// The core generation engine stays silent unless a logger is injected;
// the CLI and sinks log through a component-tagged instance:
//
//	log := logger.NewDefault("synthgen").WithComponent("sink")
//	log.Info("tables written", logger.Fields(logger.FieldRows, n))
package logger
