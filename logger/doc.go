// Package logger provides structured logging for pushgen tools using
// zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields. The generator package
// itself never logs; callers that run pipelines (the scenario runner, the
// CLI) do.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.Get("scenario")
//	log.Info("run finished", logger.Fields(logger.FieldResult, "complete", logger.FieldValues, 9))
package logger
