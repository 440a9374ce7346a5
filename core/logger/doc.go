// Package logger provides slog attribute helpers shared by the senders in
// this module.
//
// Helpers return an empty slog.Attr for nil input, which slog drops, so
// they can be passed unconditionally:
//
//	log.DebugContext(ctx, "email request completed",
//		logger.Provider("ohmysmtp"),
//		logger.StatusCode(resp.StatusCode),
//		logger.Elapsed(start),
//		logger.Error(err), // omitted when err is nil
//	)
package logger
