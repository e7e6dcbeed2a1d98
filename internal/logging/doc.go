// Package logging provides levelled logging for the acctvault CLI and the
// account store.
//
// # Levels
//
//	Logger.Infof()  // Shown with --verbose or --debug
//	Logger.Debugf() // Shown only with --debug
//	Logger.Warnf()  // Always shown
//	Logger.Errorf() // Always shown
//
// Secrets never reach the logger: the store logs paths, counters and
// account ids only.
package logging
