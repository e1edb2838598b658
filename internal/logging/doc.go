// Package logger provides leveled, colored output for purr commands.
//
// Levels:
//
//	Logger.Debugf()      // Shown with --debug
//	Logger.Infof()       // Shown with --verbose
//	Logger.Warnf()       // Shown with --verbose or --debug
//	Logger.WarnfAlways() // Always shown (critical warnings)
//	Logger.Errorf()      // Always shown
package logger
