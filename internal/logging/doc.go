// Package logging provides the reporting collaborator passed into
// vault operations. There is no process-global logger; each command
// constructs a Logger from its verbosity flags and threads it through
// explicitly, so warnings such as ambiguous group names reach the
// user without the core depending on shared state.
//
// Verbosity:
//
//	Logger.Infof()  // shown with --verbose or --debug
//	Logger.Debugf() // shown only with --debug
//	Logger.Warnf()  // always shown
//	Logger.Errorf() // always shown
package logging
