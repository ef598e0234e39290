// Package log adapts the teacher's zerolog-to-file idiom
// (originally core's InitLogger, one file under os.TempDir named for the
// current user) to evremap's "diagnostic output only under a verbose
// build flag" requirement: Init and ReportHost are implemented twice,
// once per build tag, with the quiet build importing zerolog only for its
// Nop logger and not importing gopsutil at all.
package log
