// Package logtail reads the end of the viewer's log file for the in-app log
// panel.
//
// Tail scans backwards from the end of the file in fixed chunks, so the cost
// depends on how many lines are wanted rather than on the file size. Parse
// decodes the JSON lines zerolog writes so the panel can color them by level.
package logtail
