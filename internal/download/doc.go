package download

// Package download runs the external yt-dlp executable for a single request. It builds
// the argument list, streams every stdout/stderr line to a status callback, and turns
// the process lifetime into a terminal Complete or Failed outcome.
