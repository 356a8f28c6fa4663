package platform

// Package platform contains OS integration: filesystem helpers, yt-dlp discovery,
// console suppression for child processes, and opening folders in the file manager.
