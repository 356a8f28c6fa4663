package ui

// Package ui contains the Fyne desktop window. It forwards user input to the session
// and marshals every status update from the background download onto the UI thread.
