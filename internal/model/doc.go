package model

// Package model defines the domain values shared by the runner, the session and the
// UI: download requests, the run state machine, terminal outcomes and status text.
