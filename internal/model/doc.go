package model

// Package model defines domain data structures used across the app: the task
// record mirrored from the backend, the draft behind the creation form, and
// the derived display status. Structures are plain values so snapshots can be
// handed to the UI without sharing state.
