package model

// Package model defines domain data structures used across the app: video
// metadata and stream descriptors as reported by yt-dlp, clip tasks, and
// status enums. Structures are designed for direct rendering in the console
// and web surfaces and explicit state transitions.
