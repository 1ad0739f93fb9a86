package web

// Package web serves the optional browser dashboard: a gin router exposing
// metadata lookup, clip submission, and task inspection over JSON, plus a
// small embedded HTML page driving it.
