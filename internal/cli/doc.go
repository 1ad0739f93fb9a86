package cli

// Package cli wires the cobra command tree: the default interactive console
// for fetching, picking, trimming, and downloading clips, and the serve
// command that runs the web dashboard.
