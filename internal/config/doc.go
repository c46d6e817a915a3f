// Package config loads DrawingBoard settings from a TOML file.
//
// Load looks at ~/.config/drawingboard/config.toml unless a path is given.
// A missing file is not an error; defaults are used instead:
//
//	document_size = 1024    # logical size of new drawings
//	history_limit = 0       # undo entries kept per drawing, 0 = unbounded
//	log_level     = "info"  # debug, info, warn or error
//	development   = false   # console logging instead of JSON
//	export_dir    = "~/.local/share/drawingboard/exports"
//
// Fields that are present are validated; a non-positive document_size, a
// negative history_limit or an unknown log_level make Load fail.
package config
