// Package config loads the roster configuration.
//
// # Sources
//
// Values are resolved in this order, later sources winning:
//
//  1. Built-in defaults (Default)
//  2. TOML file, by default ~/.config/roster/config.toml
//  3. ROSTER_* environment variables, parsed with caarlos0/env
//
// A missing file is not an error. Invalid TOML, an unparseable environment
// value, a sheet URL that is not http(s), or an unknown collation tag is.
//
// # TOML Format
//
//	sheet_url = "https://docs.google.com/spreadsheets/d/e/<id>/pub?output=csv"
//	columns_per_row = 2
//	items_per_page = 12
//	sort_members = true
//	collation = "und"
//	placeholder_image = "https://via.placeholder.com/150"
//	audio_file = "~/music/theme.mp3"
//	audio_player = "ffplay"
//	log_file = "~/.local/share/roster/roster.log"
//	timeout_seconds = 15
//
// Every field is optional. Non-positive numbers fall back to defaults.
// Setting log_file to "" disables the log file. Tilde expansion applies to
// audio_file and log_file.
//
// # Environment
//
// ROSTER_SHEET_URL, ROSTER_COLUMNS_PER_ROW, ROSTER_ITEMS_PER_PAGE,
// ROSTER_SORT_MEMBERS, ROSTER_COLLATION, ROSTER_PLACEHOLDER_IMAGE,
// ROSTER_AUDIO_FILE, ROSTER_AUDIO_PLAYER, ROSTER_LOG_FILE,
// ROSTER_TIMEOUT_SECONDS.
//
// Configuration is read once at startup; there is no runtime reload.
package config
