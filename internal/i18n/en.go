package i18n

var en = map[string]string{
	// Tabs
	"tab_range":   "Range",
	"tab_buckets": "Buckets",

	// Status
	"initializing":       "Initializing...",
	"terminal_too_small": "Terminal too small (min 80x24)",
	"current_size":       "Current: %dx%d",
	"notify_loaded":      "Loaded %d transactions from %d files",
	"notify_reloaded":    "Data changed, reloading",
	"pan_at_ceiling":     "Cannot pan past the latest selectable date",
	"config_saved":       "Settings saved",

	// Global keys
	"key_next_view":         "next view",
	"key_prev_view":         "prev view",
	"key_help":              "help",
	"key_settings":          "settings",
	"key_reload":            "reload",
	"key_quit":              "quit",
	"key_pan_back":          "pan back",
	"key_pan_forward":       "pan forward",
	"key_comparison":        "comparison",
	"key_remove_comparison": "remove comparison",
	"key_preset":            "next preset",

	// Range keys
	"key_move_left":     "move left",
	"key_move_right":    "move right",
	"key_start_earlier": "start earlier",
	"key_start_later":   "start later",
	"key_end_earlier":   "end earlier",
	"key_end_later":     "end later",
	"key_cancel_drag":   "cancel drag",

	// Range view
	"range_title":         "Time Range",
	"rail_no_layout":      "Waiting for layout...",
	"summary":             "Summary",
	"total":               "Total",
	"transactions":        "Transactions",
	"comparison_total":    "Comparison",
	"change":              "Change",
	"no_data":             "No data",
	"versus":              "vs",
	"span_day":            "1 day",
	"span_days":           "%d days",
	"mode_creating":       "creating",
	"mode_moving":         "moving",
	"mode_resizing-start": "resizing start",
	"mode_resizing-end":   "resizing end",

	// Presets
	"preset_today":           "Today",
	"preset_yesterday":       "Yesterday",
	"preset_last_7_days":     "Last 7 days",
	"preset_last_30_days":    "Last 30 days",
	"preset_month_to_date":   "Month to date",
	"preset_last_month":      "Last month",
	"preset_quarter_to_date": "Quarter to date",
	"preset_year_to_date":    "Year to date",
	"preset_last_year":       "Last year",
	"preset_custom":          "Custom",

	// Scale, unit, comparison
	"scale_month":                "month view",
	"scale_quarter":              "quarter view",
	"scale_year":                 "year view",
	"unit_day":                   "day steps",
	"unit_week":                  "week steps",
	"unit_month":                 "month steps",
	"unit_quarter":               "quarter steps",
	"comparison_off":             "no comparison",
	"comparison_previous_period": "previous period",
	"comparison_previous_year":   "previous year",

	// Buckets
	"buckets":          "Buckets",
	"no_buckets":       "No buckets in the selected range",
	"cadence_day":      "daily",
	"cadence_month":    "monthly",
	"cadence_quarter":  "quarterly",
	"cadence_year":     "yearly",
	"auto":             "auto",
	"period":           "Period",
	"from":             "From",
	"to":               "To",
	"count":            "Count",
	"share":            "Share",
	"buckets_help":     "↑↓ select · enter detail · g cadence",
	"bucket_detail":    "Bucket %s",
	"average":          "Average",
	"categories":       "Categories",
	"category":         "Category",
	"detail_back_help": "esc back · ↑↓ scroll",

	// Help overlay
	"keyboard_shortcuts": "Keyboard Shortcuts",
	"mouse":              "mouse",
	"help_mouse":         "drag on the rail to select, drag the body to move, drag a handle to resize",
	"help_close":         "Press ? or Esc to close",

	// Settings
	"settings":           "Settings",
	"settings_help":      "↑↓ select · ←→ change · esc save & close",
	"setting_scale":      "Rail scale",
	"setting_unit":       "Minimum unit",
	"setting_comparison": "Comparison",
	"setting_cadence":    "Bucket cadence",
	"setting_marker":     "Today marker",
	"setting_timezone":   "Timezone",
	"setting_language":   "Language",
}
