package i18n

var de = map[string]string{
	"tab_range":   "Zeitraum",
	"tab_buckets": "Intervalle",

	"initializing":       "Initialisiere...",
	"terminal_too_small": "Terminal zu klein (mind. 80x24)",
	"current_size":       "Aktuell: %dx%d",
	"notify_loaded":      "%d Buchungen aus %d Dateien geladen",
	"notify_reloaded":    "Daten geändert, lade neu",
	"pan_at_ceiling":     "Weiter als das späteste wählbare Datum geht es nicht",
	"config_saved":       "Einstellungen gespeichert",

	"key_next_view":         "nächste Ansicht",
	"key_prev_view":         "vorherige Ansicht",
	"key_help":              "Hilfe",
	"key_settings":          "Einstellungen",
	"key_reload":            "neu laden",
	"key_quit":              "beenden",
	"key_pan_back":          "zurück blättern",
	"key_pan_forward":       "vor blättern",
	"key_comparison":        "Vergleich",
	"key_remove_comparison": "Vergleich entfernen",
	"key_preset":            "nächste Vorgabe",

	"key_move_left":     "nach links",
	"key_move_right":    "nach rechts",
	"key_start_earlier": "Beginn früher",
	"key_start_later":   "Beginn später",
	"key_end_earlier":   "Ende früher",
	"key_end_later":     "Ende später",
	"key_cancel_drag":   "Ziehen abbrechen",

	"range_title":         "Zeitraum",
	"rail_no_layout":      "Warte auf Layout...",
	"summary":             "Übersicht",
	"total":               "Summe",
	"transactions":        "Buchungen",
	"comparison_total":    "Vergleich",
	"change":              "Änderung",
	"no_data":             "Keine Daten",
	"versus":              "ggü.",
	"span_day":            "1 Tag",
	"span_days":           "%d Tage",
	"mode_creating":       "neu",
	"mode_moving":         "verschieben",
	"mode_resizing-start": "Beginn ändern",
	"mode_resizing-end":   "Ende ändern",

	"preset_today":           "Heute",
	"preset_yesterday":       "Gestern",
	"preset_last_7_days":     "Letzte 7 Tage",
	"preset_last_30_days":    "Letzte 30 Tage",
	"preset_month_to_date":   "Monat bis heute",
	"preset_last_month":      "Letzter Monat",
	"preset_quarter_to_date": "Quartal bis heute",
	"preset_year_to_date":    "Jahr bis heute",
	"preset_last_year":       "Letztes Jahr",
	"preset_custom":          "Eigener",

	"scale_month":                "Monatsansicht",
	"scale_quarter":              "Quartalsansicht",
	"scale_year":                 "Jahresansicht",
	"unit_day":                   "Tagesschritte",
	"unit_week":                  "Wochenschritte",
	"unit_month":                 "Monatsschritte",
	"unit_quarter":               "Quartalsschritte",
	"comparison_off":             "kein Vergleich",
	"comparison_previous_period": "Vorperiode",
	"comparison_previous_year":   "Vorjahr",

	"buckets":          "Intervalle",
	"no_buckets":       "Keine Intervalle im gewählten Zeitraum",
	"cadence_day":      "täglich",
	"cadence_month":    "monatlich",
	"cadence_quarter":  "quartalsweise",
	"cadence_year":     "jährlich",
	"auto":             "auto",
	"period":           "Periode",
	"from":             "Von",
	"to":               "Bis",
	"count":            "Anzahl",
	"share":            "Anteil",
	"buckets_help":     "↑↓ wählen · enter Details · g Intervall",
	"bucket_detail":    "Intervall %s",
	"average":          "Durchschnitt",
	"categories":       "Kategorien",
	"category":         "Kategorie",
	"detail_back_help": "esc zurück · ↑↓ blättern",

	"keyboard_shortcuts": "Tastenkürzel",
	"mouse":              "Maus",
	"help_mouse":         "auf der Leiste ziehen zum Auswählen, Auswahl ziehen zum Verschieben, Griff ziehen zum Ändern",
	"help_close":         "? oder Esc zum Schließen",

	"settings":           "Einstellungen",
	"settings_help":      "↑↓ wählen · ←→ ändern · esc speichern & schließen",
	"setting_scale":      "Leistenmaßstab",
	"setting_unit":       "Kleinste Einheit",
	"setting_comparison": "Vergleich",
	"setting_cadence":    "Intervall",
	"setting_marker":     "Heute-Markierung",
	"setting_timezone":   "Zeitzone",
	"setting_language":   "Sprache",
}
