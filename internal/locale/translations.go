package locale

// Key names a translatable label.
type Key string

const (
	PageTitle             Key = "page_title"
	AppTitle              Key = "app_title"
	AppDescription        Key = "app_description"
	LanguageSelector      Key = "language_selector"
	DecimalFeet           Key = "decimal_feet"
	DecimalFeetInput      Key = "decimal_feet_input"
	ArchNotation          Key = "arch_notation"
	ArchInput             Key = "arch_input"
	ArchHelp              Key = "arch_help"
	DecimalInches         Key = "decimal_inches"
	DecimalInchesInput    Key = "decimal_inches_input"
	ConvertFrom           Key = "convert_from"
	ConversionResults     Key = "conversion_results"
	ConvertingFrom        Key = "converting_from"
	InvalidArch           Key = "invalid_arch"
	InvalidNumber         Key = "invalid_number"
	NoConversion          Key = "no_conversion"
	ConsoleHelp           Key = "console_help"
	ConsoleUnknownCommand Key = "console_unknown_command"
	ActivityLog           Key = "activity_log"
	LogSession            Key = "log_session"
	LogEmpty              Key = "log_empty"
	LogUnavailable        Key = "log_unavailable"
	HelpNextField         Key = "help_next_field"
	HelpPrevField         Key = "help_prev_field"
	HelpConvert           Key = "help_convert"
	HelpLanguage          Key = "help_language"
	HelpQuit              Key = "help_quit"
)

var translations = map[Locale]map[Key]string{
	English: {
		PageTitle:          "Tenth to Inch",
		AppTitle:           "Tenth to Inch",
		AppDescription:     "This app converts between three common measurement formats:\n• Decimal feet (e.g., 5.25 ft)\n• Architectural notation (e.g., 5'-3\")\n• Decimal inches (e.g., 63.0\")",
		LanguageSelector:   "Language / Idioma",
		DecimalFeet:        "Decimal Feet",
		DecimalFeetInput:   "Enter measurement in decimal feet",
		ArchNotation:       "Architectural Notation",
		ArchInput:          "Enter measurement (e.g., 5'-3 8/16\")",
		ArchHelp:           "Format: feet'-inches sixteenths/16\" (e.g., 5'-3 8/16\")",
		DecimalInches:      "Decimal Inches",
		DecimalInchesInput: "Enter measurement in decimal inches",
		ConvertFrom:        "Convert from",
		ConversionResults:  "Conversion Results",
		ConvertingFrom:     "Converting from",
		InvalidArch:        "Invalid architectural notation format. Please use the format: feet'-inches sixteenths/16\" (e.g., 5'-3 8/16\")",
		InvalidNumber:      "Please enter a non-negative number.",
		NoConversion:       "Press enter in a field to convert.",
		ConsoleHelp: "Commands:\n" +
			"  ft <value>       convert from decimal feet\n" +
			"  arch <notation>  convert from architectural notation\n" +
			"  in <value>       convert from decimal inches\n" +
			"  lang [en|es]     switch language\n" +
			"  log [n]          show recent activity\n" +
			"  help             show this help\n" +
			"  quit             exit",
		ConsoleUnknownCommand: "Unknown command (type 'help' for commands):",
		ActivityLog:           "Activity log",
		LogSession:            "session",
		LogEmpty:              "No activity recorded yet.",
		LogUnavailable:        "Activity log disabled.",
		HelpNextField:         "next field",
		HelpPrevField:         "previous field",
		HelpConvert:           "convert",
		HelpLanguage:          "language",
		HelpQuit:              "quit",
	},
	Spanish: {
		PageTitle:          "Décimos a pulgadas",
		AppTitle:           "Décimos a pulgadas",
		AppDescription:     "Esta aplicación convierte entre tres formatos comunes de medidas:\n• Pies decimales (ej., 5.25 ft)\n• Notación arquitectónica (ej., 5'-3\")\n• Pulgadas decimales (ej., 63.0\")",
		LanguageSelector:   "Language / Idioma",
		DecimalFeet:        "Pies Decimales",
		DecimalFeetInput:   "Ingrese la medida en pies decimales",
		ArchNotation:       "Notación Arquitectónica",
		ArchInput:          "Ingrese la medida (ej., 5'-3 8/16\")",
		ArchHelp:           "Formato: pies'-pulgadas dieciseisavos/16\" (ej., 5'-3 8/16\")",
		DecimalInches:      "Pulgadas Decimales",
		DecimalInchesInput: "Ingrese la medida en pulgadas decimales",
		ConvertFrom:        "Convertir desde",
		ConversionResults:  "Resultados de la Conversión",
		ConvertingFrom:     "Convirtiendo desde",
		InvalidArch:        "Formato de notación arquitectónica inválido. Por favor use el formato: pies'-pulgadas dieciseisavos/16\" (ej., 5'-3 8/16\")",
		InvalidNumber:      "Por favor ingrese un número no negativo.",
		NoConversion:       "Presione enter en un campo para convertir.",
		ConsoleHelp: "Comandos:\n" +
			"  ft <valor>       convertir desde pies decimales\n" +
			"  arch <notación>  convertir desde notación arquitectónica\n" +
			"  in <valor>       convertir desde pulgadas decimales\n" +
			"  lang [en|es]     cambiar idioma\n" +
			"  log [n]          mostrar la actividad reciente\n" +
			"  help             mostrar esta ayuda\n" +
			"  quit             salir",
		ConsoleUnknownCommand: "Comando desconocido (escriba 'help' para ver los comandos):",
		ActivityLog:           "Registro de actividad",
		LogSession:            "sesión",
		LogEmpty:              "Aún no hay actividad registrada.",
		LogUnavailable:        "Registro de actividad desactivado.",
		HelpNextField:         "campo siguiente",
		HelpPrevField:         "campo anterior",
		HelpConvert:           "convertir",
		HelpLanguage:          "idioma",
		HelpQuit:              "salir",
	},
}
