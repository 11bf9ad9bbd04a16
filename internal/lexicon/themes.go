package lexicon

// defaultThemes is the built-in theme map for Munich council proposals.
// Theme names are spelled without umlauts so they survive URL query
// parameters unescaped. Phrases are matched case-insensitively.
var defaultThemes = map[string][]string{
	"Mobilitaet": {
		"Fahrrad", "Radweg", "Radentscheid", "ÖPNV", "Bus", "U-Bahn",
		"S-Bahn", "Tram", "Verkehrsberuhigung", "Parkplatz", "Fußgänger",
		"E-Scooter", "Carsharing", "Tempo 30",
	},
	"Wohnen": {
		"Wohnung", "Miete", "Wohnungsbau", "Sozialwohnung", "Wohnraum",
		"Obdachlosigkeit", "Nachverdichtung", "Erbbaurecht", "Mietspiegel",
	},
	"Umwelt": {
		"Klima", "Klimaschutz", "Baumschutz", "Grünfläche", "Emission",
		"Luftqualität", "Solaranlage", "Photovoltaik", "Artenschutz",
		"Begrünung", "Trinkbrunnen",
	},
	"Bildung": {
		"Schule", "Kita", "Kindergarten", "Hort", "Volkshochschule",
		"Bibliothek", "Ganztagsbetreuung", "Schulsanierung",
	},
	"Sicherheit": {
		"Polizei", "Feuerwehr", "Kriminalität", "Beleuchtung",
		"Ordnungsdienst", "Katastrophenschutz", "Zivilschutz",
	},
	"Digitalisierung": {
		"WLAN", "Breitband", "Glasfaser", "Online-Dienste", "Smart City",
		"Open Data", "IT-Sicherheit", "Digitalisierung",
	},
	"Kultur": {
		"Museum", "Theater", "Konzert", "Stadtbibliothek", "Denkmal",
		"Festival", "Kulturförderung", "Atelier",
	},
	"Soziales": {
		"Senioren", "Inklusion", "Integration", "Jugendzentrum",
		"Barrierefreiheit", "Pflege", "Ehrenamt", "Tafel",
	},
	"Wirtschaft": {
		"Gewerbe", "Einzelhandel", "Innenstadt", "Wirtschaftsförderung",
		"Tourismus", "Handwerk", "Gastronomie",
	},
	"Gesundheit": {
		"Krankenhaus", "Klinik", "Hitzeschutz", "Drogenhilfe",
		"Gesundheitsreferat", "Suchtprävention", "Impfzentrum",
	},
}
