// Package taxonomy holds the static reference tables the extraction
// components score against: degree levels, language proficiency levels,
// skill and tool vocabularies, and the alias table that folds synonyms
// into canonical names. All tables are package-level constants in
// effect: they are never mutated after init and are safe to share
// across concurrent extractions.
package taxonomy

// DegreeLevels maps degree keywords (FR/EN) to a numeric rank used to
// compare degrees. Higher is more advanced.
var DegreeLevels = map[string]int{
	"doctorat": 8, "phd": 8, "doctorate": 8,
	"master": 7, "ingénieur": 7, "ingenieur": 7, "msc": 7, "mba": 7,
	"licence": 6, "bachelor": 6, "bsc": 6,
	"dut": 5, "bts": 5, "deust": 5, "deug": 5,
	"baccalauréat": 4, "baccalaureat": 4, "bac": 4,
}

// DegreeLevelLabels maps a numeric degree rank to its display label.
var DegreeLevelLabels = map[int]string{
	8: "Bac+8 / Doctorat",
	7: "Bac+5 / Master-Ingénieur",
	6: "Bac+3 / Licence",
	5: "Bac+2 / DUT-BTS",
	4: "Baccalauréat",
}

// LanguageLevels maps proficiency keywords and CEFR codes (lowercased)
// to a 0-5 level. Halves encode in-between CEFR grades.
var LanguageLevels = map[string]float64{
	// Native / bilingual
	"native": 5, "mother tongue": 5, "langue maternelle": 5,
	"bilingue": 5, "bilingual": 5, "c2": 5,
	// Fluent
	"fluent": 4, "couramment": 4, "courant": 4,
	"professional proficiency": 4, "c1": 4,
	"full professional proficiency": 4.5,
	// Upper intermediate
	"b2": 3.5, "upper intermediate": 3.5,
	"intermédiaire avancé": 3.5,
	// Intermediate
	"intermediate": 3, "intermédiaire": 3, "b1": 3,
	// Basic
	"basic": 2, "basique": 2, "notions": 2,
	"scolaire": 2, "a2": 2, "elementary": 2,
	// Beginner
	"beginner": 1, "débutant": 1, "a1": 1,
}

// KnownLanguages maps FR/EN spellings of language names (lowercased) to
// their canonical display name.
var KnownLanguages = map[string]string{
	"français": "Français", "francais": "Français", "french": "Français",
	"anglais": "Anglais", "english": "Anglais",
	"arabe": "Arabe", "arabic": "Arabe",
	"espagnol": "Espagnol", "spanish": "Espagnol", "español": "Espagnol",
	"allemand": "Allemand", "german": "Allemand", "deutsch": "Allemand",
	"italien": "Italien", "italian": "Italien",
	"portugais": "Portugais", "portuguese": "Portugais",
	"chinois": "Chinois", "chinese": "Chinois", "mandarin": "Chinois",
	"japonais": "Japonais", "japanese": "Japonais",
	"russe": "Russe", "russian": "Russe",
	"turc": "Turc", "turkish": "Turc",
	"néerlandais": "Néerlandais", "dutch": "Néerlandais",
	"coréen": "Coréen", "korean": "Coréen",
	"amazigh": "Amazigh", "berbère": "Amazigh", "tamazight": "Amazigh",
	"hindi": "Hindi",
}

// MonthNumbers maps FR/EN month names and abbreviations (lowercased) to
// their calendar number.
var MonthNumbers = map[string]int{
	"jan": 1, "january": 1, "janvier": 1,
	"feb": 2, "february": 2, "fév": 2, "février": 2, "fevrier": 2,
	"mar": 3, "march": 3, "mars": 3,
	"apr": 4, "april": 4, "avr": 4, "avril": 4,
	"may": 5, "mai": 5,
	"jun": 6, "june": 6, "juin": 6,
	"jul": 7, "july": 7, "juil": 7, "juillet": 7,
	"aug": 8, "august": 8, "août": 8, "aout": 8,
	"sep": 9, "sept": 9, "september": 9, "septembre": 9,
	"oct": 10, "october": 10, "octobre": 10,
	"nov": 11, "november": 11, "novembre": 11,
	"dec": 12, "december": 12, "déc": 12, "décembre": 12, "decembre": 12,
}
