package confusables

// defaultMap is the built-in confusable skeleton.
// Targets are always lowercase latin; the normalizer case-folds after
// substitution so uppercase sources still need their own entries.
// Replacements must themselves be fixed points of the table or repeated
// normalization would drift
var defaultMap = map[rune]string{
	// Cyrillic lookalikes
	'а': "a", // а CYRILLIC SMALL A
	'А': "a", // А CYRILLIC CAPITAL A
	'е': "e", // е CYRILLIC SMALL IE
	'Е': "e", // Е CYRILLIC CAPITAL IE
	'о': "o", // о CYRILLIC SMALL O
	'О': "o", // О CYRILLIC CAPITAL O
	'р': "p", // р CYRILLIC SMALL ER
	'Р': "p", // Р CYRILLIC CAPITAL ER
	'с': "c", // с CYRILLIC SMALL ES
	'С': "c", // С CYRILLIC CAPITAL ES
	'у': "y", // у CYRILLIC SMALL U
	'У': "y", // У CYRILLIC CAPITAL U
	'х': "x", // х CYRILLIC SMALL HA
	'Х': "x", // Х CYRILLIC CAPITAL HA
	'к': "k", // к CYRILLIC SMALL KA
	'К': "k", // К CYRILLIC CAPITAL KA
	'м': "m", // м CYRILLIC SMALL EM
	'М': "m", // М CYRILLIC CAPITAL EM
	'т': "t", // т CYRILLIC SMALL TE
	'Т': "t", // Т CYRILLIC CAPITAL TE
	'н': "h", // н CYRILLIC SMALL EN
	'Н': "h", // Н CYRILLIC CAPITAL EN
	'в': "b", // в CYRILLIC SMALL VE
	'В': "b", // В CYRILLIC CAPITAL VE
	'ѕ': "s", // ѕ CYRILLIC SMALL DZE
	'Ѕ': "s", // Ѕ CYRILLIC CAPITAL DZE
	'і': "i", // і CYRILLIC SMALL BYELORUSSIAN-UKRAINIAN I
	'І': "i", // І CYRILLIC CAPITAL BYELORUSSIAN-UKRAINIAN I
	'ј': "j", // ј CYRILLIC SMALL JE
	'Ј': "j", // Ј CYRILLIC CAPITAL JE
	'ԁ': "d", // ԁ CYRILLIC SMALL KOMI DE

	// Greek lookalikes
	'α': "a", // α GREEK SMALL ALPHA
	'Α': "a", // Α GREEK CAPITAL ALPHA
	'ο': "o", // ο GREEK SMALL OMICRON
	'Ο': "o", // Ο GREEK CAPITAL OMICRON
	'ν': "v", // ν GREEK SMALL NU
	'ρ': "p", // ρ GREEK SMALL RHO
	'Ρ': "p", // Ρ GREEK CAPITAL RHO
	'τ': "t", // τ GREEK SMALL TAU
	'υ': "u", // υ GREEK SMALL UPSILON
	'κ': "k", // κ GREEK SMALL KAPPA
	'Κ': "k", // Κ GREEK CAPITAL KAPPA
	'ι': "i", // ι GREEK SMALL IOTA
	'Ι': "i", // Ι GREEK CAPITAL IOTA
	'ε': "e", // ε GREEK SMALL EPSILON
	'Ε': "e", // Ε GREEK CAPITAL EPSILON
	'Ζ': "z", // Ζ GREEK CAPITAL ZETA
	'Β': "b", // Β GREEK CAPITAL BETA
	'Η': "h", // Η GREEK CAPITAL ETA
	'Μ': "m", // Μ GREEK CAPITAL MU
	'Ν': "n", // Ν GREEK CAPITAL NU
	'Τ': "t", // Τ GREEK CAPITAL TAU
	'Υ': "y", // Υ GREEK CAPITAL UPSILON
	'Χ': "x", // Χ GREEK CAPITAL CHI

	// Latin-ish extras
	'ı': "i", // ı LATIN SMALL DOTLESS I
	'ɑ': "a", // ɑ LATIN SMALL ALPHA
	'ɡ': "g", // ɡ LATIN SMALL SCRIPT G
	'ß': "ss",

	// Leet
	'4': "a",
	'@': "a",
	'0': "o",
	'1': "i",
	'!': "i",
	'3': "e",
	'5': "s",
	'$': "s",
	'7': "t",
}
