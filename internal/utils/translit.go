package utils

import (
	"strings"
	"unicode"
)

// Ukrainian national romanization (2010). The first table applies at the
// start of a word, the second elsewhere.
var (
	translitInitial = map[rune]string{
		'є': "ye", 'ї': "yi", 'й': "y", 'ю': "yu", 'я': "ya",
	}
	translitTable = map[rune]string{
		'а': "a", 'б': "b", 'в': "v", 'г': "h", 'ґ': "g", 'д': "d", 'е': "e",
		'є': "ie", 'ж': "zh", 'з': "z", 'и': "y", 'і': "i", 'ї': "i", 'й': "i",
		'к': "k", 'л': "l", 'м': "m", 'н': "n", 'о': "o", 'п': "p", 'р': "r",
		'с': "s", 'т': "t", 'у': "u", 'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch",
		'ш': "sh", 'щ': "shch", 'ь': "", 'ю': "iu", 'я': "ia", '\'': "", '’': "",
		'ʼ': "",
	}
)

// Transliterate romanizes Ukrainian text for outputs limited to Latin-1,
// such as PDFs with core fonts. Other characters pass through.
func Transliterate(s string) string {
	var out strings.Builder
	atWordStart := true
	runes := []rune(s)
	for i, r := range runes {
		lower := unicode.ToLower(r)
		rep, ok := "", false
		if atWordStart {
			rep, ok = translitInitial[lower]
		}
		if !ok {
			rep, ok = translitTable[lower]
		}
		if !ok {
			out.WriteRune(r)
			atWordStart = !unicode.IsLetter(r)
			continue
		}
		// "зг" is written "zgh" to tell it apart from "ж".
		if lower == 'г' && i > 0 && unicode.ToLower(runes[i-1]) == 'з' {
			rep = "gh"
		}
		if unicode.IsUpper(r) && rep != "" {
			upperNext := i+1 < len(runes) && unicode.IsUpper(runes[i+1])
			if upperNext || len(runes) == 1 {
				rep = strings.ToUpper(rep)
			} else {
				rep = strings.ToUpper(rep[:1]) + rep[1:]
			}
		}
		out.WriteString(rep)
		atWordStart = false
	}
	return out.String()
}
