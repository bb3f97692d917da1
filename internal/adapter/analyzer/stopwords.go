package analyzer

// DefaultStopwords returns the built-in multilingual stopword set:
// common English function words, Japanese particles and auxiliaries,
// and punctuation/symbol strings that survive segmentation as whole
// segments. The empty string is a member so that candidates normalized
// away to nothing are always rejected. Membership is exact-string
// against already-lowercased input. Callers own the returned map and
// may extend it before handing it to a Pipeline.
func DefaultStopwords() map[string]struct{} {
	stops := []string{
		// English function words.
		"a", "an", "and", "are", "as", "at", "be", "by", "for",
		"from", "has", "he", "in", "is", "it", "its", "of", "on",
		"that", "the", "to", "was", "were", "will", "with", "this",
		"have", "had", "but", "not", "you", "your", "we", "our",
		"they", "their", "she", "her", "his", "if", "or", "so",
		"no", "can", "do", "does", "did", "been", "being", "would",
		"could", "should", "may", "might", "must", "shall", "which",
		"who", "whom", "what", "when", "where", "why", "how", "all",
		"each", "every", "both", "few", "more", "most", "other",
		"some", "such", "than", "too", "very", "just", "also",

		// Japanese particles, copulas and auxiliaries.
		"の", "に", "は", "を", "が", "で", "て", "と", "も", "へ",
		"や", "か", "な", "ね", "よ", "ず", "ば", "から", "まで",
		"より", "など", "ながら", "だ", "です", "ます", "ました",
		"でした", "ない", "ある", "いる", "する", "した", "して",
		"なる", "なり", "れる", "られる", "こと", "もの", "これ",
		"それ", "あれ", "この", "その", "あの", "ここ", "そこ",
		"どこ", "ため", "よう", "そして", "しかし", "また",
		"という", "といった", "について", "として", "において",
		"による", "により", "に対して", "および", "または",

		// Punctuation and symbol strings that some segmenters emit as
		// standalone segments.
		"。", "、", "・", "「", "」", "『", "』", "（", "）",
		"！", "？", "…", "ー", "～",
		"--", "...", "''", "``",

		// Rejected candidates normalize to ""; keep it a member as a
		// second line of defense behind the length check.
		"",
	}
	m := make(map[string]struct{}, len(stops))
	for _, s := range stops {
		m[s] = struct{}{}
	}
	return m
}

// DefaultIgnoreChars returns the built-in ignore-character set, applied
// after the Unicode punctuation-category pass. Several entries
// (backtick, pipe, tilde, caret, angle brackets, equals, plus, dollar)
// are Symbol category rather than Punctuation, so this pass is the one
// that removes them; the rest overlap the category pass on purpose.
func DefaultIgnoreChars() map[rune]struct{} {
	chars := []rune{
		'`', '|', '~', '^', '<', '>', '=', '+', '$',
		'#', '@', '%', '&', '*', '\\', '/',
		'-', '_', '"', '\'',
		'。', '、', '・', '「', '」', '￥',
	}
	m := make(map[rune]struct{}, len(chars))
	for _, r := range chars {
		m[r] = struct{}{}
	}
	return m
}
