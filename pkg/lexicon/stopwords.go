package lexicon

var englishStopWords = toSet(
	"a", "about", "above", "after", "again", "against", "all", "am", "an", "and", "any", "are",
	"as", "at", "be", "because", "been", "before", "being", "below", "between", "both", "but",
	"by", "can", "could", "did", "do", "does", "doing", "down", "during", "each", "few", "for",
	"from", "further", "had", "has", "have", "having", "he", "her", "here", "hers", "herself",
	"him", "himself", "his", "how", "i", "if", "in", "into", "is", "it", "its", "itself", "just",
	"me", "more", "most", "my", "myself", "no", "nor", "not", "now", "of", "off", "on", "once",
	"only", "or", "other", "our", "ours", "ourselves", "out", "over", "own", "same", "she",
	"should", "so", "some", "such", "than", "that", "the", "their", "theirs", "them",
	"themselves", "then", "there", "these", "they", "this", "those", "through", "to", "too",
	"under", "until", "up", "very", "was", "we", "were", "what", "when", "where", "which",
	"while", "who", "whom", "why", "will", "with", "would", "you", "your", "yours", "yourself",
	"yourselves", "also", "may", "might", "must", "shall", "yes", "yet", "s", "t", "don",
	"isn", "aren", "wasn", "weren", "won", "didn", "doesn", "ll", "re", "ve", "d", "m",
)

// japaneseStopWords are base forms too common or too grammatical to learn.
var japaneseStopWords = toSet(
	"する", "いる", "ある", "なる", "れる", "られる", "せる", "させる", "できる", "くる", "いく",
	"こと", "もの", "ところ", "とき", "よう", "ため", "それ", "これ", "あれ", "どれ", "そう",
	"この", "その", "あの", "どの", "ここ", "そこ", "あそこ", "私", "僕", "俺", "あなた", "彼", "彼女",
	"さん", "くん", "ちゃん", "ない", "いい", "よい", "てる", "ん", "の",
)

func toSet(words ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
