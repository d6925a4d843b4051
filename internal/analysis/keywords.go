package analysis

// Emotion and interest keyword tables. These are static configuration tuned
// against real collected channel/video titles, not a learned model. Matching
// is case-insensitive substring containment, and every matching keyword adds
// its weight independently (a title hitting two keywords counts twice).

const (
	EmotionPositive = "positive"
	EmotionNegative = "negative"
	EmotionNeutral  = "neutral"
)

const (
	InterestEntertainment = "entertainment"
	InterestLifestyle     = "lifestyle"
	InterestEducation     = "education"
	InterestSocial        = "social"
)

var emotionKeywords = map[string][]string{
	EmotionPositive: {
		"힐링", "치유", "행복", "즐거", "웃음", "재미", "놀이", "게임", "음악", "재즈", "jazz",
		"영화", "리뷰", "찐뷰", "네고막", "책임", "연습", "베이스",
	},
	EmotionNegative: {
		"스트레스", "피곤", "힘들", "우울", "불안", "걱정", "급", "재해",
	},
	EmotionNeutral: {
		"정보", "뉴스", "공부", "학습", "회의", "센터", "풋살",
	},
}

var interestKeywords = map[string][]string{
	InterestEntertainment: {"영화", "리뷰", "게임", "음악", "재즈", "jazz", "찐뷰", "네고막", "애니"},
	InterestLifestyle:     {"힐링", "센터", "연습", "풋살", "베이스", "강남"},
	InterestEducation:     {"공부", "학습", "정보", "책임"},
	InterestSocial:        {"모임", "회의", "만남", "앱"},
}

// interestOrder fixes the argmax tie break: first max wins in this order.
var interestOrder = []string{
	InterestEntertainment,
	InterestLifestyle,
	InterestEducation,
	InterestSocial,
}
