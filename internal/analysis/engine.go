package analysis

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/kimjw-dev/moodlens-backend/internal/pkg/logger"
	"github.com/kimjw-dev/moodlens-backend/internal/types"
)

// Config tunes the scoring engine. Defaults match the values the keyword
// tables were calibrated with.
type Config struct {
	// DecayLambda is the per-day exponential decay rate for recency weighting.
	DecayLambda float64
	// LikedWeight multiplies keyword hits on liked-video titles, which signal
	// stronger engagement than a subscription.
	LikedWeight float64
}

func DefaultConfig() Config {
	return Config{
		DecayLambda: 0.1,
		LikedWeight: 1.5,
	}
}

// Engine turns collected records into emotion, interest and fatigue signals
// and fuses them into one overall state. It is pure computation; all external
// calls happen before data reaches it.
type Engine struct {
	cfg Config
	log *logger.Logger
	now func() time.Time
}

func NewEngine(cfg Config, log *logger.Logger) *Engine {
	if cfg.DecayLambda <= 0 {
		cfg.DecayLambda = DefaultConfig().DecayLambda
	}
	if cfg.LikedWeight <= 0 {
		cfg.LikedWeight = DefaultConfig().LikedWeight
	}
	engineLog := log.With("service", "AnalysisEngine")
	return &Engine{cfg: cfg, log: engineLog, now: time.Now}
}

// AnalyzeYouTube scores subscriptions and liked videos against the keyword
// tables with recency decay. Liked videos contribute to emotion categories
// only; interest categories are read from subscriptions alone.
func (e *Engine) AnalyzeYouTube(data types.YouTubeData) types.YouTubeAnalysis {
	emotions := map[string]float64{EmotionPositive: 0, EmotionNegative: 0, EmotionNeutral: 0}
	interests := map[string]float64{
		InterestEntertainment: 0, InterestLifestyle: 0, InterestEducation: 0, InterestSocial: 0,
	}

	for _, sub := range data.Subscriptions {
		name := strings.ToLower(sub.ChannelName)
		weight := e.timeWeight(sub.SubscribedAt)
		accumulateMatches(emotions, emotionKeywords, name, weight)
		accumulateMatches(interests, interestKeywords, name, weight)
	}

	for _, video := range data.LikedVideos {
		title := strings.ToLower(video.Title)
		weight := e.timeWeight(video.PublishedAt) * e.cfg.LikedWeight
		accumulateMatches(emotions, emotionKeywords, title, weight)
	}

	normalize(emotions)
	normalize(interests)

	result := types.YouTubeAnalysis{
		EmotionScores: types.EmotionScores{
			Positive: emotions[EmotionPositive],
			Negative: emotions[EmotionNegative],
			Neutral:  emotions[EmotionNeutral],
		},
		Interests: types.InterestScores{
			Entertainment: interests[InterestEntertainment],
			Lifestyle:     interests[InterestLifestyle],
			Education:     interests[InterestEducation],
			Social:        interests[InterestSocial],
		},
		TotalChannels: len(data.Subscriptions),
		TotalLiked:    len(data.LikedVideos),
	}
	e.log.Debug("YouTube analysis complete",
		"positive", result.EmotionScores.Positive,
		"negative", result.EmotionScores.Negative,
		"neutral", result.EmotionScores.Neutral,
		"channels", result.TotalChannels,
		"liked", result.TotalLiked)
	return result
}

// AnalyzeCalendar derives the fatigue index from event density, peak-day load
// and the share of night events. An empty event list yields a zero index.
func (e *Engine) AnalyzeCalendar(data types.CalendarData) types.CalendarAnalysis {
	if len(data.Events) == 0 {
		return types.CalendarAnalysis{FatigueIndex: 0, StressLevel: types.StressLow}
	}

	dailyCounts := map[string]int{}
	var dist types.TimeDistribution
	for _, event := range data.Events {
		dailyCounts[event.StartDate]++
		bucketTimedEvent(&dist, event.StartTime)
	}

	maxDaily := 0
	for _, n := range dailyCounts {
		if n > maxDaily {
			maxDaily = n
		}
	}

	density := float64(len(data.Events)) / float64(len(dailyCounts))
	// Not capped: more than 10 events on one day pushes the term past 1.
	gap := float64(maxDaily) / 10.0
	timed := dist.Morning + dist.Afternoon + dist.Evening + dist.Night
	nightRatio := 0.0
	if timed > 0 {
		nightRatio = float64(dist.Night) / float64(timed)
	}

	index := 0.5*density + 0.3*gap + 0.2*nightRatio

	level := types.StressLow
	switch {
	case index > 2.0:
		level = types.StressHigh
	case index > 1.0:
		level = types.StressMedium
	}

	result := types.CalendarAnalysis{
		FatigueIndex:     index,
		StressLevel:      level,
		DailyCounts:      dailyCounts,
		TimeDistribution: dist,
		MaxDailyEvents:   maxDaily,
	}
	e.log.Debug("Calendar analysis complete",
		"fatigue_index", index,
		"stress_level", level,
		"night_events", dist.Night)
	return result
}

// stressImpact is the fixed penalty each stress level applies to the fused score.
var stressImpact = map[string]float64{
	types.StressLow:    0.1,
	types.StressMedium: 0.3,
	types.StressHigh:   0.5,
}

// OverallEmotion fuses the YouTube emotion split with calendar stress into one
// labeled state with recommendations. The score is not clamped; the outer
// bands absorb out-of-range values.
func (e *Engine) OverallEmotion(yt types.YouTubeAnalysis, cal types.CalendarAnalysis) types.OverallEmotion {
	base := yt.EmotionScores.Positive - yt.EmotionScores.Negative
	adjusted := base - stressImpact[cal.StressLevel]

	var state, emoji string
	switch {
	case adjusted > 0.3:
		state, emoji = "매우 긍정적", "😊"
	case adjusted > 0.1:
		state, emoji = "긍정적", "🙂"
	case adjusted >= -0.1:
		// Inclusive lower edge: zero signal minus the low-stress penalty lands
		// exactly on -0.1 and must still read as neutral.
		state, emoji = "보통", "😐"
	case adjusted > -0.3:
		state, emoji = "다소 부정적", "😔"
	default:
		state, emoji = "부정적", "😞"
	}

	top := topInterest(yt.Interests)

	result := types.OverallEmotion{
		EmotionScore:    adjusted,
		EmotionState:    state,
		MoodEmoji:       emoji,
		TopInterest:     top,
		Recommendations: recommendations(state, cal.StressLevel, top),
	}
	e.log.Debug("Overall emotion computed",
		"emotion_score", adjusted,
		"emotion_state", state,
		"top_interest", top)
	return result
}

// timeWeight is exp(-lambda * daysAgo) with daysAgo floored at zero.
// Unparseable dates count as today, so bad input never zeroes a record.
func (e *Engine) timeWeight(dateStr string) float64 {
	return math.Exp(-e.cfg.DecayLambda * float64(e.daysAgo(dateStr)))
}

func (e *Engine) daysAgo(dateStr string) int {
	parsed, err := parseRecordDate(dateStr)
	if err != nil {
		return 0
	}
	days := int(e.now().Sub(parsed).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

func parseRecordDate(dateStr string) (time.Time, error) {
	if len(dateStr) == 10 {
		return time.Parse("2006-01-02", dateStr)
	}
	return time.Parse(time.RFC3339, dateStr)
}

func accumulateMatches(acc map[string]float64, table map[string][]string, text string, weight float64) {
	for category, keywords := range table {
		for _, keyword := range keywords {
			if strings.Contains(text, keyword) {
				acc[category] += weight
			}
		}
	}
}

// normalize scales acc so its values sum to 1, leaving all zeros untouched.
func normalize(acc map[string]float64) {
	total := 0.0
	for _, v := range acc {
		total += v
	}
	if total == 0 {
		return
	}
	for k, v := range acc {
		acc[k] = v / total
	}
}

func bucketTimedEvent(dist *types.TimeDistribution, startTime string) {
	if startTime == types.AllDay || !strings.Contains(startTime, ":") {
		return
	}
	hour, err := strconv.Atoi(strings.SplitN(startTime, ":", 2)[0])
	if err != nil {
		return
	}
	switch {
	case hour >= 6 && hour < 12:
		dist.Morning++
	case hour >= 12 && hour < 18:
		dist.Afternoon++
	case hour >= 18 && hour < 22:
		dist.Evening++
	default:
		dist.Night++
	}
}

func topInterest(scores types.InterestScores) string {
	values := map[string]float64{
		InterestEntertainment: scores.Entertainment,
		InterestLifestyle:     scores.Lifestyle,
		InterestEducation:     scores.Education,
		InterestSocial:        scores.Social,
	}
	best := interestOrder[0]
	for _, category := range interestOrder[1:] {
		if values[category] > values[best] {
			best = category
		}
	}
	return best
}

func recommendations(state, stressLevel, interest string) []string {
	recs := []string{}
	if stressLevel == types.StressHigh {
		recs = append(recs, "😌 휴식이 필요한 시간입니다. 잠시 일정을 조정해보세요.")
	}
	if strings.Contains(state, "부정적") {
		switch interest {
		case InterestEntertainment:
			recs = append(recs, "🎬 좋아하는 영화나 음악으로 기분 전환을 해보세요.")
		case InterestLifestyle:
			recs = append(recs, "🧘 힐링센터나 운동으로 스트레스를 풀어보세요.")
		}
	}
	if state == "매우 긍정적" {
		recs = append(recs, "✨ 좋은 컨디션이네요! 새로운 도전을 해보는 것도 좋겠어요.")
	}
	return recs
}
