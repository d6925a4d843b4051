package services

import (
	"fmt"

	"github.com/kimjw-dev/moodlens-backend/internal/analysis"
	"github.com/kimjw-dev/moodlens-backend/internal/types"
)

// buildFeedback turns one finished analysis into the personalized feedback
// block: the rule-table recommendations plus trend, interest and schedule
// advice layered on top.
func buildFeedback(record *types.AnalysisRecord) types.Feedback {
	overall := record.OverallEmotion
	calendar := record.CalendarAnalysis

	feedback := types.Feedback{
		CurrentState:    overall.EmotionState,
		Recommendations: append([]string{}, overall.Recommendations...),
		Insights:        []string{},
		ActionItems:     []string{},
	}

	if record.Trend != nil {
		switch record.Trend.EmotionTrend {
		case types.TrendDown:
			feedback.Recommendations = append(feedback.Recommendations,
				"😔 최근 감정이 하락 추세입니다. 스트레스 관리에 더 신경써보세요.")
			feedback.ActionItems = append(feedback.ActionItems, "이번 주 휴식 시간을 늘려보세요")
		case types.TrendUp:
			feedback.Recommendations = append(feedback.Recommendations,
				"😊 감정이 좋아지고 있어요! 현재 패턴을 유지해보세요.")
			feedback.ActionItems = append(feedback.ActionItems, "현재의 긍정적 활동들을 계속 이어가세요")
		}
	}

	if overall.TopInterest == analysis.InterestEntertainment {
		if calendar.StressLevel == types.StressHigh {
			feedback.ActionItems = append(feedback.ActionItems, "좋아하는 음악이나 영화로 스트레스를 풀어보세요")
		} else {
			feedback.ActionItems = append(feedback.ActionItems, "새로운 엔터테인먼트 콘텐츠를 탐색해보세요")
		}
	}

	if record.YouTubeAnalysis.EmotionScores.Positive > 0.7 {
		feedback.Insights = append(feedback.Insights,
			fmt.Sprintf("🎯 관심사가 긍정적이에요! %s 분야에서 더 많은 활동을 추천합니다.", overall.TopInterest))
	}

	if calendar.FatigueIndex > 1.5 {
		feedback.Insights = append(feedback.Insights,
			fmt.Sprintf("📅 일정이 다소 빡빡해요. 피로도 지수: %.1f", calendar.FatigueIndex))
	} else {
		feedback.Insights = append(feedback.Insights, "📅 일정 관리가 잘 되고 있어요!")
	}

	return feedback
}
