// Package insights maps free-text queries to a topic label via a flat,
// static keyword lookup and serves the canned strategic advice for it.
// No scoring is involved: the first matching keyword group wins.
package insights

import "strings"

// TopicFor returns the topic label for a query. Matching is naive substring
// containment over the lowercased query; the fallback is TopicBusinessModel.
func TopicFor(query string) string {
	lower := strings.ToLower(query)
	for _, group := range topicKeywords {
		for _, kw := range group.keywords {
			if strings.Contains(lower, kw) {
				return group.topic
			}
		}
	}
	return TopicBusinessModel
}

// InsightsFor returns the strategic insights for the query's topic.
func InsightsFor(query string) []string {
	return insightsByTopic[TopicFor(query)]
}

// NextStepsFor returns the next-step suggestions for the query's topic.
func NextStepsFor(query string) []string {
	return nextStepsByTopic[TopicFor(query)]
}
