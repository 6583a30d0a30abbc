package ai

import (
	"context"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/johnquangdev/meeting-summarizer/internal/domain/entities"
)

const (
	minSentenceLength = 10
	maxFallbackPoints = 5
)

var (
	sentenceSplitter = regexp.MustCompile(`[.!?]+`)

	taskKeywords = []string{
		"need to", "should", "must", "have to", "action item",
		"todo", "task", "will", "going to", "plan to",
	}

	taskPrefix = regexp.MustCompile(`(?i)^(?:(?:we|i|you|they) (?:need to|should|must|will|plan to)|(?:we're|i'm|you're|they're) going to)\b`)
)

// LocalSummarizer is the deterministic extractive summarizer. It never fails.
type LocalSummarizer struct{}

// Summarize picks the first two, the middle two and the last two sentences of
// transcript, drops repeats and keeps at most five. The result is empty when no
// sentence is at least ten characters long.
func (LocalSummarizer) Summarize(_ context.Context, transcript string) ([]string, error) {
	return SummarizeLocally(transcript), nil
}

// SummarizeLocally is the pure form of LocalSummarizer.Summarize.
func SummarizeLocally(transcript string) []string {
	var sentences []string
	for _, s := range sentenceSplitter.Split(transcript, -1) {
		s = strings.TrimSpace(s)
		if utf8.RuneCountInString(s) >= minSentenceLength {
			sentences = append(sentences, s)
		}
	}
	if len(sentences) == 0 {
		return []string{}
	}

	mid := len(sentences) / 2
	picked := make([]string, 0, 6)
	picked = append(picked, sentences[:min(2, len(sentences))]...)
	picked = append(picked, sentences[mid:min(mid+2, len(sentences))]...)
	picked = append(picked, sentences[max(0, len(sentences)-2):]...)

	seen := make(map[string]struct{}, len(picked))
	points := make([]string, 0, maxFallbackPoints)
	for _, s := range picked {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		points = append(points, s+".")
		if len(points) == maxFallbackPoints {
			break
		}
	}
	return points
}

// LocalTaskExtractor turns summary points containing an obligation keyword into
// tasks. It never fails.
type LocalTaskExtractor struct{}

func (LocalTaskExtractor) ExtractTasks(_ context.Context, summary []string, _ string) ([]entities.TaskDraft, error) {
	return ExtractTasksLocally(summary), nil
}

// ExtractTasksLocally returns one draft per matching point, in order, or the
// single default draft when nothing matches. Deadlines are never set.
func ExtractTasksLocally(summary []string) []entities.TaskDraft {
	var tasks []entities.TaskDraft
	for _, point := range summary {
		if !hasTaskKeyword(point) {
			continue
		}
		draft, ok := entities.NewTaskDraft(taskDescription(point), entities.AssigneeNotSpecified, nil, string(entities.TaskPriorityMedium))
		if ok {
			tasks = append(tasks, draft)
		}
	}

	if len(tasks) == 0 {
		return []entities.TaskDraft{entities.DefaultTaskDraft()}
	}
	return tasks
}

func hasTaskKeyword(point string) bool {
	lower := strings.ToLower(point)
	for _, kw := range taskKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// taskDescription strips a leading "we need to" style prefix and capitalizes the rest.
func taskDescription(point string) string {
	original := strings.TrimSpace(point)
	desc := strings.TrimSpace(taskPrefix.ReplaceAllString(original, ""))
	if desc == "" {
		desc = original
	}

	r, size := utf8.DecodeRuneInString(desc)
	if r == utf8.RuneError {
		return desc
	}
	return string(unicode.ToUpper(r)) + desc[size:]
}
