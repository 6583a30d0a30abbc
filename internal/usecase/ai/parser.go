package ai

import (
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/kaptinlin/jsonrepair"
)

// ParsedTask holds the raw fields of one task object from a model response.
// Absent or null fields are empty strings.
type ParsedTask struct {
	Task     string
	Assignee string
	Deadline string
	Priority string
	Status   string
}

// ParseResult is either a list of tasks or a malformed response.
// Reason explains why a response was rejected.
type ParseResult struct {
	Tasks     []ParsedTask
	Malformed bool
	Reason    string
}

func malformed(format string, args ...interface{}) ParseResult {
	return ParseResult{Malformed: true, Reason: fmt.Sprintf(format, args...)}
}

// Parser extracts the task array from free-form model output
type Parser struct {
	repair bool
}

// NewParser creates a new Parser. With repair set, a candidate array that fails
// to decode is run through jsonrepair once before it is rejected.
func NewParser(repair bool) *Parser {
	return &Parser{repair: repair}
}

// ParseTasks locates the outermost bracketed span in text and decodes it as an
// array of task objects. Leading and trailing commentary are ignored.
// Non-object elements are skipped, but an array made only of them is malformed.
func (p *Parser) ParseTasks(text string) ParseResult {
	candidate, ok := extractArray(text)
	if !ok {
		return malformed("no JSON array in response")
	}

	var items []interface{}
	if err := jsoniter.UnmarshalFromString(candidate, &items); err != nil {
		if !p.repair {
			return malformed("invalid JSON array: %v", err)
		}
		repaired, rerr := jsonrepair.JSONRepair(candidate)
		if rerr != nil {
			return malformed("invalid JSON array: %v", err)
		}
		items = nil
		if err := jsoniter.UnmarshalFromString(repaired, &items); err != nil {
			return malformed("invalid JSON array after repair: %v", err)
		}
	}

	tasks := make([]ParsedTask, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		tasks = append(tasks, ParsedTask{
			Task:     field(obj, "task"),
			Assignee: field(obj, "assignee"),
			Deadline: field(obj, "deadline"),
			Priority: field(obj, "priority"),
			Status:   field(obj, "status"),
		})
	}
	if len(items) > 0 && len(tasks) == 0 {
		return malformed("array holds no task objects")
	}
	return ParseResult{Tasks: tasks}
}

// extractArray returns the span from the first '[' to the last ']'
func extractArray(text string) (string, bool) {
	start := strings.Index(text, "[")
	end := strings.LastIndex(text, "]")
	if start == -1 || end <= start {
		return "", false
	}
	return text[start : end+1], true
}

func field(obj map[string]interface{}, key string) string {
	switch v := obj[key].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}
