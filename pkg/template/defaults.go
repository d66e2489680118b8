package template

import "strings"

// DefaultSenderName is used to sign few-shot examples and the prompt's
// closing instruction when the caller does not configure a sender name.
const DefaultSenderName = "Alex"

// Built-in template keys.
const (
	KeyLeaveRequest   = "leave_request"
	KeyMeetingRequest = "meeting_request"
	KeyTaskUpdate     = "task_update"
)

var builtinDefinitions = []Definition{
	{
		Key:          KeyLeaveRequest,
		Instruction:  "Using the professional email format shown in the examples, write a short, 2-4 line email requesting one day of leave tomorrow. Keep it polite and concise.",
		Placeholders: []string{"reason", "date"},
	},
	{
		Key:          KeyMeetingRequest,
		Instruction:  "Using the professional email format shown in the examples, write an email requesting to schedule a meeting to discuss project progress. Suggest two time slots.",
		Placeholders: []string{"timeslots"},
	},
	{
		Key:          KeyTaskUpdate,
		Instruction:  "Using the professional email format shown in the examples, write a short update informing that the assigned task is complete and attachments were shared.",
		Placeholders: nil,
	},
}

// DefaultExamples returns the fixed few-shot example set, signed with the
// given sender first name. The set is constructed per call so callers
// cannot mutate shared state.
func DefaultExamples(senderName string) []Example {
	name := strings.TrimSpace(senderName)
	if name == "" {
		name = DefaultSenderName
	}
	return []Example{
		{
			Subject: "Request for Meeting",
			Message: "I hope you're doing well. I would like to schedule a meeting tomorrow to discuss the progress of our current project.\n\nRegards,\n" + name,
		},
		{
			Subject: "Update on Task",
			Message: "This is to inform you that I have completed the assigned task and shared the required documents.\n\nRegards,\n" + name,
		},
	}
}
