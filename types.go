package main

import (
	"github.com/go-json-experiment/json/jsontext"
)

// SessionEntry represents a single line in the session JSONL file.
// Claude Code writes the nested form {"type": ..., "message": {"role", "content"}},
// while flat-format logs carry role and content at the top level. Message is
// kept raw because it is only honored when it is an object; any other shape
// falls back to the top-level fields. IsError is kept raw because the flag is
// tested for truthiness, not decoded as a strict bool.
type SessionEntry struct {
	Type      string         `json:"type"`
	Message   jsontext.Value `json:"message"`
	Role      string         `json:"role"`
	Content   jsontext.Value `json:"content"`
	ToolUseID string         `json:"tool_use_id"`
	IsError   jsontext.Value `json:"is_error"`
}

// EntryMessage is the nested message payload of a session entry.
type EntryMessage struct {
	Role    string         `json:"role"`
	Content jsontext.Value `json:"content"`
}

// ContentKind discriminates the shapes a message content field takes on the wire.
type ContentKind int

const (
	ContentEmpty  ContentKind = iota // absent or an unrecognized shape
	ContentText                      // one plain string
	ContentBlocks                    // ordered list of content blocks
)

// MessageContent is the decoded form of a message's polymorphic content field.
type MessageContent struct {
	Kind   ContentKind
	Text   string         // set when Kind == ContentText
	Blocks []ContentBlock // set when Kind == ContentBlocks
}

// ContentBlock is one element of a block-list content value. Bare string
// elements decode as text blocks; objects are tagged by their type field.
type ContentBlock struct {
	Type  string         `json:"type"`
	Text  string         `json:"text"`
	Name  string         `json:"name"`
	Input jsontext.Value `json:"input"`
}

// ToolUse describes one tool invocation issued by the assistant.
type ToolUse struct {
	Name  string
	Input jsontext.Value
}

// ToolResult describes the outcome reported for one tool invocation.
type ToolResult struct {
	ToolUseID string
	Content   jsontext.Value
}

// Aggregate collects the typed buckets extracted from one session log.
// Every bucket is append-only during a run; slice order matches log order.
// Errors is the subset of ToolResults flagged as errors, so
// len(Errors) <= len(ToolResults) always holds.
type Aggregate struct {
	UserMessages      []string
	AssistantMessages []string
	ToolUses          []ToolUse
	ToolResults       []ToolResult
	Errors            []ToolResult
}
