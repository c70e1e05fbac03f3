package main

import (
	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// effectiveMessage resolves the flat-vs-nested log format in one place: a
// message field that is itself a mapping wins; any other shape (absent,
// string, list) falls back to the top-level role and content. A mapping that
// does not decode classifies as nothing rather than falling through.
func effectiveMessage(entry SessionEntry) (role string, content jsontext.Value) {
	if len(entry.Message) > 0 && entry.Message.Kind() == '{' {
		var msg EntryMessage
		if err := json.Unmarshal(entry.Message, &msg); err != nil {
			return "", nil
		}
		return msg.Role, msg.Content
	}
	return entry.Role, entry.Content
}

// isTruthy reports whether a raw JSON value is truthy in the loose sense the
// log format uses for is_error: absent, null, false, zero, empty strings and
// empty composites are falsy, everything else is truthy.
func isTruthy(v jsontext.Value) bool {
	if len(v) == 0 {
		return false
	}
	switch v.Kind() {
	case 't':
		return true
	case '0':
		var f float64
		if err := json.Unmarshal(v, &f); err != nil {
			return false
		}
		return f != 0
	case '"':
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return false
		}
		return s != ""
	case '[':
		var elems []jsontext.Value
		if err := json.Unmarshal(v, &elems); err != nil {
			return false
		}
		return len(elems) > 0
	case '{':
		var fields map[string]jsontext.Value
		if err := json.Unmarshal(v, &fields); err != nil {
			return false
		}
		return len(fields) > 0
	}
	return false // null and false
}

// decodeContent narrows a raw content value to the MessageContent union.
// Bare string elements inside a block list become text blocks; elements of
// any other shape are dropped. Decode failures yield ContentEmpty rather
// than an error.
func decodeContent(raw jsontext.Value) MessageContent {
	if len(raw) == 0 {
		return MessageContent{}
	}

	switch raw.Kind() {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return MessageContent{}
		}
		return MessageContent{Kind: ContentText, Text: s}

	case '[':
		var elems []jsontext.Value
		if err := json.Unmarshal(raw, &elems); err != nil {
			return MessageContent{}
		}
		blocks := make([]ContentBlock, 0, len(elems))
		for _, el := range elems {
			switch el.Kind() {
			case '"':
				var s string
				if err := json.Unmarshal(el, &s); err != nil {
					continue
				}
				blocks = append(blocks, ContentBlock{Type: "text", Text: s})
			case '{':
				var b ContentBlock
				if err := json.Unmarshal(el, &b); err != nil {
					continue
				}
				blocks = append(blocks, b)
			}
		}
		return MessageContent{Kind: ContentBlocks, Blocks: blocks}
	}

	return MessageContent{}
}

// ExtractSummary walks the decoded entries and buckets them by role and type.
// It is pure with respect to its input: no I/O, no mutation of entries.
func ExtractSummary(entries []SessionEntry) *Aggregate {
	agg := &Aggregate{}

	for _, entry := range entries {
		role, rawContent := effectiveMessage(entry)
		content := decodeContent(rawContent)

		// ContentEmpty buckets nothing: a role entry whose content is
		// absent or unshaped contributes no exchange.
		switch role {
		case "user":
			switch content.Kind {
			case ContentText:
				agg.UserMessages = append(agg.UserMessages, content.Text)
			case ContentBlocks:
				for _, b := range content.Blocks {
					if b.Type == "text" {
						agg.UserMessages = append(agg.UserMessages, b.Text)
					}
				}
			}

		case "assistant":
			switch content.Kind {
			case ContentText:
				agg.AssistantMessages = append(agg.AssistantMessages, content.Text)
			case ContentBlocks:
				for _, b := range content.Blocks {
					switch b.Type {
					case "text":
						agg.AssistantMessages = append(agg.AssistantMessages, b.Text)
					case "tool_use":
						agg.ToolUses = append(agg.ToolUses, ToolUse{Name: b.Name, Input: b.Input})
					}
				}
			}
		}

		// Tool results live at the entry level, independent of the role branch.
		if entry.Type == "tool_result" {
			result := ToolResult{ToolUseID: entry.ToolUseID, Content: entry.Content}
			if isTruthy(entry.IsError) {
				agg.Errors = append(agg.Errors, result)
			}
			agg.ToolResults = append(agg.ToolResults, result)
		}
	}

	return agg
}
