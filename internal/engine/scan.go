package engine

import "bytes"

// ExtractSpan isolates the minimal balanced JSON-like span inside a noisy
// buffer. Bracket depth is tracked with string awareness so quoted brackets
// never count; a span that stays open runs to end-of-buffer and relies on the
// parser's auto-close recovery. Without any opening bracket the trimmed buffer
// is returned whole for a scalar-only parse attempt.
func ExtractSpan(data []byte) []byte {
	data = stripFences(data)
	start := bytes.IndexAny(data, "{[")
	if start < 0 {
		return bytes.TrimSpace(data)
	}
	depth := 0
	inString := false
	escaped := false
	var quote byte
	for i := start; i < len(data); i++ {
		c := data[i]
		if escaped {
			escaped = false
			continue
		}
		if inString {
			switch c {
			case '\\':
				escaped = true
			case quote:
				inString = false
			}
			continue
		}
		switch c {
		case '"', '\'':
			inString = true
			quote = c
		case '{', '[':
			depth++
		case '}', ']':
			depth--
			if depth <= 0 {
				return data[start : i+1]
			}
		}
	}
	return data[start:]
}

// stripFences removes a markdown code fence (``` or ```json) wrapping the
// buffer, a framing pattern models add around structured output.
func stripFences(data []byte) []byte {
	data = bytes.TrimSpace(data)
	if !bytes.HasPrefix(data, []byte("```")) {
		return data
	}
	if nl := bytes.IndexByte(data, '\n'); nl >= 0 {
		data = data[nl+1:]
	} else {
		return nil
	}
	if end := bytes.LastIndex(data, []byte("```")); end >= 0 {
		data = data[:end]
	}
	return bytes.TrimSpace(data)
}
