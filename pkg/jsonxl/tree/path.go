package tree

// PathSeparator joins the segments of a root-to-leaf path into a column
// name. Array indices and object keys are both plain segments.
const PathSeparator = "."

// JoinPath appends a segment to a path prefix. Either side may be empty.
func JoinPath(prefix, segment string) string {
	if prefix == "" {
		return segment
	}
	if segment == "" {
		return prefix
	}
	return prefix + PathSeparator + segment
}
