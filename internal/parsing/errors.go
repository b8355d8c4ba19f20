package parsing

// EmptyTextError indicates a document produced no text after normalization,
// which usually means a scanned PDF without an embedded text layer.
type EmptyTextError struct{}

func (e *EmptyTextError) Error() string {
	return "no extractable text found (likely a scanned PDF)"
}
