package conversation

const (
	previewPairLimit   = 50
	previewSingleLimit = 100
)

// DerivePreview computes the short listing preview for a transcript. When both
// a user and an ancestor message exist, the preview pairs the last of each;
// with only one side present it falls back to the last message alone. Empty
// transcripts yield an empty preview.
func DerivePreview(c Conversation) string {
	if len(c) == 0 {
		return ""
	}

	lastUser, haveUser := c.LastBySender(SenderUser)
	lastAncestor, haveAncestor := c.LastBySender(SenderAncestor)

	if haveUser && haveAncestor {
		return truncate(lastUser.Content, previewPairLimit) + " — " + truncate(lastAncestor.Content, previewPairLimit)
	}

	return truncate(c[len(c)-1].Content, previewSingleLimit)
}

// truncate cuts s to at most limit runes and appends an ellipsis. Rune-based
// so multi-byte text (Chinese phrases in ancestor replies) is never split
// mid-character.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s + "..."
	}
	return string(runes[:limit]) + "..."
}
