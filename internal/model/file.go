package model

// FileRecord represents a stored file in the mock file manager.
//
// ContentBase64 is the full file payload encoded as base64. It is deliberately
// excluded from list responses and only included in single-record fetches so
// that list views stay cheap; repositories enforce this split.
type FileRecord struct {
	ID            int      `json:"id"`
	Name          string   `json:"name"`
	MimeType      string   `json:"mime_type"`
	Size          int64    `json:"size"`
	Description   string   `json:"description"`
	Tags          []string `json:"tags"`
	Uploaded      string   `json:"uploaded"`
	Project       string   `json:"project,omitempty"`
	Folder        string   `json:"folder"`
	ContentBase64 string   `json:"content_base64,omitempty"`
}

// WithoutContent returns a copy of the record with the payload stripped,
// suitable for list responses.
func (f FileRecord) WithoutContent() FileRecord {
	f.ContentBase64 = ""
	return f
}

// FileUpdate carries a partial metadata update for a file. Only the editable
// metadata fields can change; name, size, mime type and content are fixed at
// upload time. Nil fields are left untouched.
type FileUpdate struct {
	Description *string   `json:"description,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	Project     *string   `json:"project,omitempty"`
	Folder      *string   `json:"folder,omitempty"`
}
