package domain

// Photo is an image stored on disk for an entry. FilePath is relative to the
// configured upload directory.
type Photo struct {
	PhotoID  int64  `json:"photoID"`
	FilePath string `json:"filePath"`
	EntryID  int64  `json:"entryID"`
}
