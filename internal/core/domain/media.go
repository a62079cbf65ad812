package domain

import "time"

// Media is an uploaded attachment record belonging to an entry. Only the
// metadata lives here, the bytes live wherever URL points.
type Media struct {
	MediaID    int64     `json:"mediaID"`
	FileName   string    `json:"fileName"`
	FileType   string    `json:"fileType"`
	FileSize   int       `json:"fileSize"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploadedAt"`
	EntryID    int64     `json:"entryID"`
}
