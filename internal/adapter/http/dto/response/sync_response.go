package response

type SyncStatusResponse struct {
	Enabled  bool   `json:"enabled"`
	Backend  string `json:"backend,omitempty"`
	LastSync string `json:"lastSync,omitempty"`
}

type SyncUploadResponse struct {
	LastSync string `json:"lastSync"`
}

type SyncDownloadResponse struct {
	Restored bool   `json:"restored"`
	LastSync string `json:"lastSync,omitempty"`
}
