package domain

// Notification 物件儲存觸發事件 (S3 event shape)
type Notification struct {
	Records []NotificationRecord `json:"Records"`
}

// NotificationRecord definition one object-store event record
type NotificationRecord struct {
	EventName string   `json:"eventName"`
	S3        S3Entity `json:"s3"`
}

// S3Entity definition bucket + object of a record
type S3Entity struct {
	Bucket S3Bucket `json:"bucket"`
	Object S3Object `json:"object"`
}

// S3Bucket definition bucket info
type S3Bucket struct {
	Name string `json:"name"`
}

// S3Object definition object info, Key is still URL-encoded
type S3Object struct {
	Key  string `json:"key"`
	Size int64  `json:"size"`
	ETag string `json:"eTag"`
}

// FirstKey returns the raw key of the first record and how many records were left unprocessed.
func (n Notification) FirstKey() (key string, dropped int, ok bool) {
	if len(n.Records) == 0 {
		return "", 0, false
	}
	return n.Records[0].S3.Object.Key, len(n.Records) - 1, true
}
