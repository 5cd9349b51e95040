package synchronizer

const (
	EnvCommandTopicIndustrySync = "COMMAND_TOPIC_INDUSTRY_SYNC"
	EnvEventTopicSyncStatus     = "EVENT_TOPIC_INDUSTRY_SYNC_STATUS"

	EventSyncStatusTypeStarted   = "STARTED"
	EventSyncStatusTypeCompleted = "COMPLETED"
	EventSyncStatusTypeSkipped   = "SKIPPED"
	EventSyncStatusTypeFailed    = "FAILED"
)

type Command struct {
	OwnerId uint32   `json:"ownerId"`
	UserId  uint32   `json:"userId"`
	Targets []Target `json:"targets"`
}

type statusEvent[E any] struct {
	SyncId  string `json:"syncId"`
	OwnerId uint32 `json:"ownerId"`
	Target  Target `json:"target"`
	Type    string `json:"type"`
	Body    E      `json:"body"`
}

type statusEventCompletedBody struct {
	Count int `json:"count"`
}

type statusEventFailedBody struct {
	Error string `json:"error"`
}
