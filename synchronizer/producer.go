package synchronizer

import (
	"aa-wizard-industry/kafka/producer"
	"github.com/Chronicle20/atlas-model/model"
	"github.com/segmentio/kafka-go"
)

func commandProvider(ownerId uint32, userId uint32, targets []Target) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(ownerId))
	value := &Command{OwnerId: ownerId, UserId: userId, Targets: targets}
	return producer.SingleMessageProvider(key, value)
}

func startedEventProvider(syncId string, ownerId uint32, target Target) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(ownerId))
	value := &statusEvent[struct{}]{SyncId: syncId, OwnerId: ownerId, Target: target, Type: EventSyncStatusTypeStarted}
	return producer.SingleMessageProvider(key, value)
}

func completedEventProvider(syncId string, ownerId uint32, target Target, count int) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(ownerId))
	value := &statusEvent[statusEventCompletedBody]{
		SyncId:  syncId,
		OwnerId: ownerId,
		Target:  target,
		Type:    EventSyncStatusTypeCompleted,
		Body:    statusEventCompletedBody{Count: count},
	}
	return producer.SingleMessageProvider(key, value)
}

func skippedEventProvider(syncId string, ownerId uint32, target Target) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(ownerId))
	value := &statusEvent[struct{}]{SyncId: syncId, OwnerId: ownerId, Target: target, Type: EventSyncStatusTypeSkipped}
	return producer.SingleMessageProvider(key, value)
}

func failedEventProvider(syncId string, ownerId uint32, target Target, err error) model.Provider[[]kafka.Message] {
	key := producer.CreateKey(int(ownerId))
	value := &statusEvent[statusEventFailedBody]{
		SyncId:  syncId,
		OwnerId: ownerId,
		Target:  target,
		Type:    EventSyncStatusTypeFailed,
		Body:    statusEventFailedBody{Error: err.Error()},
	}
	return producer.SingleMessageProvider(key, value)
}
