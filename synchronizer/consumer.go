package synchronizer

import (
	"aa-wizard-industry/kafka/consumer"
	"context"
	"fmt"
	"github.com/sirupsen/logrus"
)

const consumerSyncCommand = "industry_sync_command"

func CommandConsumer(l logrus.FieldLogger) func(groupId string) consumer.Config {
	return func(groupId string) consumer.Config {
		return consumer.NewConfig(l)(consumerSyncCommand)(EnvCommandTopicIndustrySync)(groupId)
	}
}

func HandleCommand(d Dependencies) consumer.Handler[Command] {
	return func(l logrus.FieldLogger, ctx context.Context, command Command) error {
		l.Debugf("Received sync command for owner [%d] from user [%d].", command.OwnerId, command.UserId)
		for _, t := range command.Targets {
			if !t.Valid() {
				return fmt.Errorf("unknown sync target %s", t)
			}
		}
		_, err := SyncOwner(l, ctx, d)(command.OwnerId, command.Targets...)
		return err
	}
}
