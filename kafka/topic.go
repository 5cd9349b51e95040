package kafka

import (
	"github.com/sirupsen/logrus"
	"os"
	"strings"
)

const EnvBootstrapServers = "BOOTSTRAP_SERVERS"

func Brokers() []string {
	return strings.Split(os.Getenv(EnvBootstrapServers), ",")
}

// LookupTopic resolves the topic name held by the environment variable token.
func LookupTopic(l logrus.FieldLogger) func(token string) string {
	return func(token string) string {
		t, ok := os.LookupEnv(token)
		if !ok {
			l.Warnf("Topic token [%s] is not configured, using it as the topic name.", token)
			return token
		}
		return t
	}
}
