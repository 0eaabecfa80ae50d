package log

import (
	"github.com/sirupsen/logrus"
)

type LogModule string

const (
	DBModule     LogModule = "db"
	FacadeModule LogModule = "facade"
	StoreModule  LogModule = "store"
	CmdModule    LogModule = "cmd"
)

func GetLogger(module LogModule) *logrus.Entry {
	return logrus.WithField("module", module)
}

func Setup(level string) {
	ll, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.WithError(err).Errorf("can not parse log level %s. using default ...", level)
		return
	}
	logrus.Infof("setting log level to %s", ll)
	logrus.SetLevel(ll)
}
