package obstacle

import "github.com/sirupsen/logrus"

// log 障碍物模块的日志记录器
var log = logrus.WithField("module", "obstacle")
