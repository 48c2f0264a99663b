package neighborhood

import "github.com/sirupsen/logrus"

// log 邻域模块的日志记录器
var log = logrus.WithField("module", "neighborhood")
